package main

import (
	"os"

	"github.com/viant/unitconv-mcp/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
