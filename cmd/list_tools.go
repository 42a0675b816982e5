package cmd

import (
	"fmt"

	"github.com/viant/unitconv-mcp/internal/conv"
)

// ListToolsCmd prints registered tools, optionally filtered by a prefix
// pattern (tool name or service/method path).
type ListToolsCmd struct {
	Exposed bool `long:"exposed" description:"only tools exposed by serve"`
	Args    struct {
		Pattern string `positional-arg-name:"pattern"`
	} `positional-args:"yes"`
}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	tools := svc.Tools()
	switch {
	case c.Exposed:
		tools = svc.ExposedTools()
	case c.Args.Pattern != "":
		tools = svc.MatchTools(c.Args.Pattern)
	}
	for _, t := range tools {
		fmt.Fprintf(stdout, "%s\t%s\n", t.Metadata.Name, conv.Dereference[string](t.Metadata.Description))
	}
	return nil
}
