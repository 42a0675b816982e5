package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// ExecCmd executes a registered tool through the workflow runtime. Arguments
// are supplied inline via -i/--input or loaded from a JSON file via --file.
type ExecCmd struct {
	Name       string `short:"n" long:"name" description:"tool name (unit-convert, unit/convert, remote/<name>/unit_convert)" required:"yes"`
	Inline     string `short:"i" long:"input" description:"inline JSON arguments (object)"`
	File       string `long:"file" description:"path to JSON file with arguments (use - for stdin)"`
	TimeoutSec int    `long:"timeout" description:"seconds to wait for completion" default:"120"`
}

func (c *ExecCmd) Execute(_ []string) error {
	if c.Inline != "" && c.File != "" {
		return fmt.Errorf("-i/--input and --file are mutually exclusive")
	}
	args, err := c.arguments()
	if err != nil {
		return err
	}
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	out, err := svc.ExecuteTool(context.Background(), c.Name, args, time.Duration(c.TimeoutSec)*time.Second)
	if err != nil {
		return err
	}
	switch v := out.(type) {
	case string:
		_, err = fmt.Fprintln(stdout, v)
		return err
	case []byte:
		_, err = fmt.Fprintln(stdout, string(v))
		return err
	}
	return printJSON(out)
}

func (c *ExecCmd) arguments() (map[string]interface{}, error) {
	var args map[string]interface{}
	switch {
	case c.Inline != "":
		if err := json.Unmarshal([]byte(c.Inline), &args); err != nil {
			return nil, fmt.Errorf("invalid inline JSON: %w", err)
		}
	case c.File != "":
		var rdr io.Reader = os.Stdin
		if c.File != "-" {
			f, err := os.Open(c.File)
			if err != nil {
				return nil, fmt.Errorf("open input file: %w", err)
			}
			defer f.Close()
			rdr = f
		}
		data, err := io.ReadAll(rdr)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		if err := json.Unmarshal(data, &args); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
	}
	return args, nil
}
