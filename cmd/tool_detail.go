package cmd

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/viant/unitconv-mcp/mcp/tool"
)

// ToolCmd prints metadata, input schema and Go types of a single tool.
type ToolCmd struct {
	Name string `short:"n" long:"name" description:"tool name (unit-convert, unit/convert)" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

type toolInfo struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputType   string      `json:"inputType,omitempty"`
	OutputType  string      `json:"outputType,omitempty"`
	InputSchema interface{} `json:"inputSchema"`
}

func (c *ToolCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	description, schema, ok := svc.ToolMetadata(c.Name)
	if !ok {
		return fmt.Errorf("tool %q not found", c.Name)
	}
	name := tool.Name(tool.Canonical(c.Name))
	info := &toolInfo{Name: name.String(), Description: description, InputSchema: schema}
	if service := svc.WorkflowService().Actions().Lookup(name.Service()); service != nil {
		if sig := service.Methods().Lookup(name.Method()); sig != nil {
			info.InputType = typeString(sig.Input)
			info.OutputType = typeString(sig.Output)
		}
	}
	if c.JSON {
		return printJSON(info)
	}
	fmt.Fprintf(stdout, "Name   : %s\n", info.Name)
	fmt.Fprintf(stdout, "Desc   : %s\n", info.Description)
	fmt.Fprintf(stdout, "Input  : %s\n", info.InputType)
	fmt.Fprintf(stdout, "Output : %s\n", info.OutputType)
	js, _ := json.MarshalIndent(info.InputSchema, "", "  ")
	fmt.Fprintf(stdout, "InputSchema:\n%s\n", string(js))
	return nil
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "<none>"
	}
	if t.Kind() == reflect.Pointer {
		return "*" + t.Elem().String()
	}
	return t.String()
}
