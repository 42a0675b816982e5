package tool

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/viant/fluxor/model/types"
	"github.com/viant/unitconv-mcp/internal/conv"
	"github.com/viant/unitconv-mcp/mcp/tool/conversion"
	mcpschema "github.com/viant/mcp-protocol/schema"
	mcpclient "github.com/viant/mcp/client"
)

// Proxy is a workflow service whose methods call the tools of a remote MCP
// server. Method names are the remote tool names with '-' replaced by '_'.
type Proxy struct {
	name    string
	client  mcpclient.Interface
	methods map[string]*mcpschema.Tool
	sigs    types.Signatures
}

// NewProxy lists the remote tools (following cursors) and builds a signature
// per tool from its input and output schema.
func NewProxy(ctx context.Context, name string, cli mcpclient.Interface) (*Proxy, error) {
	tools, err := ListTools(ctx, cli)
	if err != nil {
		return nil, err
	}
	m := make(map[string]*mcpschema.Tool, len(tools))
	sigs := make(types.Signatures, 0, len(tools))
	for i := range tools {
		remote := &tools[i]
		method := MethodName(remote.Name)
		m[method] = remote

		inType := reflect.TypeOf(map[string]interface{}{})
		if remote.InputSchema.Type != "" || len(remote.InputSchema.Properties) > 0 {
			if t, err := conversion.TypeFromInputSchema(remote.InputSchema); err == nil {
				inType = t
			}
		}
		// without an output schema the decoded text is kept as a generic map
		outType := reflect.TypeOf(map[string]interface{}{})
		if remote.OutputSchema != nil && len(remote.OutputSchema.Properties) > 0 {
			if t, err := conversion.TypeFromOutputSchema(*remote.OutputSchema); err == nil {
				outType = t
			}
		}
		sigs = append(sigs, types.Signature{
			Name:        method,
			Description: conv.Dereference[string](remote.Description),
			Input:       inType,
			Output:      outType,
		})
	}
	return &Proxy{name: name, client: cli, methods: m, sigs: sigs}, nil
}

// ListTools returns every tool of the remote server.
func ListTools(ctx context.Context, cli mcpclient.Interface) ([]mcpschema.Tool, error) {
	tools := make([]mcpschema.Tool, 0)
	var cursor *string
	for {
		res, err := cli.ListTools(ctx, cursor)
		if err != nil {
			return nil, err
		}
		tools = append(tools, res.Tools...)
		if res.NextCursor == nil || *res.NextCursor == "" {
			break
		}
		cursor = res.NextCursor
	}
	return tools, nil
}

func (r *Proxy) Name() string {
	return r.name
}

func (r *Proxy) Methods() types.Signatures {
	return r.sigs
}

func (r *Proxy) Method(name string) (types.Executable, error) {
	remote, ok := r.methods[name]
	if !ok {
		return nil, types.NewMethodNotFoundError(name)
	}
	exec := func(ctx context.Context, input, output interface{}) error {
		args, err := conv.ToMap(input)
		if err != nil {
			return err
		}
		text, err := CallText(ctx, r.client, remote.Name, args)
		if err != nil {
			return err
		}
		if output == nil {
			return nil
		}
		switch v := output.(type) {
		case *string:
			*v = text
		case *interface{}:
			var decoded interface{}
			if err := json.Unmarshal([]byte(text), &decoded); err != nil {
				*v = text
				return nil
			}
			*v = decoded
		default:
			return json.Unmarshal([]byte(text), output)
		}
		return nil
	}
	return exec, nil
}

// CallText calls a remote tool and returns its text content. A result flagged
// as an error is returned as an error carrying the text.
func CallText(ctx context.Context, cli mcpclient.Interface, name string, args map[string]interface{}) (string, error) {
	res, err := cli.CallTool(ctx, &mcpschema.CallToolRequestParams{
		Name:      name,
		Arguments: mcpschema.CallToolRequestParamsArguments(args),
	})
	if err != nil {
		return "", err
	}
	var texts []string
	for _, elem := range res.Content {
		if elem.Text != "" {
			texts = append(texts, elem.Text)
		}
	}
	text := strings.Join(texts, "\n")
	if res.IsError != nil && *res.IsError {
		if text == "" {
			text = "tool " + name + " failed"
		}
		return "", errors.New(text)
	}
	return text, nil
}
