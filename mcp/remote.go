package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/mcp"
	protocolclient "github.com/viant/mcp-protocol/client"
	mcpschema "github.com/viant/mcp-protocol/schema"
	mcpclient "github.com/viant/mcp/client"
	mcpctx "github.com/viant/unitconv-mcp/mcp/context"
	"github.com/viant/unitconv-mcp/mcp/tool"
	"github.com/viant/unitconv-mcp/mcp/unitaction"
	"github.com/viant/unitconv-mcp/unit"
	"github.com/viant/unitconv-mcp/unit/catalog"
	"gopkg.in/yaml.v3"
)

// RemoteServicePrefix prefixes workflow services proxying remote servers.
const RemoteServicePrefix = "remote/"

// registerRemoteActions turns every configured remote server into a workflow
// service. An unreachable remote is logged and skipped.
func (s *Service) registerRemoteActions(ctx context.Context) error {
	remotes, err := s.loadRemoteConfig(ctx)
	if err != nil {
		return err
	}
	for _, options := range remotes {
		if err = s.RegisterRemote(ctx, options); err != nil {
			s.logger.Warn().Err(err).Str("remote", options.Name).Msg("remote unavailable")
		}
	}
	return nil
}

// RegisterRemote proxies the tools of a remote MCP server as the workflow
// service remote/<name>.
func (s *Service) RegisterRemote(ctx context.Context, options *mcp.ClientOptions) error {
	cli, err := s.NewRemoteClient(ctx, options)
	if err != nil {
		return err
	}
	proxy, err := tool.NewProxy(ctx, RemoteServicePrefix+options.Name, cli)
	if err != nil {
		return fmt.Errorf("load tools for %q: %w", options.Name, err)
	}
	return s.Workflow.Service.Actions().Register(proxy)
}

// NewRemoteClient connects to a remote MCP server. A token attached to ctx
// with mcpctx.WithAuthToken is sent as a bearer credential unless options
// configure their own auth.
func (s *Service) NewRemoteClient(ctx context.Context, options *mcp.ClientOptions) (mcpclient.Interface, error) {
	options.Init()
	var cli mcpclient.Interface
	var err error
	if token, ok := mcpctx.AuthToken(ctx); ok && options.Auth == nil {
		cli, err = newBearerClient(s.ClientHandler(), options, token)
	} else {
		cli, err = mcp.NewClient(s.ClientHandler(), options)
	}
	if err != nil {
		return nil, fmt.Errorf("create mcp client %q: %w", options.Name, err)
	}
	return cli, nil
}

// ClientHandler returns the handler for server initiated client calls.
func (s *Service) ClientHandler() protocolclient.Handler {
	if s.client == nil {
		return newMcpClient()
	}
	return s.client
}

// loadRemoteConfig returns inline remotes or the list referenced by URL.
func (s *Service) loadRemoteConfig(ctx context.Context) ([]*mcp.ClientOptions, error) {
	if s.config == nil || s.config.Remote == nil {
		return nil, nil
	}
	if len(s.config.Remote.Items) > 0 {
		return s.config.Remote.Items, nil
	}
	if s.config.Remote.URL == "" {
		return nil, nil
	}
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, s.config.Remote.URL)
	if err != nil {
		return nil, fmt.Errorf("download remotes config %q: %w", s.config.Remote.URL, err)
	}
	var out []*mcp.ClientOptions
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse remotes config %q: %w", s.config.Remote.URL, err)
	}
	return out, nil
}

// RemoteConvert calls the unit-convert tool of a remote server.
func RemoteConvert(ctx context.Context, cli mcpclient.Interface, input *unitaction.ConvertInput) (*unit.Result, error) {
	args := map[string]interface{}{
		"value":     input.Value,
		"from_unit": input.FromUnit,
		"to_unit":   input.ToUnit,
	}
	if input.Precision != nil {
		args["precision"] = *input.Precision
	}
	text, err := tool.CallText(ctx, cli, tool.NewName(unitaction.Name, unitaction.MethodConvert).String(), args)
	if err != nil {
		return nil, err
	}
	result := &unit.Result{}
	if err = json.Unmarshal([]byte(text), result); err != nil {
		return nil, fmt.Errorf("decode convert result: %w", err)
	}
	return result, nil
}

// RemoteUnits reads the units resource of a remote server.
func RemoteUnits(ctx context.Context, cli mcpclient.Interface) (string, error) {
	res, err := cli.ReadResource(ctx, &mcpschema.ReadResourceRequestParams{Uri: catalog.DefaultURI})
	if err != nil {
		return "", err
	}
	if len(res.Contents) == 0 {
		return "", fmt.Errorf("resource %v: no content", catalog.DefaultURI)
	}
	return res.Contents[0].Text, nil
}

// RemoteTools lists the tools of a remote server.
func RemoteTools(ctx context.Context, cli mcpclient.Interface) ([]mcpschema.Tool, error) {
	return tool.ListTools(ctx, cli)
}
