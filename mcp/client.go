package mcp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/jsonrpc/transport/client/http/sse"
	"github.com/viant/jsonrpc/transport/client/http/streaming"
	"github.com/viant/mcp"
	protoclient "github.com/viant/mcp-protocol/client"
	mcpschema "github.com/viant/mcp-protocol/schema"
	mcpclient "github.com/viant/mcp/client"
	"golang.org/x/oauth2"
)

// remoteClient answers server initiated calls made over remote connections.
// The converter client offers no roots, sampling or elicitation, so every
// such call is rejected.
type remoteClient struct {
	implements map[string]bool
}

func (c *remoteClient) Init(_ context.Context, capabilities *mcpschema.ClientCapabilities) {
	c.implements = map[string]bool{}
	if capabilities == nil {
		return
	}
	c.implements[mcpschema.MethodRootsList] = capabilities.Roots != nil
	c.implements[mcpschema.MethodSamplingCreateMessage] = capabilities.Sampling != nil
	c.implements[mcpschema.MethodElicitationCreate] = capabilities.Elicitation != nil
	c.implements[mcpschema.MethodInteractionCreate] = capabilities.UserInteraction != nil
}

func (*remoteClient) OnNotification(context.Context, *jsonrpc.Notification) {}

func (c *remoteClient) Implements(method string) bool {
	return c.implements[method]
}

func (*remoteClient) ListRoots(context.Context, *mcpschema.ListRootsRequestParams) (*mcpschema.ListRootsResult, *jsonrpc.Error) {
	return nil, notSupported()
}

func (*remoteClient) CreateMessage(context.Context, *mcpschema.CreateMessageRequestParams) (*mcpschema.CreateMessageResult, *jsonrpc.Error) {
	return nil, notSupported()
}

func (*remoteClient) Elicit(context.Context, *mcpschema.ElicitRequestParams) (*mcpschema.ElicitResult, *jsonrpc.Error) {
	return nil, notSupported()
}

func (*remoteClient) CreateUserInteraction(context.Context, *mcpschema.CreateUserInteractionRequestParams) (*mcpschema.CreateUserInteractionResult, *jsonrpc.Error) {
	return nil, notSupported()
}

func notSupported() *jsonrpc.Error {
	return jsonrpc.NewError(jsonrpc.MethodNotFound, "not supported by unit converter client", nil)
}

func newMcpClient() protoclient.Handler { return &remoteClient{} }

// BearerHTTPClient returns an HTTP client sending token as a bearer credential.
func BearerHTTPClient(ctx context.Context, token string) *http.Client {
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}))
}

// newBearerClient connects to an HTTP remote, authorizing every request with token.
func newBearerClient(handler protoclient.Handler, options *mcp.ClientOptions, token string) (*mcpclient.Client, error) {
	ctx := context.Background()
	httpClient := BearerHTTPClient(ctx, token)
	clientHandler := mcpclient.NewHandler(handler)
	URL := options.Transport.ClientTransportHTTP.URL
	if URL == "" {
		return nil, fmt.Errorf("URL is required for %v transport", options.Transport.Type)
	}
	var rpcTransport transport.Transport
	var err error
	switch options.Transport.Type {
	case "sse":
		rpcTransport, err = sse.New(ctx, URL, sse.WithHttpClient(httpClient), sse.WithMessageHttpClient(httpClient), sse.WithHandler(clientHandler))
	case "streaming":
		rpcTransport, err = streaming.New(ctx, URL, streaming.WithHTTPClient(httpClient), streaming.WithHandler(clientHandler))
	default:
		return nil, fmt.Errorf("bearer token is not supported for %q transport", options.Transport.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("create %v transport: %w", options.Transport.Type, err)
	}
	opts := append(options.Options(nil), mcpclient.WithClientHandler(handler))
	cli := mcpclient.New(options.Name, options.Version, rpcTransport, opts...)
	if _, err = cli.Initialize(ctx); err != nil {
		return nil, err
	}
	return cli, nil
}
