package mcp

import (
	"context"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	protocolclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
	"github.com/viant/unitconv-mcp/internal/conv"
	"github.com/viant/unitconv-mcp/unit/catalog"
)

// UnitsMimeType is the mime type of the units resource.
const UnitsMimeType = "application/json"

// NewHandler returns an MCP handler exposing the selected tools and the
// units resource.
func (s *Service) NewHandler(ctx context.Context, notifier transport.Notifier, l logger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
	impl := serverproto.NewDefaultHandler(notifier, l, cli)
	for _, tool := range s.ExposedTools() {
		impl.RegisterTool(tool)
	}
	impl.RegisterResource(UnitsResource(), s.readUnits)
	return impl, nil
}

// UnitsResource describes the supported units document.
func UnitsResource() mcpschema.Resource {
	return mcpschema.Resource{
		Name:        "supported_units",
		Uri:         catalog.DefaultURI,
		Description: conv.Pointer("Supported unit categories, units and aliases"),
		MimeType:    conv.Pointer(UnitsMimeType),
	}
}

func (s *Service) readUnits(_ context.Context, request *mcpschema.ReadResourceRequest) (*mcpschema.ReadResourceResult, *jsonrpc.Error) {
	if uri := request.Params.Uri; uri != catalog.DefaultURI {
		return nil, jsonrpc.NewError(jsonrpc.InvalidParams, fmt.Sprintf("unknown resource: %v", uri), nil)
	}
	return &mcpschema.ReadResourceResult{
		Contents: []mcpschema.ReadResourceResultContentsElem{{
			Uri:      catalog.DefaultURI,
			MimeType: conv.Pointer(UnitsMimeType),
			Text:     string(s.converter.Document()),
		}},
	}, nil
}
