package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/viant/fluxor/model/types"
	"github.com/viant/fluxor/runtime/execution"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
	"github.com/viant/unitconv-mcp/internal/conv"
	"github.com/viant/unitconv-mcp/mcp/matcher"
	"github.com/viant/unitconv-mcp/mcp/tool"
	"github.com/viant/unitconv-mcp/mcp/tool/conversion"
)

// DefaultTimeout bounds ExecuteTool when no timeout is given.
const DefaultTimeout = 2 * time.Minute

// Tools returns a tool entry for every registered action method, sorted by name.
func (s *Service) Tools() serverproto.Tools {
	var result = make(serverproto.Tools, 0)
	actions := s.Workflow.Service.Actions()
	for _, name := range actions.Services() {
		service := actions.Lookup(name)
		if service == nil {
			continue
		}
		for _, method := range service.Methods() {
			aTool, err := s.LookupTool(tool.NewName(name, method.Name).String())
			if err != nil {
				s.logger.Warn().Err(err).Str("service", name).Str("method", method.Name).Msg("skipping tool")
				continue
			}
			result = append(result, aTool)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Metadata.Name < result[j].Metadata.Name })
	return result
}

// MatchTools returns tools whose name or service/method path matches pattern.
func (s *Service) MatchTools(pattern string) serverproto.Tools {
	return s.filterTools([]string{pattern})
}

// ExposedTools returns the tools selected by the configured expose patterns.
func (s *Service) ExposedTools() serverproto.Tools {
	return s.filterTools(s.config.Expose)
}

func (s *Service) filterTools(patterns []string) serverproto.Tools {
	var result = make(serverproto.Tools, 0)
	for _, entry := range s.Tools() {
		name := tool.Name(entry.Metadata.Name)
		if matcher.MatchAny(patterns, name.String(), name.Path()) {
			result = append(result, entry)
		}
	}
	return result
}

// ToolMetadata returns description and input schema of a tool.
func (s *Service) ToolMetadata(name string) (string, interface{}, bool) {
	entry, err := s.LookupTool(name)
	if err != nil {
		return "", nil, false
	}
	return conv.Dereference[string](entry.Metadata.Description), entry.Metadata.InputSchema, true
}

// LookupTool builds the tool entry for name (service-method, service/method or
// service.method). The handler runs the action directly so that action
// errors surface as error results.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	toolName := tool.Name(tool.Canonical(name))
	service := s.Workflow.Service.Actions().Lookup(toolName.Service())
	if service == nil {
		return nil, fmt.Errorf("unknown tool: %v", name)
	}
	method := service.Methods().Lookup(toolName.Method())
	if method == nil {
		return nil, fmt.Errorf("unknown tool: %v", name)
	}
	sig := &types.Signature{
		Name:        toolName.String(),
		Description: method.Description,
		Input:       method.Input,
		Output:      method.Output,
	}
	metadata, err := conversion.BuildSchema(sig)
	if err != nil {
		return nil, err
	}
	entry := &serverproto.ToolEntry{Metadata: metadata}
	entry.Handler = func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		args := map[string]interface{}(request.Params.Arguments)
		output, err := s.CallAction(ctx, service, toolName.Method(), args)
		if err != nil {
			s.logger.Info().Err(err).Str("tool", toolName.String()).Msg("tool call failed")
		}
		return toolResult(output, err), nil
	}
	return entry, nil
}

// CallAction runs a method of a workflow service in process.
func (s *Service) CallAction(ctx context.Context, service types.Service, method string, args map[string]interface{}) (interface{}, error) {
	exec, err := service.Method(method)
	if err != nil {
		return nil, err
	}
	var output interface{}
	if err = exec(ctx, args, &output); err != nil {
		return nil, err
	}
	return output, nil
}

func toolResult(output interface{}, err error) *mcpschema.CallToolResult {
	res := &mcpschema.CallToolResult{}
	if err != nil {
		res.IsError = conv.Pointer(true)
		res.Content = append(res.Content, mcpschema.CallToolResultContentElem{Type: "text", Text: err.Error()})
		return res
	}
	var data []byte
	switch actual := output.(type) {
	case string:
		data = []byte(actual)
	case []byte:
		data = actual
	default:
		var err error
		if data, err = json.Marshal(output); err != nil {
			return toolResult(nil, fmt.Errorf("encode tool output: %w", err))
		}
	}
	res.Content = append(res.Content, mcpschema.CallToolResultContentElem{Type: "text", Text: string(data)})
	return res
}

// ExecuteTool schedules the named action on the workflow runtime and waits
// for its output.
func (s *Service) ExecuteTool(ctx context.Context, name string, args map[string]interface{}, timeout time.Duration) (interface{}, error) {
	toolName := tool.Name(tool.Canonical(name))
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	exec, err := execution.NewAtHocExecution(toolName.Service(), toolName.Method(), args)
	if err != nil {
		return nil, err
	}
	waitFn, err := s.Workflow.Runtime.ScheduleExecution(ctx, exec)
	if err != nil {
		return nil, err
	}
	anExec, err := waitFn(timeout)
	if err != nil {
		return nil, err
	}
	if anExec.Error != "" {
		return nil, errors.New(anExec.Error)
	}
	return anExec.Output, nil
}
