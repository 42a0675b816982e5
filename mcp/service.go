package mcp

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/viant/fluxor"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/unitconv-mcp/mcp/config"
	"github.com/viant/unitconv-mcp/mcp/unitaction"
	"github.com/viant/unitconv-mcp/unit"
	"github.com/viant/x"

	protocolclient "github.com/viant/mcp-protocol/client"
)

// Service hosts the unit converter inside a Fluxor workflow engine and
// exposes its actions as MCP tools. Construction lives in bootstrap.go.
type Service struct {
	Workflow
	started   int32
	client    protocolclient.Handler
	config    *config.Config
	converter *unit.Converter
	units     *unitaction.Service
	logger    zerolog.Logger
	hasLogger bool
}

type Workflow struct {
	Options        []fluxor.Option
	Runtime        *fluxor.Runtime
	Service        *fluxor.Service
	Extensions     []types.Service
	ExtensionTypes []*x.Type `json:"-"`
}

// WorkflowRuntime returns the underlying Fluxor runtime.
func (s *Service) WorkflowRuntime() *fluxor.Runtime { return s.Workflow.Runtime }

// WorkflowService returns the Fluxor service holding all actions.
func (s *Service) WorkflowService() *fluxor.Service { return s.Workflow.Service }

// Config returns the effective configuration. Callers must treat it as read-only.
func (s *Service) Config() *config.Config { return s.config }

// Converter returns the unit converter backing the unit actions.
func (s *Service) Converter() *unit.Converter { return s.converter }

// Units returns the unit action service.
func (s *Service) Units() *unitaction.Service { return s.units }

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithConfig sets a custom configuration instance.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithConverter uses converter instead of loading the configured catalog.
func WithConverter(converter *unit.Converter) Option {
	return func(s *Service) {
		s.converter = converter
	}
}

// WithLogger sets the service logger; the global zerolog logger is used otherwise.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
		s.hasLogger = true
	}
}

// WithWorkflowOptions appends Fluxor options used when the engine gets instantiated.
func WithWorkflowOptions(opts ...fluxor.Option) Option {
	return func(s *Service) {
		s.Workflow.Options = append(s.Workflow.Options, opts...)
	}
}

// WithExtensions registers additional Fluxor services next to the unit actions.
func WithExtensions(ext ...types.Service) Option {
	return func(s *Service) {
		s.Workflow.Extensions = append(s.Workflow.Extensions, ext...)
	}
}

// WithClient overrides the client handler used for outgoing MCP connections.
func WithClient(impl protocolclient.Handler) Option {
	return func(s *Service) {
		s.client = impl
	}
}

// New constructs and starts a service.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if !svc.hasLogger {
		svc.logger = log.Logger
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// NewWithConfig is New with a configuration instance.
func NewWithConfig(ctx context.Context, cfg *config.Config, opts ...Option) (*Service, error) {
	return New(ctx, append([]Option{WithConfig(cfg)}, opts...)...)
}

// Start launches the Fluxor runtime; subsequent calls are ignored.
func (s *Service) Start(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 0, 1) {
		return nil
	}
	return s.Workflow.Runtime.Start(ctx)
}

// Shutdown terminates the Fluxor runtime; subsequent calls are ignored.
func (s *Service) Shutdown(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 1, 2) {
		return nil
	}
	return s.Workflow.Runtime.Shutdown(ctx)
}
