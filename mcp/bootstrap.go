package mcp

import (
	"context"
	"fmt"

	"github.com/viant/fluxor"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/unitconv-mcp/internal/conv"
	"github.com/viant/unitconv-mcp/internal/logging"
	"github.com/viant/unitconv-mcp/mcp/config"
	"github.com/viant/unitconv-mcp/mcp/unitaction"
	"github.com/viant/unitconv-mcp/unit"
	"github.com/viant/unitconv-mcp/unit/catalog"
)

// init orchestrates the bootstrap: defaults, validation, catalog, workflow
// engine, remote actions and runtime start.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()
	if err := s.config.Validate(); err != nil {
		return err
	}
	if err := s.initConverter(ctx); err != nil {
		return err
	}
	s.initWorkflowService()
	if err := s.registerRemoteActions(ctx); err != nil {
		return fmt.Errorf("register remotes: %w", err)
	}
	return s.Start(ctx)
}

func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = &config.Config{}
	}
	s.config.Init()
}

// initConverter loads the configured catalog; a load or integrity failure
// aborts the bootstrap.
func (s *Service) initConverter(ctx context.Context) error {
	if s.converter != nil {
		return nil
	}
	src, err := catalog.Load(ctx, s.config.Catalog)
	if err != nil {
		return err
	}
	cat, err := unit.LoadCatalog(src)
	if err != nil {
		return fmt.Errorf("catalog %q: %w", src.URL, err)
	}
	s.converter = unit.NewConverter(cat,
		unit.WithLogger(logging.Component(s.logger, "converter")),
		unit.WithDefaultPrecision(conv.ValueOr(s.config.Precision, unit.DefaultPrecision)))
	s.logger.Debug().Str("catalog", src.URL).Strs("categories", cat.Categories()).Msg("catalog loaded")
	return nil
}

// initWorkflowService assembles the Fluxor options and instantiates the engine
// with the unit actions registered.
func (s *Service) initWorkflowService() {
	opts := append([]fluxor.Option{}, s.config.Options...)

	extensionTypes := append(unitaction.Types(), s.config.ExtensionTypes...)
	s.Workflow.ExtensionTypes = append(s.Workflow.ExtensionTypes, extensionTypes...)
	opts = append(opts, fluxor.WithExtensionTypes(s.Workflow.ExtensionTypes...))

	s.units = unitaction.New(s.converter)
	extensions := append([]types.Service{s.units}, s.config.Extensions...)
	s.Workflow.Extensions = append(extensions, s.Workflow.Extensions...)
	opts = append(opts, fluxor.WithExtensionServices(s.Workflow.Extensions...))

	opts = append(opts, s.Workflow.Options...)
	s.Workflow.Service = fluxor.New(opts...)
	s.Workflow.Runtime = s.Workflow.Service.Runtime()
}
