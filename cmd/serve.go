package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/viant/mcp"
)

// ServeCmd launches an MCP server exposing the unit converter tools and the
// units resource. The HTTP transport settings come from the config server
// section; --stdio serves over stdin/stdout instead.
type ServeCmd struct {
	Stdio bool `long:"stdio" description:"serve over stdin/stdout"`
}

func (c *ServeCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	ctx := context.Background()
	defer svc.Shutdown(ctx)

	mcpServer, err := mcp.NewServer(svc.NewHandler, svc.Config().Server)
	if err != nil {
		return err
	}
	if c.Stdio {
		log.Info().Msg("MCP server listening on stdio")
		return mcpServer.Stdio(ctx).ListenAndServe()
	}

	httpSrv := mcpServer.HTTP(ctx, "")
	errs := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()
	log.Info().Str("addr", httpSrv.Addr).Msg("MCP server listening")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err = <-errs:
		return err
	case <-sigs:
	}
	log.Info().Msg("shutting down")
	return httpSrv.Close()
}
