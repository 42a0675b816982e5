package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
	"github.com/viant/unitconv-mcp/internal/logging"
	"github.com/viant/unitconv-mcp/mcp"
	mcpconfig "github.com/viant/unitconv-mcp/mcp/config"
)

var (
	cfgPath string
	stdout  io.Writer = os.Stdout
	stderr  io.Writer = os.Stderr

	svcOnce sync.Once
	svcInst *mcp.Service
	svcErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter.
func setConfigPath(p string) { cfgPath = p }

// loadConfig reads the config file (when given) and overlays UNITCONV_* variables.
func loadConfig() (*mcpconfig.Config, error) {
	cfg := &mcpconfig.Config{}
	if cfgPath != "" {
		var err error
		if cfg, err = mcpconfig.Load(cfgPath); err != nil {
			return nil, err
		}
	}
	env, err := mcpconfig.LoadEnv()
	if err != nil {
		return nil, err
	}
	cfg.Apply(env)
	return cfg, nil
}

// serviceSingleton initialises an mcp.Service once per CLI invocation.
func serviceSingleton() (*mcp.Service, error) {
	svcOnce.Do(func() {
		cfg, err := loadConfig()
		if err != nil {
			svcErr = err
			return
		}
		logger := logging.Init(cfg.LogLevel, stderr)
		if logger.GetLevel() <= zerolog.DebugLevel {
			data, _ := json.Marshal(cfg)
			logger.Debug().RawJSON("config", data).Msg("effective config")
		}
		svcInst, svcErr = mcp.New(context.Background(), mcp.WithConfig(cfg), mcp.WithLogger(logger))
	})
	return svcInst, svcErr
}

// resetService drops the singleton; used by tests running several commands.
func resetService() {
	if svcInst != nil {
		_ = svcInst.Shutdown(context.Background())
	}
	svcOnce = sync.Once{}
	svcInst = nil
	svcErr = nil
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(data))
	return err
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
