package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/viant/fluxor"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/unitconv-mcp/unit"
	"github.com/viant/x"
	"gopkg.in/yaml.v3"

	mcp "github.com/viant/mcp"
)

// DefaultExpose selects the unit converter tools only.
var DefaultExpose = []string{"unit"}

type Group[T any] struct {
	URL   string `yaml:"url,omitempty" json:"url,omitempty" short:"u" long:"url" description:"url"`
	Items []T    `yaml:"items,omitempty" json:"items,omitempty" short:"i" long:"items" description:"items"`
}

type Config struct {
	Server *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	// Catalog is a file path or URL of the units document; empty means the embedded one.
	Catalog   string   `yaml:"catalog,omitempty" json:"catalog,omitempty"`
	Precision *int     `yaml:"precision,omitempty" json:"precision,omitempty"`
	Expose    []string `yaml:"expose,omitempty" json:"expose,omitempty"`
	LogLevel  string   `yaml:"logLevel,omitempty" json:"logLevel,omitempty"`
	// Remote lists unit converter MCP servers whose tools get proxied as workflow actions.
	Remote *Group[*mcp.ClientOptions] `yaml:"remote,omitempty" json:"remote,omitempty"`

	Options        []fluxor.Option `yaml:"-" json:"-"`
	Extensions     []types.Service `yaml:"-" json:"-"`
	ExtensionTypes []*x.Type       `yaml:"-" json:"-"`
}

// Env holds the environment overrides.
type Env struct {
	Catalog   string   `env:"UNITCONV_CATALOG"`
	Precision *int     `env:"UNITCONV_PRECISION"`
	Expose    []string `env:"UNITCONV_EXPOSE" envSeparator:","`
	LogLevel  string   `env:"UNITCONV_LOG_LEVEL"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return &cfg, nil
}

// LoadEnv reads the UNITCONV_* variables.
func LoadEnv() (*Env, error) {
	ret := &Env{}
	if err := env.Parse(ret); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return ret, nil
}

// Apply overlays non empty environment values onto c.
func (c *Config) Apply(e *Env) {
	if e == nil {
		return
	}
	if e.Catalog != "" {
		c.Catalog = e.Catalog
	}
	if e.Precision != nil {
		precision := *e.Precision
		c.Precision = &precision
	}
	var expose []string
	for _, pattern := range e.Expose {
		if pattern = strings.TrimSpace(pattern); pattern != "" {
			expose = append(expose, pattern)
		}
	}
	if len(expose) > 0 {
		c.Expose = expose
	}
	if e.LogLevel != "" {
		c.LogLevel = e.LogLevel
	}
}

// Init applies defaults.
func (c *Config) Init() {
	if len(c.Expose) == 0 {
		c.Expose = append([]string{}, DefaultExpose...)
	}
}

func (c *Config) Validate() error {
	if c.Precision != nil && (*c.Precision < unit.MinPrecision || *c.Precision > unit.MaxPrecision) {
		return fmt.Errorf("invalid precision %d: expected %d..%d", *c.Precision, unit.MinPrecision, unit.MaxPrecision)
	}
	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
			return fmt.Errorf("invalid logLevel %q: %w", c.LogLevel, err)
		}
	}
	if c.Remote != nil {
		for i, item := range c.Remote.Items {
			if item == nil || item.Name == "" {
				return fmt.Errorf("remote[%d]: name is required", i)
			}
		}
	}
	return nil
}
