package config

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/linelog/linelog/core"
	"github.com/linelog/linelog/formatter"
	"github.com/linelog/linelog/handler"
	"github.com/linelog/linelog/logger"
)

// Environment variables overriding file-based configuration.
const (
	// EnvOutputFormat overrides the output template
	EnvOutputFormat = "LINELOG_OUTPUT_FORMAT"
	// EnvLevel overrides the severity threshold
	EnvLevel = "LINELOG_LEVEL"
	// EnvAsync overrides the console async flag
	EnvAsync = "LINELOG_ASYNC"
)

// Config describes a complete logging setup: the output template, the
// severity threshold and the console handler tuning.
type Config struct {
	// Format is the output template; see the formatter package for the
	// placeholder vocabulary. Empty selects the default template.
	Format string `yaml:"format"`

	// Level is the minimum severity emitted: debug, info, warn, error
	// or fatal (case-insensitive). Empty means info.
	Level string `yaml:"level"`

	// Name is the root logger name, rendered by the {name} token.
	Name string `yaml:"name"`

	// Caller enables call-site capture for the {file_name},
	// {line_number} and {function_name} tokens.
	Caller bool `yaml:"caller"`

	Console ConsoleConfig `yaml:"console"`
}

// ConsoleConfig tunes the console handler.
type ConsoleConfig struct {
	Async bool `yaml:"async"`

	// SplitStreams routes Warn and above to stderr. When false every
	// record goes to stdout, which suits pipelines capturing a single
	// stream.
	SplitStreams bool `yaml:"splitStreams"`

	BufferSize     int `yaml:"bufferSize"`
	BlockTimeoutMS int `yaml:"blockTimeoutMS"`
	DrainTimeoutMS int `yaml:"drainTimeoutMS"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format: formatter.DefaultTemplate,
		Level:  "info",
		Console: ConsoleConfig{
			Async:        true,
			SplitStreams: true,
			BufferSize:   1000,
		},
	}
}

// Load reads a YAML configuration file, applies environment overrides
// and validates the result. The returned Config is usable even on
// error: it carries the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}

	cfg.FromEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "validating config %s", path)
	}
	return cfg, nil
}

// FromEnv applies environment variable overrides. Variables win over
// file values so a deployment can retarget the output format without
// touching the config file.
func (c *Config) FromEnv() {
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvLevel); v != "" {
		c.Level = v
	}
	if v := os.Getenv(EnvAsync); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Console.Async = b
		}
	}
}

// Validate checks the configuration for values the handler or logger
// would silently misbehave on. A malformed Format is deliberately NOT
// an error: template compilation never fails, malformed templates
// degrade to visible literal text.
func (c *Config) Validate() error {
	switch strings.ToUpper(c.Level) {
	case "", "DEBUG", "INFO", "WARN", "ERROR", "FATAL":
	default:
		return errors.Errorf("unknown log level %q", c.Level)
	}
	if c.Console.BufferSize < 0 {
		return errors.Errorf("console buffer size must be non-negative, got %d", c.Console.BufferSize)
	}
	if c.Console.BlockTimeoutMS < 0 {
		return errors.Errorf("console block timeout must be non-negative, got %dms", c.Console.BlockTimeoutMS)
	}
	if c.Console.DrainTimeoutMS < 0 {
		return errors.Errorf("console drain timeout must be non-negative, got %dms", c.Console.DrainTimeoutMS)
	}
	return nil
}

// Build assembles a logger writing to the process console.
func (c Config) Build() *logger.Logger {
	return c.BuildWriter(nil, nil)
}

// BuildWriter assembles a logger writing to the given writers; nil
// writers select the process console. Intended for tests and for
// applications embedding linelog behind their own streams.
func (c Config) BuildWriter(stdout, stderr io.Writer) *logger.Logger {
	if !c.Console.SplitStreams {
		if stdout == nil {
			stdout = os.Stdout
		}
		stderr = stdout
	}

	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Stdout:       stdout,
		Stderr:       stderr,
		Formatter:    formatter.NewTemplateFormatter(c.Format),
		Async:        c.Console.Async,
		BufferSize:   c.Console.BufferSize,
		BlockTimeout: time.Duration(c.Console.BlockTimeoutMS) * time.Millisecond,
		DrainTimeout: time.Duration(c.Console.DrainTimeoutMS) * time.Millisecond,
	})

	return logger.NewBuilder().
		WithHandler(h).
		WithLevel(core.ParseLevel(c.Level)).
		WithName(c.Name).
		WithCaller(c.Caller).
		Build()
}
