// Package config loads the service configuration from a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

// Config is the top-level configuration. Expr is taken from the environment only.
type Config struct {
	Expr    string        `toml:"-"`
	Server  ServerConfig  `toml:"server"`
	Log     LogConfig     `toml:"log"`
	Metrics MetricsConfig `toml:"metrics"`
}

type ServerConfig struct {
	Listen         string `toml:"listen"`
	TLSCert        string `toml:"tls_cert"`
	TLSKey         string `toml:"tls_key"`
	ReadTimeoutMS  int    `toml:"read_timeout_ms"`
	WriteTimeoutMS int    `toml:"write_timeout_ms"` // 0 = no limit, long streams are not cut
	IdleTimeoutMS  int    `toml:"idle_timeout_ms"`
}

type LogConfig struct {
	Dir       string   `toml:"dir"` // empty disables file output
	Level     string   `toml:"level"`
	BodyPaths []string `toml:"body_paths"` // routes whose small JSON request bodies are access logged
}

type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Listen:        ":4000",
			ReadTimeoutMS: 15000,
			IdleTimeoutMS: 60000,
		},
		Log:     LogConfig{Dir: "log", Level: "info"},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func (s ServerConfig) ReadTimeout() time.Duration  { return ms(s.ReadTimeoutMS) }
func (s ServerConfig) WriteTimeout() time.Duration { return ms(s.WriteTimeoutMS) }
func (s ServerConfig) IdleTimeout() time.Duration  { return ms(s.IdleTimeoutMS) }

// ZapLevel parses Level.
func (l LogConfig) ZapLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(strings.TrimSpace(l.Level))
}

// Validate checks static settings. Expr is resolved separately at startup.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Server.Listen) == "" {
		errs = append(errs, errors.New("server.listen is empty"))
	}
	if (c.Server.TLSCert == "") != (c.Server.TLSKey == "") {
		errs = append(errs, errors.New("server.tls_cert and server.tls_key must be set together"))
	}
	for name, v := range map[string]int{
		"server.read_timeout_ms":  c.Server.ReadTimeoutMS,
		"server.write_timeout_ms": c.Server.WriteTimeoutMS,
		"server.idle_timeout_ms":  c.Server.IdleTimeoutMS,
	} {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s is negative", name))
		}
	}
	if _, err := c.Log.ZapLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	for _, p := range c.Log.BodyPaths {
		if !strings.HasPrefix(strings.TrimSpace(p), "/") {
			errs = append(errs, fmt.Errorf("log.body_paths entry %q must start with /", p))
		}
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, fmt.Errorf("metrics.path %q must start with /", c.Metrics.Path))
	}
	return errors.Join(errs...)
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }
