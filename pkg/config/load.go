// pkg/config/load.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Environment keys.
const (
	EnvExpr    = "EXPR"
	EnvConfig  = "CALC_CONFIG"
	EnvListen  = "SERVER_LISTEN_ADDRESS"
	EnvTLSCert = "SSL_SERVER_CERTIFICATE"
	EnvTLSKey  = "SSL_SERVER_KEY"
	EnvLevel   = "LOG_LEVEL"
	EnvLogDir  = "LOG_DIR"
)

// DefaultPath is read when CALC_CONFIG is unset; it may be absent.
const DefaultPath = "calc.toml"

// Load reads path over Default, applies environment overrides and validates.
// A missing file is only an error when required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
	default:
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv loads CALC_CONFIG, or DefaultPath when unset.
func FromEnv() (Config, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfig)); p != "" {
		return Load(p, true)
	}
	return Load(DefaultPath, false)
}

func applyEnv(c *Config) {
	c.Expr = strings.TrimSpace(os.Getenv(EnvExpr))
	setIf(&c.Server.Listen, EnvListen)
	setIf(&c.Server.TLSCert, EnvTLSCert)
	setIf(&c.Server.TLSKey, EnvTLSKey)
	setIf(&c.Log.Level, EnvLevel)
	if v, ok := os.LookupEnv(EnvLogDir); ok {
		c.Log.Dir = strings.TrimSpace(v)
	}
}

func setIf(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
