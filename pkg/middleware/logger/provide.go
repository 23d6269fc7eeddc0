package logger

import (
	"github.com/joeydtaylor/steeze-calc/pkg/config"
	"go.uber.org/zap"
)

// ProvideLogger builds the system logger (system.log).
func ProvideLogger(cfg config.Config) (*zap.Logger, error) {
	o, err := OptionsFromConfig(cfg.Log)
	if err != nil {
		return nil, err
	}
	return NewLog("system.log", o)
}

// ProvideLoggerMiddleware builds the access log middleware (http-access.log).
// Request bodies are logged only on the routes listed in log.body_paths.
func ProvideLoggerMiddleware(cfg config.Config) (*Middleware, error) {
	o, err := OptionsFromConfig(cfg.Log)
	if err != nil {
		return nil, err
	}
	o.OmitMessage = true
	o.Level = zap.InfoLevel
	l, err := NewLog("http-access.log", o)
	if err != nil {
		return nil, err
	}
	m := NewMiddleware(l)
	m.AddBodyLogPaths(cfg.Log.BodyPaths...)
	return m, nil
}
