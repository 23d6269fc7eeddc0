package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joeydtaylor/steeze-calc/pkg/config"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls the cores built by NewLog.
type Options struct {
	Dir         string // rotating file output under Dir; empty disables it
	Level       zapcore.Level
	OmitMessage bool      // access logs carry everything in fields
	Console     io.Writer // defaults to stdout
}

// OptionsFromConfig maps the [log] section onto Options.
func OptionsFromConfig(c config.LogConfig) (Options, error) {
	lvl, err := c.ZapLevel()
	if err != nil {
		return Options{}, fmt.Errorf("log level: %w", err)
	}
	return Options{Dir: c.Dir, Level: lvl}, nil
}

// NewLog builds a JSON logger teed to log/<name> (rotated) and the console.
// On a terminal the console core switches to a colored, human readable encoder.
func NewLog(name string, o Options) (*zap.Logger, error) {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if o.OmitMessage {
		cfg.MessageKey = zapcore.OmitKey
	}

	cores := make([]zapcore.Core, 0, 2)
	if o.Dir != "" {
		if err := os.MkdirAll(o.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("log dir: %w", err)
		}
		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(o.Dir, name),
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(cfg), w, o.Level))
	}

	var enc zapcore.Encoder
	console := o.Console
	if console == nil {
		if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			cc := cfg
			cc.EncodeLevel = zapcore.CapitalColorLevelEncoder
			enc = zapcore.NewConsoleEncoder(cc)
			console = colorable.NewColorableStdout()
		} else {
			console = os.Stdout
		}
	}
	if enc == nil {
		enc = zapcore.NewJSONEncoder(cfg)
	}
	cores = append(cores, zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(console)), o.Level))

	return zap.New(zapcore.NewTee(cores...)), nil
}
