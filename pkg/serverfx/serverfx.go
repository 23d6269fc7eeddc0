package serverfx

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/joeydtaylor/steeze-calc/pkg/calc"
	"github.com/joeydtaylor/steeze-calc/pkg/config"
	"github.com/joeydtaylor/steeze-calc/pkg/core"
	"github.com/joeydtaylor/steeze-calc/pkg/mathfn"
	"github.com/joeydtaylor/steeze-calc/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-calc/pkg/transport/httpx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ErrNoExpr is returned at startup when EXPR is unset.
var ErrNoExpr = errors.New("EXPR is not set")

func provideConfig(o Options) (config.Config, error) {
	if o.ConfigPath != "" {
		return config.Load(o.ConfigPath, true)
	}
	return config.FromEnv()
}

// ---------- Configured function ----------

func provideFunction(cfg config.Config, zl *zap.Logger) (mathfn.Unary, error) {
	if cfg.Expr == "" {
		zl.Error("expression missing", zap.String("env", config.EnvExpr))
		return mathfn.Unary{}, ErrNoExpr
	}
	fn, err := mathfn.Resolve(cfg.Expr)
	if err != nil {
		zl.Error("expression rejected",
			zap.String(config.EnvExpr, cfg.Expr),
			zap.Strings("available", mathfn.Names(1)),
			zap.Error(err),
		)
		return mathfn.Unary{}, fmt.Errorf("%s=%s: %w", config.EnvExpr, cfg.Expr, err)
	}
	zl.Info("expression resolved", zap.String(config.EnvExpr, fn.Name()))
	return fn, nil
}

func provideCalculator(fn mathfn.Unary, zl *zap.Logger) *calc.Calculator {
	return calc.New(fn, zl)
}

// ---------- Router ----------

func provideRouter(
	cfg config.Config,
	c *calc.Calculator,
	lm *logger.Middleware,
	/* name:"metrics" */ m http.Handler,
	r httpx.Router,
	zl *zap.Logger,
) http.Handler {
	return core.BuildRouter(cfg, core.BuildDeps{
		Calc:    c,
		LogMW:   lm,
		Metrics: m,
		Router:  r,
		Log:     zl,
	})
}

// ---------- Lifecycle (HTTP server) ----------

type serverDeps struct {
	fx.In
	Logger *zap.Logger
	App    http.Handler `name:"app"`
}

func registerHooks(lc fx.Lifecycle, o Options, cfg config.Config, d serverDeps) {
	sc := cfg.Server
	srv := &http.Server{
		Addr:         sc.Listen,
		Handler:      d.App,
		ReadTimeout:  sc.ReadTimeout(),
		WriteTimeout: sc.WriteTimeout(),
		IdleTimeout:  sc.IdleTimeout(),
		TLSConfig:    &tls.Config{MinVersion: tls.VersionTLS13, MaxVersion: tls.VersionTLS13},
	}
	useTLS := sc.TLSCert != ""

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if useTLS && !(fileExists(sc.TLSCert) && fileExists(sc.TLSKey)) {
				return fmt.Errorf("tls cert %q or key %q not found", sc.TLSCert, sc.TLSKey)
			}
			ln, err := net.Listen("tcp", sc.Listen)
			if err != nil {
				return fmt.Errorf("listen %s: %w", sc.Listen, err)
			}

			if useTLS {
				d.Logger.Info("server starting (TLS)",
					zap.String("service", o.Service),
					zap.String("addr", ln.Addr().String()),
					zap.String("cert", sc.TLSCert),
				)
				go func() {
					if err := srv.ServeTLS(ln, sc.TLSCert, sc.TLSKey); err != nil && !errors.Is(err, http.ErrServerClosed) {
						d.Logger.Fatal("server failed", zap.Error(err))
					}
				}()
				return nil
			}

			d.Logger.Info("server starting (PLAINTEXT)",
				zap.String("service", o.Service),
				zap.String("addr", ln.Addr().String()),
			)
			srv.TLSConfig = nil
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					d.Logger.Fatal("server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			d.Logger.Info("server stopping", zap.String("service", o.Service))
			err := srv.Shutdown(ctx)
			_ = d.Logger.Sync()
			return err
		},
	})
}

// ---------- tiny helpers ----------

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
