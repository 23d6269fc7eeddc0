package serverfx

import (
	"github.com/joeydtaylor/steeze-calc/pkg/bundlefx"
	"github.com/joeydtaylor/steeze-calc/pkg/transport/httpx"
	"go.uber.org/fx"
)

// ---------- Options ----------

type Options struct {
	Service    string // for logs only
	ConfigPath string // empty: CALC_CONFIG, then an optional calc.toml
}

type Option func(*Options)

func WithService(s string) Option       { return func(o *Options) { o.Service = s } }
func WithConfigPath(path string) Option { return func(o *Options) { o.ConfigPath = path } }

func defaultOptions() Options {
	return Options{Service: "steeze-calc"}
}

// Module returns the complete Fx option set. Startup fails when EXPR is unset,
// unknown, or names a function that does not take exactly one argument.
func Module(opts ...Option) fx.Option {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return fx.Options(
		fx.Supply(o),
		fx.Provide(provideConfig),
		// Logger, access log, metrics handler
		bundlefx.Module,
		// Router impl
		fx.Provide(httpx.NewChi),
		// Configured function and the calculator around it
		fx.Provide(provideFunction, provideCalculator),
		// Router
		fx.Provide(fx.Annotate(
			provideRouter,
			fx.ParamTags(``, ``, ``, `name:"metrics"`, ``, ``), // cfg,calc,lm,m,r,zl
			fx.ResultTags(`name:"app"`),
		)),
		// Lifecycle
		fx.Invoke(registerHooks),
	)
}
