// bundlefx/bundlefx.go
package bundlefx

import (
	"github.com/joeydtaylor/steeze-calc/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-calc/pkg/middleware/metrics"
	"go.uber.org/fx"
)

// Module provides the ambient middleware: system logger, access log
// middleware and the prometheus handler (named "metrics").
var Module = fx.Options(
	logger.Module,
	fx.Provide(fx.Annotate(metrics.ProvideMetrics, fx.ResultTags(`name:"metrics"`))),
)
