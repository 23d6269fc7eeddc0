package core

import (
	"net/http"

	"github.com/joeydtaylor/steeze-calc/pkg/calc"
	"github.com/joeydtaylor/steeze-calc/pkg/middleware/logger"
	httpx "github.com/joeydtaylor/steeze-calc/pkg/transport/httpx"
	"go.uber.org/zap"
)

type BuildDeps struct {
	Calc    *calc.Calculator
	LogMW   *logger.Middleware
	Metrics http.Handler // nil disables the scrape route
	Router  httpx.Router
	Log     *zap.Logger
}
