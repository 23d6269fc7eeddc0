// Command steeze-calc serves POST /calculate for the function named by EXPR.
package main

import (
	"github.com/joeydtaylor/steeze-calc/pkg/serverfx"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		serverfx.Module(serverfx.WithService("steeze-calc")),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger { return &fxevent.ZapLogger{Logger: l} }),
	).Run()
}
