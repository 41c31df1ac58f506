package logger

import (
	"go.uber.org/zap"
)

// NOOPLogger discards everything. It is the default for servers built
// without a logger, which keeps tests quiet.
var NOOPLogger = zap.NewNop().Sugar()

// New returns a JSON logger for deployed environments and a human readable
// development logger when appEnv is local or empty.
func New(appEnv string) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	switch appEnv {
	case "", "local", "test":
		l, err = zap.NewDevelopment()
	default:
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar().With("app_env", appEnv), nil
}
