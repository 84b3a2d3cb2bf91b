package logging

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logLevelEnv = "GRID_LOG_LEVEL"

var (
	mu      sync.Mutex
	root    *zap.Logger
	level   = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	loggers = map[string]*zap.SugaredLogger{}
)

// Logger returns a named sugared logger for the given subsystem.
// Loggers are cached, so repeated calls with the same name share one instance.
func Logger(system string) *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[system]; ok {
		return l
	}
	l := rootLogger().Named(system).Sugar()
	loggers[system] = l
	return l
}

// SetLevel changes the level for all loggers. Unknown level strings are ignored.
func SetLevel(s string) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return
	}
	level.SetLevel(lvl)
}

func rootLogger() *zap.Logger {
	if root != nil {
		return root
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	root = zap.New(core)
	return root
}

func init() {
	if lvl := os.Getenv(logLevelEnv); lvl != "" {
		SetLevel(lvl)
	}
}
