package scenelink

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var loggerVal atomic.Pointer[zap.Logger]

func init() {
	loggerVal.Store(zap.NewNop())
}

// Logger returns the library's logger instance.
// It is a no-op logger by default.
func Logger() *zap.Logger {
	return loggerVal.Load()
}

// SetLogger configures the logger used by scenelink and its sub-packages.
// Passing nil restores the default no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerVal.Store(l)
}
