package routemap

import "go.uber.org/zap"

// zapLogger adapts a zap sugared logger to the Logger interface.
type zapLogger struct {
	log *zap.SugaredLogger
}

// NewZapLogger wraps a zap sugared logger so it can be passed anywhere a
// Logger is accepted.
func NewZapLogger(log *zap.SugaredLogger) Logger {
	return &zapLogger{log: log}
}

func (z *zapLogger) Debug(format string, args ...any) {
	z.log.Debugf(format, args...)
}

func (z *zapLogger) Info(format string, args ...any) {
	z.log.Infof(format, args...)
}

func (z *zapLogger) Error(format string, args ...any) {
	z.log.Errorf(format, args...)
}
