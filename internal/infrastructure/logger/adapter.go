// Package logger adapts zap to the application's LoggerPort.
package logger

import (
	"fmt"

	"go.uber.org/zap"

	"business-advisor/internal/application/port/output"
)

var _ output.LoggerPort = (*ZapAdapter)(nil)

type ZapAdapter struct {
	sugar *zap.SugaredLogger
}

// NewZapAdapter builds a JSON production logger, or a human-readable
// development one when debug is set.
func NewZapAdapter(debug bool) (*ZapAdapter, error) {
	var (
		zl  *zap.Logger
		err error
	)
	if debug {
		zl, err = zap.NewDevelopment()
	} else {
		zl, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("create zap logger: %w", err)
	}

	return &ZapAdapter{sugar: zl.Sugar()}, nil
}

func (l *ZapAdapter) Debug(msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

func (l *ZapAdapter) Info(msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

func (l *ZapAdapter) Warn(msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

func (l *ZapAdapter) Error(msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

func (l *ZapAdapter) WithField(key string, value any) output.LoggerPort {
	return &ZapAdapter{sugar: l.sugar.With(key, value)}
}

func (l *ZapAdapter) Close() error {
	// stderr sync errors are expected on some platforms and not actionable
	_ = l.sugar.Sync()
	return nil
}
