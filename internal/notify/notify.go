// Package notify delivers user-facing reports from deep engine code
// without a global bus. Components that can fail in ways the user
// should see receive a Sink at construction; everything else stays
// silent.
package notify

import "go.uber.org/zap"

// Sink receives reports. Implementations must be safe for concurrent
// use. Arguments are alternating key/value pairs.
type Sink interface {
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

type nopSink struct{}

func (nopSink) Info(string, ...any)  {}
func (nopSink) Warn(string, ...any)  {}
func (nopSink) Error(string, ...any) {}

// Nop returns a sink that discards everything.
func Nop() Sink { return nopSink{} }

type zapSink struct {
	l *zap.SugaredLogger
}

// NewZap returns a sink that forwards to a zap logger.
func NewZap(l *zap.Logger) Sink {
	return zapSink{l: l.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (s zapSink) Info(msg string, kv ...any)  { s.l.Infow(msg, kv...) }
func (s zapSink) Warn(msg string, kv ...any)  { s.l.Warnw(msg, kv...) }
func (s zapSink) Error(msg string, kv ...any) { s.l.Errorw(msg, kv...) }
