package logger

import "fmt"

// Sink is the leveled diagnostic interface handed to components that
// should not depend on the logger package's globals directly. It is
// advisory only; implementations must never influence control flow.
type Sink interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type sink struct {
	prefix string
}

// NewSink returns a Sink that forwards to the package logger, tagging
// every message with the given prefix.
func NewSink(prefix string) Sink {
	return &sink{prefix: prefix}
}

func (s *sink) emit(level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if s.prefix != "" {
		msg = "[" + s.prefix + "] " + msg
	}
	AddLog(level, msg)
}

func (s *sink) Debugf(format string, args ...any) { s.emit(LevelDebug, format, args...) }
func (s *sink) Infof(format string, args ...any)  { s.emit(LevelInfo, format, args...) }
func (s *sink) Warnf(format string, args ...any)  { s.emit(LevelWarning, format, args...) }
func (s *sink) Errorf(format string, args ...any) { s.emit(LevelError, format, args...) }
