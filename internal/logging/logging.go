// Package logging defines the severity-tagged sink the guard reports
// through, plus a logrus-backed console implementation for real use.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Level is the severity of a log line.
type Level int

const (
	Info Level = iota
	Warning
	Error
)

// Sink receives severity-tagged messages. Callers never inspect the outcome
// of a Log call; a sink failure stays inside the sink.
type Sink interface {
	Log(level Level, msg string)
}

// Discard is a Sink that drops every message.
var Discard Sink = discardSink{}

type discardSink struct{}

func (discardSink) Log(Level, string) {}

// LogrusSink writes each message through a logrus logger at the matching level.
type LogrusSink struct {
	logger *logrus.Logger
}

var _ Sink = (*LogrusSink)(nil)

// NewLogrusSink returns a sink writing timestampless text lines to stdout.
func NewLogrusSink() *LogrusSink {
	return newLogrusSink(os.Stdout)
}

func newLogrusSink(out io.Writer) *LogrusSink {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return &LogrusSink{logger: l}
}

func (s *LogrusSink) Log(level Level, msg string) {
	switch level {
	case Error:
		s.logger.Error(msg)
	case Warning:
		s.logger.Warn(msg)
	default:
		s.logger.Info(msg)
	}
}
