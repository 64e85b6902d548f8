package types

import (
	"fmt"
	"log"
	"strings"
)

// Field is a structured key/value pair attached to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// Logger is the logging contract used by the cache.
// Plug in any structured logger by wrapping it in this interface.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// NoopLogger drops everything. It is the default.
type NoopLogger struct{}

func (NoopLogger) Debug(string, ...Field) {}
func (NoopLogger) Info(string, ...Field)  {}
func (NoopLogger) Error(string, ...Field) {}

// StdLogger writes through the standard log package.
// A nil Out uses log's default logger.
type StdLogger struct {
	Out *log.Logger

	// Verbose enables Debug lines.
	Verbose bool
}

func (l *StdLogger) Debug(msg string, fields ...Field) {
	if l.Verbose {
		l.logWithFields("DEBUG", msg, fields...)
	}
}

func (l *StdLogger) Info(msg string, fields ...Field) {
	l.logWithFields("INFO", msg, fields...)
}

func (l *StdLogger) Error(msg string, fields ...Field) {
	l.logWithFields("ERROR", msg, fields...)
}

func (l *StdLogger) logWithFields(level, msg string, fields ...Field) {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(level)
	b.WriteString("] ")
	b.WriteString(msg)
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}

	if l.Out != nil {
		l.Out.Println(b.String())
		return
	}
	log.Println(b.String())
}
