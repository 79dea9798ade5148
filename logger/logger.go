package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/linelog/linelog/core"
	"github.com/linelog/linelog/handler"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// Logger is the main logging interface (immutable)
type Logger struct {
	handler       handler.Handler
	level         core.Level
	name          string
	includeCaller bool
	callerSkip    int
	coarseClock   bool
	recycleRecord bool
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler       handler.Handler
	level         core.Level
	name          string
	includeCaller bool
	callerSkip    int
	coarseClock   bool
	recycleRecord bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel, // Default level
		callerSkip: 3,              // Default skip for GetCaller
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	// Pre-compute recycleRecord to avoid interface assertion on the hot path
	if rc, ok := h.(handler.RecordRecycler); ok {
		b.recycleRecord = rc.CanRecycleRecord()
	} else {
		b.recycleRecord = false
	}
	return b
}

// WithLevel sets the severity threshold; records below it are never
// handed to the formatter or handler
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithName sets the logger name, rendered by the {name} template token
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithCaller enables caller information, feeding the {file_name},
// {line_number} and {function_name} template tokens
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithCallerSkip adjusts the stack depth used for caller capture,
// for wrapper functions layered above the logger
func (b *Builder) WithCallerSkip(skip int) *Builder {
	b.callerSkip = skip
	return b
}

// WithCoarseClock stamps records from the cached coarse clock instead
// of time.Now(); StartCoarseClock is called as needed
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	b.coarseClock = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	if b.coarseClock {
		core.StartCoarseClock()
	}
	return &Logger{
		handler:       b.handler,
		level:         b.level,
		name:          b.name,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
		coarseClock:   b.coarseClock,
		recycleRecord: b.recycleRecord,
	}
}

// Named creates a child logger whose name extends the parent's with a
// dot-separated segment (immutable operation)
func (l *Logger) Named(segment string) *Logger {
	child := *l
	if l.name == "" {
		child.name = segment
	} else {
		child.name = l.name + "." + segment
	}
	return &child
}

// Enabled reports whether records at the given level would be emitted
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.level
}

// log is the internal logging method; the level check happened already
func (l *Logger) log(level core.Level, msg string) {
	// Handler check - exit if no handler (avoid any work)
	if l.handler == nil {
		return
	}

	r := core.GetRecord()
	if l.coarseClock {
		r.Time = core.CoarseNow()
	} else {
		r.Time = time.Now()
	}
	r.Level = level
	r.Name = l.name
	r.Message = msg
	if l.includeCaller {
		r.Caller = core.GetCaller(l.callerSkip)
	}

	if err := l.handler.Handle(r); err != nil {
		return
	}

	// Return record to pool if handler supports it
	if l.recycleRecord {
		core.PutRecord(r)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, msg)
}

// Fatal logs a fatal message, closes the handler and exits the program
func (l *Logger) Fatal(msg string) {
	l.log(core.FatalLevel, msg)
	if l.handler != nil {
		_ = l.handler.Close()
	}
	osExit(1)
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...))
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...))
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, args ...interface{}) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...))
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...))
}

// Fatalf logs a formatted fatal message, closes the handler and exits
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.log(core.FatalLevel, fmt.Sprintf(format, args...))
	if l.handler != nil {
		_ = l.handler.Close()
	}
	osExit(1)
}
