// Package logx is a small leveled logger over the standard log package.
package logx

import (
	"io"
	"log"
	"strings"
)

// Level orders log severities; a Logger drops messages below its level.
type Level int

// Supported levels. LevelNone silences everything.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

// String returns the upper-case level name used as the message prefix.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// LevelFromString parses a level name. Unknown names map to LevelInfo.
func LevelFromString(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "NONE", "OFF":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Logger filters messages below its level. A nil *Logger discards everything.
type Logger struct {
	logger *log.Logger
	level  Level
}

// New returns a Logger writing timestamped lines to out.
func New(out io.Writer, level Level) *Logger {
	return &Logger{
		logger: log.New(out, "", log.LstdFlags|log.Lmicroseconds),
		level:  level,
	}
}

// Discard returns a logger that drops all output.
func Discard() *Logger { return New(io.Discard, LevelNone) }

func (l *Logger) logf(level Level, format string, v ...any) {
	if l == nil || level < l.level {
		return
	}
	l.logger.Printf(level.String()+": "+format, v...)
}

// Debugf logs at LevelDebug.
func (l *Logger) Debugf(format string, v ...any) { l.logf(LevelDebug, format, v...) }

// Infof logs at LevelInfo.
func (l *Logger) Infof(format string, v ...any) { l.logf(LevelInfo, format, v...) }

// Warnf logs at LevelWarn.
func (l *Logger) Warnf(format string, v ...any) { l.logf(LevelWarn, format, v...) }

// Errorf logs at LevelError.
func (l *Logger) Errorf(format string, v ...any) { l.logf(LevelError, format, v...) }

// SetLevel changes the threshold.
func (l *Logger) SetLevel(level Level) {
	if l != nil {
		l.level = level
	}
}

// Level reports the threshold; a nil Logger reports LevelNone.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelNone
	}
	return l.level
}
