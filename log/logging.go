// Package log provides the diagnostic logging facility shared by the
// hostenv packages. A Logger writes prefixed, CRLF terminated lines to
// a single stream and gates detail behind a verbosity level. Prefix,
// level and stream are fixed when the logger is created.
package log

import (
	"io"
	"os"
	"strings"
)

// Level describes a verbosity level.
type Level uint8

// Verbosity Levels.
const (
	DefaultLevel Level = 0
	DebugLevel   Level = 1
	VerboseLevel Level = 2
	TraceLevel   Level = 3
)

// Name returns the name of the verbosity level.
func (level Level) Name() string {
	switch level {
	case DefaultLevel:
		return "default"
	case DebugLevel:
		return "debug"
	case VerboseLevel:
		return "verbose"
	case TraceLevel:
		return "trace"
	default:
		return "invalid"
	}
}

// ParseLevel returns the verbosity level of a level name. Numeric
// values "0" to "3" are accepted as well. Unknown names parse as
// DefaultLevel.
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "0", "default":
		return DefaultLevel
	case "1", "debug":
		return DebugLevel
	case "2", "verbose":
		return VerboseLevel
	case "3", "trace":
		return TraceLevel
	}
	return DefaultLevel
}

// A Logger writes diagnostic messages to a single output stream. All
// methods may be called on a nil Logger, which silences them.
type Logger struct {
	prefix string
	level  Level
	w      io.Writer
}

// New returns a logger that writes to os.Stderr.
func New(prefix string, level Level) *Logger {
	return NewWithWriter(prefix, level, os.Stderr)
}

// NewWithWriter returns a logger that writes to w.
func NewWithWriter(prefix string, level Level, w io.Writer) *Logger {
	return &Logger{
		prefix: prefix,
		level:  level,
		w:      w,
	}
}

// Level returns the verbosity level the logger was created with.
func (lg *Logger) Level() Level {
	if lg == nil {
		return DefaultLevel
	}
	return lg.level
}
