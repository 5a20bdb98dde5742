package log

import "fmt"

func (lg *Logger) fastcheck(level Level) bool {
	return lg != nil && lg.level >= level
}

// Log writes a message regardless of the verbosity level.
func (lg *Logger) Log(msg string) {
	if lg != nil {
		lg.write(msg)
	}
}

// Logf writes a formatted message regardless of the verbosity level.
func (lg *Logger) Logf(format string, things ...interface{}) {
	if lg != nil {
		lg.write(fmt.Sprintf(format, things...))
	}
}

// Debug is used to log significant events and decisions. Only written
// at verbosity level 1 or higher.
func (lg *Logger) Debug(msg string) {
	if lg.fastcheck(DebugLevel) {
		lg.write(msg)
	}
}

// Debugf is used to log significant events and decisions. Only written
// at verbosity level 1 or higher.
func (lg *Logger) Debugf(format string, things ...interface{}) {
	if lg.fastcheck(DebugLevel) {
		lg.write(fmt.Sprintf(format, things...))
	}
}

// Verbose is used to log the outcome of notable operations. Only
// written at verbosity level 2 or higher.
func (lg *Logger) Verbose(msg string) {
	if lg.fastcheck(VerboseLevel) {
		lg.write(msg)
	}
}

// Verbosef is used to log the outcome of notable operations. Only
// written at verbosity level 2 or higher.
func (lg *Logger) Verbosef(format string, things ...interface{}) {
	if lg.fastcheck(VerboseLevel) {
		lg.write(fmt.Sprintf(format, things...))
	}
}

// Trace is used to log tiny steps. Only written at verbosity level 3.
func (lg *Logger) Trace(msg string) {
	if lg.fastcheck(TraceLevel) {
		lg.write(msg)
	}
}

// Tracef is used to log tiny steps. Only written at verbosity level 3.
func (lg *Logger) Tracef(format string, things ...interface{}) {
	if lg.fastcheck(TraceLevel) {
		lg.write(fmt.Sprintf(format, things...))
	}
}
