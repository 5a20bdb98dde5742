package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	lg := NewWithWriter("server: ", DefaultLevel, buf)

	lg.Log("listening on port 12300")
	if got, want := buf.String(), "server: listening on port 12300\r\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteMultiline(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	lg := NewWithWriter("fw: ", DefaultLevel, buf)

	lg.Logf("loaded %d rules:\nallow 10.0.0.0/8\ndeny all", 2)
	want := "fw: loaded 2 rules:\r\n    allow 10.0.0.0/8\r\n    deny all\r\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteTrailingNewlines(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	lg := NewWithWriter("c: ", DefaultLevel, buf)

	lg.Log("done\n\n\n")
	if got, want := buf.String(), "c: done\r\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteEmptyMessage(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	lg := NewWithWriter("c: ", DefaultLevel, buf)

	lg.Log("")
	if got, want := buf.String(), "c: \r\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

type countingWriter struct {
	writes int
	buf    bytes.Buffer
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	cw.writes++
	return cw.buf.Write(p)
}

func TestWriteSingleCall(t *testing.T) {
	t.Parallel()

	cw := &countingWriter{}
	lg := NewWithWriter("c: ", DefaultLevel, cw)

	lg.Log("a\nb\nc")
	if cw.writes != 1 {
		t.Errorf("message was written with %d calls, want 1", cw.writes)
	}
}

func TestLevelGating(t *testing.T) {
	t.Parallel()

	for _, level := range []Level{DefaultLevel, DebugLevel, VerboseLevel, TraceLevel} {
		buf := &bytes.Buffer{}
		lg := NewWithWriter("", level, buf)

		lg.Log("log")
		lg.Debug("debug")
		lg.Debugf("debug%s", "f")
		lg.Verbose("verbose")
		lg.Verbosef("verbose%s", "f")
		lg.Trace("trace")
		lg.Tracef("trace%s", "f")

		lines := strings.Count(buf.String(), "\r\n")
		want := 1 + 2*int(level)
		if lines != want {
			t.Errorf("level %s: got %d lines, want %d", level.Name(), lines, want)
		}
	}
}

func TestNilLogger(t *testing.T) {
	t.Parallel()

	var lg *Logger
	lg.Log("log")
	lg.Logf("log %s", "f")
	lg.Debug("debug")
	lg.Verbosef("verbose %s", "f")
	lg.Trace("trace")

	if lg.Level() != DefaultLevel {
		t.Errorf("nil logger reports level %s", lg.Level().Name())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("stream closed")
}

func TestWriteErrorsSwallowed(t *testing.T) {
	t.Parallel()

	lg := NewWithWriter("c: ", TraceLevel, failingWriter{})
	lg.Log("one")
	lg.Tracef("two %d", 2)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level Level
	}{
		{"default", DefaultLevel},
		{"debug", DebugLevel},
		{"verbose", VerboseLevel},
		{"trace", TraceLevel},
		{"TRACE", TraceLevel},
		{"0", DefaultLevel},
		{"1", DebugLevel},
		{"2", VerboseLevel},
		{"3", TraceLevel},
		{"unknown", DefaultLevel},
		{"", DefaultLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.name); got != tt.level {
			t.Errorf("ParseLevel(%q) = %s, want %s", tt.name, got.Name(), tt.level.Name())
		}
	}
}
