package log

import (
	"bytes"
	"strings"
)

// continuationPrefix indents every line after the first one, so that
// multiline messages stay visually attached to their prefix.
const continuationPrefix = "    "

// write formats msg and sends it to the output stream with a single
// Write call. Lines are terminated with CRLF to keep output intact on
// raw terminals. A failed write is dropped, the diagnostic stream may
// be gone (eg. a closed tty) and that must not interrupt operation.
func (lg *Logger) write(msg string) {
	if lg.w == nil {
		return
	}

	msg = strings.TrimRight(msg, "\n")

	buf := &bytes.Buffer{}
	prefix := lg.prefix
	for _, line := range strings.Split(msg, "\n") {
		buf.WriteString(prefix)
		buf.WriteString(line)
		buf.WriteString("\r\n")
		prefix = continuationPrefix
	}
	_, _ = buf.WriteTo(lg.w)
}
