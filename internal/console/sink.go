package console

import (
	"fmt"
	"io"
)

// WriterSink writes each emitted line to an io.Writer.
// It implements service.OutputSink.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a WriterSink on w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Emit writes line followed by a newline.
func (s *WriterSink) Emit(line string) {
	_, _ = fmt.Fprintln(s.w, line)
}
