// Package lineio provides line sources and sinks for a session.
package lineio

import (
	"bufio"
	"fmt"
	"io"
)

// MaxLineSize bounds a single command line read from a stream.
const MaxLineSize = 1 << 20

// ReaderSource reads newline-terminated lines from an io.Reader.
// Line endings ("\n" or "\r\n") are stripped.
type ReaderSource struct {
	scanner *bufio.Scanner
}

// NewReaderSource creates a source reading from r.
func NewReaderSource(r io.Reader) *ReaderSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MaxLineSize)
	return &ReaderSource{scanner: scanner}
}

// ReadLine returns the next line, or io.EOF once the reader is exhausted.
func (s *ReaderSource) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read line: %w", err)
	}
	return "", io.EOF
}

// WriterSink writes one line per call to a buffered writer.
// Flush must be called once the session is done.
type WriterSink struct {
	w *bufio.Writer
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: bufio.NewWriter(w)}
}

// WriteLine writes line followed by a newline.
func (s *WriterSink) WriteLine(line string) error {
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

// Flush writes any buffered output.
func (s *WriterSink) Flush() error {
	return s.w.Flush()
}

// QueueSource yields a fixed list of lines, then io.EOF.
type QueueSource struct {
	lines []string
}

// NewQueueSource creates a source over lines.
func NewQueueSource(lines ...string) *QueueSource {
	return &QueueSource{lines: append([]string(nil), lines...)}
}

// ReadLine dequeues the next line.
func (q *QueueSource) ReadLine() (string, error) {
	if len(q.lines) == 0 {
		return "", io.EOF
	}
	line := q.lines[0]
	q.lines = q.lines[1:]
	return line, nil
}

// Remaining returns how many lines have not been read.
func (q *QueueSource) Remaining() int {
	return len(q.lines)
}

// SliceSink collects output lines in memory.
type SliceSink struct {
	Lines []string
}

// WriteLine appends line to Lines.
func (s *SliceSink) WriteLine(line string) error {
	s.Lines = append(s.Lines, line)
	return nil
}
