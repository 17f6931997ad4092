package longest

import (
	"io"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
)

// LogSink observes strict improvements of the best path.
//
// Found receives the new best path; the slice is owned by the search and is
// only valid during the call. Implementations must not block for long and
// must not fail the search: errors are theirs to swallow.
type LogSink interface {
	Found(path []int)
}

// SinkFunc adapts a function to LogSink.
type SinkFunc func(path []int)

// Found calls f(path).
func (f SinkFunc) Found(path []int) { f(path) }

// WriterSink writes the two-line progress record
//
//	LOG: Found path <first> -> <second> (length <edges>)
//	path: <v0> <v1> ... <vk>
//
// to an io.Writer. Write errors are ignored. If the writer has a
// Flush() error method (e.g. *bufio.Writer) it is flushed after each record.
// A WriterSink is safe for concurrent use.
type WriterSink struct {
	mu  sync.Mutex
	w   io.Writer
	buf []byte
}

// NewWriterSink returns a WriterSink for w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Found formats and writes one record. A single-vertex path repeats its
// vertex as <second>.
func (s *WriterSink) Found(path []int) {
	if len(path) == 0 {
		return
	}
	second := path[0]
	if len(path) > 1 {
		second = path[1]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b := append(s.buf[:0], "LOG: Found path "...)
	b = strconv.AppendInt(b, int64(path[0]), 10)
	b = append(b, " -> "...)
	b = strconv.AppendInt(b, int64(second), 10)
	b = append(b, " (length "...)
	b = strconv.AppendInt(b, int64(len(path)-1), 10)
	b = append(b, ")\npath:"...)
	for _, v := range path {
		b = append(b, ' ')
		b = strconv.AppendInt(b, int64(v), 10)
	}
	b = append(b, '\n')
	s.buf = b

	_, _ = s.w.Write(b)
	if f, ok := s.w.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}

// ZerologSink reports improvements as structured log events.
type ZerologSink struct {
	log   zerolog.Logger
	level zerolog.Level
}

// NewZerologSink logs improvements on l at debug level.
func NewZerologSink(l zerolog.Logger) ZerologSink {
	return ZerologSink{log: l, level: zerolog.DebugLevel}
}

// WithLevel returns a copy of s that logs at level.
func (s ZerologSink) WithLevel(level zerolog.Level) ZerologSink {
	s.level = level
	return s
}

// Found emits one event with the path and its length in edges.
func (s ZerologSink) Found(path []int) {
	if len(path) == 0 {
		return
	}
	s.log.WithLevel(s.level).
		Int("first", path[0]).
		Int("length", len(path)-1).
		Ints("path", path).
		Msg("found path")
}
