package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/kaigouthro/pinelint/internal/interfaces"
)

// StderrLogger is a tiny, structured logger. It implements interfaces.Logger
// and prints JSON lines to stderr, keeping stdout free for the lint result.
type StderrLogger struct {
	component string
	fields    []interfaces.Field

	mu  *sync.Mutex
	out io.Writer
}

// NewStderrLogger creates a new StderrLogger. component is optional and is
// included on every line.
func NewStderrLogger(component string) *StderrLogger {
	return NewWriterLogger(component, os.Stderr)
}

// NewWriterLogger is NewStderrLogger with an explicit sink, for tests.
func NewWriterLogger(component string, out io.Writer) *StderrLogger {
	return &StderrLogger{
		component: component,
		mu:        &sync.Mutex{},
		out:       out,
	}
}

func (s *StderrLogger) log(level string, msg string, fields ...interfaces.Field) {
	type outEntry struct {
		Level     string         `json:"level"`
		Msg       string         `json:"msg"`
		Component string         `json:"component,omitempty"`
		Time      string         `json:"time"`
		Fields    map[string]any `json:"fields,omitempty"`
	}
	m := make(map[string]any)
	for _, f := range s.fields {
		m[f.Key] = f.Value
	}
	for _, f := range fields {
		m[f.Key] = f.Value
	}
	entry := outEntry{
		Level:     level,
		Msg:       msg,
		Component: s.component,
		Time:      time.Now().UTC().Format(time.RFC3339),
		Fields:    m,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	enc, err := json.Marshal(entry)
	if err != nil {
		// Fallback simple formatting if JSON marshal fails
		fmt.Fprintf(s.out, "%s %s %v\n", level, msg, m)
		return
	}
	fmt.Fprintln(s.out, string(enc))
}

func (s *StderrLogger) Debug(msg string, fields ...interfaces.Field) {
	s.log("debug", msg, fields...)
}

func (s *StderrLogger) Info(msg string, fields ...interfaces.Field) {
	s.log("info", msg, fields...)
}

func (s *StderrLogger) Warn(msg string, fields ...interfaces.Field) {
	s.log("warn", msg, fields...)
}

func (s *StderrLogger) Error(msg string, fields ...interfaces.Field) {
	s.log("error", msg, fields...)
}

// With returns a child logger that carries the given fields on every line.
// A "component" field renames the child's component instead.
func (s *StderrLogger) With(fields ...interfaces.Field) interfaces.Logger {
	child := &StderrLogger{
		component: s.component,
		fields:    append(append([]interfaces.Field(nil), s.fields...), fields...),
		mu:        s.mu,
		out:       s.out,
	}
	kept := child.fields[:0]
	for _, f := range child.fields {
		if f.Key == "component" {
			if str, ok := f.Value.(string); ok {
				child.component = str
				continue
			}
		}
		kept = append(kept, f)
	}
	child.fields = kept
	return child
}
