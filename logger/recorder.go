package logger

import (
	"fmt"
	"time"
)

// Recorder keeps log lines in memory, in the order they were written.
type Recorder struct {
	entries []Entry
}

type Entry struct {
	LogAt time.Time
	Label string
	Log   string
}

func NewRecorder() *Recorder {
	return &Recorder{
		entries: []Entry{},
	}
}

func (r *Recorder) Log(label, s string, args ...any) {
	r.entries = append(r.entries, Entry{
		LogAt: time.Now(),
		Label: label,
		Log:   fmt.Sprintf(s, args...),
	})
}

func (r *Recorder) Entries() []Entry {
	return r.entries
}

// Lines returns the formatted messages without timestamps.
func (r *Recorder) Lines() []string {
	lines := make([]string, len(r.entries))
	for i, entry := range r.entries {
		lines[i] = entry.Log
	}
	return lines
}

// Logger returns a logger that records into r and also writes to inner.
// A nil inner records only.
func (r *Recorder) Logger(label string, inner Logger) Logger {
	if inner == nil {
		inner = Discard
	}
	return &recordingLogger{
		label: label,
		rec:   r,
		inner: inner,
	}
}

type recordingLogger struct {
	label string
	rec   *Recorder
	inner Logger
}

func (rl *recordingLogger) Printf(s string, args ...any) {
	rl.inner.Printf(s, args...)
	rl.rec.Log(rl.label, s, args...)
}
