package logger

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger interface {
	Printf(s string, args ...any)
}

type logger struct {
	label string
	out   *log.Logger
}

// New returns a logger that prefixes every line with label and writes to
// stderr with the standard log flags.
func New(label string) Logger {
	return NewWriter(label, os.Stderr)
}

func NewWriter(label string, w io.Writer) Logger {
	return logger{label, log.New(w, "", log.LstdFlags)}
}

// NewFile returns a logger writing to path, rotated once it grows past
// maxSizeMB megabytes. Close the returned io.Closer when done.
func NewFile(label, path string, maxSizeMB int) (Logger, io.Closer) {
	f := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: 3,
		Compress:   true,
	}
	return NewWriter(label, f), f
}

func (l logger) Printf(s string, args ...any) {
	args = append([]any{l.label}, args...)
	l.out.Printf("[%s]\t"+s, args...)
}

// Discard drops everything.
var Discard Logger = discard{}

type discard struct{}

func (discard) Printf(string, ...any) {}
