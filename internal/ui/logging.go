package ui

import (
	"fmt"
	"io"
	"os"
)

type Logger struct {
	Debug bool
	Out   io.Writer
}

func NewLogger(debug bool) *Logger {
	return &Logger{Debug: debug, Out: os.Stdout}
}

func (l *Logger) Debugf(format string, args ...any) {
	if l != nil && l.Debug {
		l.printf("[DEBUG] "+format, args...)
	}
}

func (l *Logger) Infof(format string, args ...any) {
	if l != nil {
		l.printf("[INFO] "+format, args...)
	}
}

func (l *Logger) Errorf(format string, args ...any) {
	if l != nil {
		l.printf("[ERROR] "+format, args...)
	}
}

func (l *Logger) printf(format string, args ...any) {
	out := l.Out
	if out == nil {
		out = os.Stdout
	}
	_, _ = fmt.Fprintf(out, format, args...)
}
