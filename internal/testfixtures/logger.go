package testfixtures

import (
	"fmt"
	"strings"
	"sync"
)

// Logger collects formatted log lines so tests can assert on them.
type Logger struct {
	mu    sync.Mutex
	lines []string
}

// NewLogger returns an empty collecting logger.
func NewLogger() *Logger {
	return &Logger{}
}

func (l *Logger) Debug(format string, v ...interface{}) { l.add("DEBUG", format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.add("INFO", format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.add("WARN", format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.add("ERROR", format, v...) }

// Lines returns a copy of the collected lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// Contains reports whether any collected line contains substr.
func (l *Logger) Contains(substr string) bool {
	for _, line := range l.Lines() {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func (l *Logger) add(level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+" "+fmt.Sprintf(format, v...))
}
