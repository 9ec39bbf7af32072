package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file, relative to the working directory.
const DefaultPath = "logs/cube.txt"

// maxLines bounds the in-memory history shown by the console.
const maxLines = 500

// Level tags a log line.
type Level string

const (
	Info  Level = "INFO"
	Warn  Level = "WARN"
	Error Level = "ERROR"
)

// Logger keeps recent lines in memory (for the console) and appends every line to a file on disk.
// Each entry is prefixed with [timestamp] LEVEL. An empty path disables the file.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to path and ensures its directory exists.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, now: time.Now}
}

// Log records line at Info level.
func (l *Logger) Log(line string) {
	l.write(Info, line)
}

// Logf records a formatted line at the given level.
func (l *Logger) Logf(level Level, format string, args ...any) {
	l.write(level, fmt.Sprintf(format, args...))
}

func (l *Logger) write(level Level, line string) {
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + string(level) + " " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-maxLines:]...)
	}
	l.mu.Unlock()

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
