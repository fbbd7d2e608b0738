package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is the session log file, relative to the working directory (project root
// when run via go run ./cmd/modeller).
const LogFilePath = "logs/modeller.txt"

// maxLines caps the in-memory history the console can scroll through; the on-disk log
// keeps everything.
const maxLines = 500

// Logger records editor events and console lines in memory and appends them to a file
// on disk. Disk errors are swallowed: losing the file never breaks the session.
type Logger struct {
	mu    sync.Mutex
	lines []string
}

// New returns a Logger and ensures the logs directory exists.
func New() *Logger {
	_ = os.MkdirAll(filepath.Dir(LogFilePath), 0755)
	return &Logger{}
}

// Log records one line, stamped with the wall-clock time.
func (l *Logger) Log(line string) {
	stamped := "[" + time.Now().Format("15:04:05") + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = l.lines[len(l.lines)-maxLines:]
	}
	l.mu.Unlock()

	f, err := os.OpenFile(LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf records a formatted line.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of the in-memory history.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
