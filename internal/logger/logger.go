package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logFile *os.File
	mu      sync.Mutex
	log     = newLogger()
)

const (
	maxLogSize = 5 * 1024 * 1024 // 5MB
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// Init opens the log file at path. Nothing is logged until Init succeeds,
// since the terminal belongs to the browser.
func Init(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}

	// Check if log file needs rotation
	if info, err := os.Stat(path); err == nil {
		if info.Size() > maxLogSize {
			oldPath := path + ".old"
			os.Remove(oldPath)
			os.Rename(path, oldPath)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	logFile = file
	log.SetOutput(file)
	return nil
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()

	log.SetOutput(io.Discard)
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// Disable disables logging (useful for tests)
func Disable() {
	log.SetLevel(logrus.PanicLevel)
}

// Enable enables logging
func Enable() {
	log.SetLevel(logrus.InfoLevel)
}

// Error logs an error message
func Error(format string, args ...any) {
	log.Errorf(format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...any) {
	log.Warnf(format, args...)
}

// Info logs an informational message
func Info(format string, args ...any) {
	log.Infof(format, args...)
}
