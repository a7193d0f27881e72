package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LFroesch/fap/internal/logger"
)

// ErrNotDirectory is returned when the start path is not a directory
var ErrNotDirectory = errors.New("not a directory")

// Options holds everything fap can be told from the command line
type Options struct {
	LaunchDir  string // working directory at startup; printed on escape
	StartDir   string // directory shown first
	LogFile    string // empty disables logging
	ShowHidden bool
}

// Default returns options for browsing the working directory
func Default() (*Options, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot get working directory: %w", err)
	}
	return &Options{
		LaunchDir:  cwd,
		StartDir:   cwd,
		ShowHidden: true,
	}, nil
}

// Validate makes StartDir absolute and checks it can be browsed
func (o *Options) Validate() error {
	if o.StartDir == "" {
		o.StartDir = o.LaunchDir
	}

	abs, err := filepath.Abs(o.StartDir)
	if err != nil {
		return fmt.Errorf("cannot resolve %s: %w", o.StartDir, err)
	}
	o.StartDir = filepath.Clean(abs)

	info, err := os.Stat(o.StartDir)
	if err != nil {
		logger.Error("Failed to stat start directory %s: %v", o.StartDir, err)
		return fmt.Errorf("cannot open %s: %w", o.StartDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", o.StartDir, ErrNotDirectory)
	}
	return nil
}

// DefaultLogPath returns ~/.config/fap/fap.log, used when --log is given without a path
func DefaultLogPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "fap", "fap.log"), nil
}
