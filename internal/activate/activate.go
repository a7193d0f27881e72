package activate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/LFroesch/fap/internal/listing"
)

// Outcome says what activating a row did
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeNavigated
	OutcomeIgnored
	OutcomeLaunched
	OutcomeOpened
)

// Result carries the new directory and its listing when Outcome is OutcomeNavigated
type Result struct {
	Outcome Outcome
	Dir     string
	Listing listing.Listing
}

// LaunchError is returned when a file could not be started or opened.
// It never ends the session.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("cannot launch %s: %v", filepath.Base(e.Path), e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// ignoredNames are desktop metadata files that make no sense to launch
var ignoredNames = []string{"*.desktop", ".directory", "desktop.ini"}

// Activator handles enter on a row
type Activator struct {
	builder  listing.Builder
	launcher Launcher
	ignore   []glob.Glob
}

func New(builder listing.Builder, launcher Launcher) *Activator {
	a := &Activator{builder: builder, launcher: launcher}
	for _, pattern := range ignoredNames {
		a.ignore = append(a.ignore, glob.MustCompile(pattern))
	}
	return a
}

// Activate descends into directories and launches or opens files.
// Listing errors are returned as is; launch failures come back as *LaunchError.
func (a *Activator) Activate(row listing.Row) (Result, error) {
	if !row.Navigable() {
		return Result{Outcome: OutcomeNone}, nil
	}

	info, err := os.Stat(row.Target)
	if err != nil {
		return Result{}, fmt.Errorf("cannot stat %s: %w: %w", row.Target, listing.ErrIO, err)
	}

	if info.IsDir() {
		l, err := a.builder.Build(row.Target)
		if err != nil {
			return Result{}, err
		}
		return Result{Outcome: OutcomeNavigated, Dir: row.Target, Listing: l}, nil
	}

	if a.ignored(row.Target) {
		return Result{Outcome: OutcomeIgnored}, nil
	}

	if a.launcher.IsExecutable(row.Target) {
		if err := a.launcher.SpawnDetached(row.Target); err != nil {
			return Result{}, &LaunchError{Path: row.Target, Err: err}
		}
		return Result{Outcome: OutcomeLaunched}, nil
	}

	if err := a.launcher.OpenDefault(row.Target); err != nil {
		return Result{}, &LaunchError{Path: row.Target, Err: err}
	}
	return Result{Outcome: OutcomeOpened}, nil
}

func (a *Activator) ignored(path string) bool {
	name := filepath.Base(path)
	for _, g := range a.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}
