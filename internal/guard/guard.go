// Package guard runs terminal cleanup exactly once, before a panic report
// reaches the screen.
package guard

import "sync"

// Guard holds a cleanup function until it is released
type Guard struct {
	mu       sync.Mutex
	consumed bool
	cleanup  func()
}

func New(cleanup func()) *Guard {
	return &Guard{cleanup: cleanup}
}

// Release runs the cleanup if it has not run yet
func (g *Guard) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.consumed {
		return
	}
	g.consumed = true
	if g.cleanup != nil {
		g.cleanup()
	}
}

// Dismiss marks the guard released without running the cleanup, for scopes
// whose resource was already given back some other way.
func (g *Guard) Dismiss() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.consumed = true
}

// Released reports whether the cleanup has run
func (g *Guard) Released() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.consumed
}

// Protect runs fn and releases the guard afterwards. If fn panics the guard
// is released first and the panic continues, so the runtime prints it on a
// restored terminal.
func (g *Guard) Protect(fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			g.Release()
			panic(r)
		}
	}()

	err := fn()
	g.Release()
	return err
}
