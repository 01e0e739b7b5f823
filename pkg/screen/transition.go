// ABOUTME: Process-wide lock serializing every terminal transition
// ABOUTME: Also tracks the single active raw-mode guard

package screen

import "sync"

var transitions struct {
	mu        sync.Mutex
	activeRaw *RawMode
}

// transition runs fn while holding the process-wide transition lock.
func transition(fn func() error) error {
	transitions.mu.Lock()
	defer transitions.mu.Unlock()

	return fn()
}

// ActiveRawMode returns the guard of the current raw-mode session, or nil.
func ActiveRawMode() *RawMode {
	transitions.mu.Lock()
	defer transitions.mu.Unlock()

	return transitions.activeRaw
}
