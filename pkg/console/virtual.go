// ABOUTME: Virtual implements Handle and ScreenBuffers in memory for tests without a real console
// ABOUTME: Records every successful call and lets tests inject per-operation failures

package console

import (
	"fmt"
	"sync"
)

// Call names recorded by Virtual.
const (
	CallGetMode           = "get-mode"
	CallSetMode           = "set-mode"
	CallActivateAlternate = "activate-alternate"
	CallActivatePrimary   = "activate-primary"
)

// Virtual is a fake console. It holds a mode bitmask and an alternate-buffer
// flag, records calls, and fails operations on demand.
type Virtual struct {
	mu        sync.Mutex
	mode      uint32
	alternate bool
	calls     []string
	failures  map[string]error
}

// NewVirtual returns a Virtual whose input mode starts at mode.
func NewVirtual(mode uint32) *Virtual {
	return &Virtual{
		mode:     mode,
		failures: make(map[string]error),
	}
}

// Mode returns the current bitmask.
func (v *Virtual) Mode() (uint32, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.failures[CallGetMode]; err != nil {
		return 0, fmt.Errorf("virtual get mode: %w", err)
	}
	v.calls = append(v.calls, CallGetMode)
	return v.mode, nil
}

// SetMode stores the bitmask.
func (v *Virtual) SetMode(mode uint32) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.failures[CallSetMode]; err != nil {
		return fmt.Errorf("virtual set mode: %w", err)
	}
	v.calls = append(v.calls, CallSetMode)
	v.mode = mode
	return nil
}

// ActivateAlternate marks the alternate buffer active.
func (v *Virtual) ActivateAlternate() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.failures[CallActivateAlternate]; err != nil {
		return fmt.Errorf("virtual activate alternate: %w", err)
	}
	v.calls = append(v.calls, CallActivateAlternate)
	v.alternate = true
	return nil
}

// ActivatePrimary marks the primary buffer active.
func (v *Virtual) ActivatePrimary() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.failures[CallActivatePrimary]; err != nil {
		return fmt.Errorf("virtual activate primary: %w", err)
	}
	v.calls = append(v.calls, CallActivatePrimary)
	v.alternate = false
	return nil
}

// --- Test helpers (not part of Handle or ScreenBuffers) ---

// Fail makes the named call return err until cleared with a nil err.
func (v *Virtual) Fail(call string, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err == nil {
		delete(v.failures, call)
		return
	}
	v.failures[call] = err
}

// Mutate changes the bitmask without recording a call, simulating another
// process touching the console.
func (v *Virtual) Mutate(mode uint32) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.mode = mode
}

// Current returns the bitmask without recording a call.
func (v *Virtual) Current() uint32 {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.mode
}

// IsAlternate reports whether the alternate buffer is active.
func (v *Virtual) IsAlternate() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.alternate
}

// Calls returns a copy of the recorded call log.
func (v *Virtual) Calls() []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]string, len(v.calls))
	copy(out, v.calls)
	return out
}

// Reset clears the call log.
func (v *Virtual) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.calls = nil
}
