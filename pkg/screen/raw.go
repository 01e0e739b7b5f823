// ABOUTME: RawMode guard: owns an active raw-mode session and restores it on release
// ABOUTME: Restore-on-release can be turned off; explicit Disable always reports errors

package screen

import (
	"github.com/mauromedda/termscreen/internal/log"
)

// RawMode is the guard of a raw-mode session.
//
// Release it with a deferred Release call. A RawMode is owned by one
// goroutine; the transitions it performs are serialized process-wide.
type RawMode struct {
	backend          Backend
	restoreOnRelease bool
	released         bool
}

// EnableRawMode switches the terminal to raw input using the selected backend.
func EnableRawMode() (*RawMode, error) {
	return EnableRawModeWith(Select())
}

// EnableRawModeWith switches the terminal to raw input using b.
//
// If another guard is active it is replaced: its later release still
// restores the mask bits, which ends raw mode for both.
func EnableRawModeWith(b Backend) (*RawMode, error) {
	r := &RawMode{backend: b, restoreOnRelease: true}
	err := transition(func() error {
		if err := b.EnableRawMode(); err != nil {
			return err
		}
		if transitions.activeRaw != nil {
			log.Warn("raw mode enabled while another raw-mode guard is active; the earlier guard no longer owns the session")
		}
		transitions.activeRaw = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Debug("raw mode enabled (%s backend)", b.Kind())
	return r, nil
}

// DisableRawMode restores normal input on the selected backend without a
// guard, e.g. after SetRestoreOnRelease(false).
func DisableRawMode() error {
	return disableRaw(Select(), nil)
}

// Disable restores normal input. It may be called more than once; setting
// already-set bits again is a no-op.
//
// Disable does not retire the guard: a deferred Release still restores the
// mask bits, ending any raw-mode session enabled after this call.
func (r *RawMode) Disable() error {
	return disableRaw(r.backend, r)
}

func disableRaw(b Backend, owner *RawMode) error {
	return transition(func() error {
		if err := b.DisableRawMode(); err != nil {
			return err
		}
		if owner == nil || transitions.activeRaw == owner {
			transitions.activeRaw = nil
		}
		return nil
	})
}

// SetRestoreOnRelease controls whether Release disables raw mode.
// The default is true.
func (r *RawMode) SetRestoreOnRelease(restore bool) {
	r.restoreOnRelease = restore
}

// RestoreOnRelease reports whether Release will disable raw mode.
func (r *RawMode) RestoreOnRelease() bool {
	return r.restoreOnRelease
}

// Release ends the session as a deferred finalizer: it runs at most once,
// disables raw mode only if RestoreOnRelease is set, and discards failures.
func (r *RawMode) Release() {
	if r == nil || r.released {
		return
	}
	r.released = true

	if !r.restoreOnRelease {
		log.Debug("raw mode kept on release")
		return
	}
	if err := r.Disable(); err != nil {
		log.Debug("discarding raw mode restore failure: %v", err)
	}
}
