// ABOUTME: AlternateScreen guard: owns the alternate-screen session and an optional nested raw guard
// ABOUTME: Entering with raw mode rolls the screen back when raw mode cannot be enabled

package screen

import (
	"github.com/mauromedda/termscreen/internal/log"
)

// AlternateScreen is the guard of an alternate-screen session.
//
// Unlike RawMode it has no opt-out: Leave and Release always switch back to
// the main screen. A nested raw-mode guard is released first.
type AlternateScreen struct {
	backend  Backend
	raw      *RawMode
	released bool
}

// EnterAlternateScreen switches to the alternate screen using the selected
// backend and, if raw is set, enables raw mode as well.
func EnterAlternateScreen(raw bool) (*AlternateScreen, error) {
	return EnterAlternateScreenWith(Select(), raw)
}

// EnterAlternateScreenWith is EnterAlternateScreen against b.
//
// If raw mode cannot be enabled the alternate screen is left again before the
// error is returned; the error's class is ErrComposition and it wraps the
// raw-mode failure. No guard is returned on error.
func EnterAlternateScreenWith(b Backend, raw bool) (*AlternateScreen, error) {
	if err := transition(b.EnterAlternateScreen); err != nil {
		return nil, err
	}
	s := &AlternateScreen{backend: b}

	if raw {
		r, err := EnableRawModeWith(b)
		if err != nil {
			if lerr := transition(b.LeaveAlternateScreen); lerr != nil {
				log.Debug("discarding alternate screen rollback failure: %v", lerr)
			}
			return nil, compositionError("enter alternate screen in raw mode", err)
		}
		s.raw = r
	}

	log.Debug("entered alternate screen (%s backend, raw=%t)", b.Kind(), raw)
	return s, nil
}

// Raw returns the nested raw-mode guard, or nil when raw mode was not requested.
func (s *AlternateScreen) Raw() *RawMode {
	return s.raw
}

// Leave disables the nested raw mode (unless its restore-on-release is off)
// and then switches back to the main screen. The screen switch is attempted
// even when the raw step fails; the first error is returned.
//
// Leave may be called more than once. It does not retire the guard: a
// deferred Release still leaves the alternate screen afterwards, which undoes
// any newer alternate-screen session entered in between. Drop or release the
// guard before entering again.
func (s *AlternateScreen) Leave() error {
	var first error
	if s.raw != nil && s.raw.RestoreOnRelease() {
		first = s.raw.Disable()
	}
	if err := transition(s.backend.LeaveAlternateScreen); err != nil && first == nil {
		first = err
	}
	return first
}

// Release is the deferred form of Leave: it runs at most once and discards
// failures.
func (s *AlternateScreen) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true

	s.raw.Release()
	if err := transition(s.backend.LeaveAlternateScreen); err != nil {
		log.Debug("discarding alternate screen restore failure: %v", err)
	}
}
