// ABOUTME: Process-wide backend selection, memoized; hosts may pin a preference beforehand
// ABOUTME: Auto selection is platform-defined: constant on unix, probed on Windows

package screen

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mauromedda/termscreen/internal/log"
	"github.com/mauromedda/termscreen/pkg/console"
)

// Preference pins backend selection.
type Preference int

const (
	PreferAuto Preference = iota
	PreferANSI
	PreferNative
)

// String returns the config spelling of the preference.
func (p Preference) String() string {
	switch p {
	case PreferANSI:
		return "ansi"
	case PreferNative:
		return "native"
	default:
		return "auto"
	}
}

// ParsePreference accepts auto, ansi or native; the empty string means auto.
func ParsePreference(s string) (Preference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return PreferAuto, nil
	case "ansi":
		return PreferANSI, nil
	case "native":
		return PreferNative, nil
	default:
		return PreferAuto, fmt.Errorf("unknown backend %q (want auto, ansi or native)", s)
	}
}

var selection struct {
	mu      sync.Mutex
	pref    Preference
	backend Backend
}

// SetPreference pins the backend used by Select. It must be called before
// the first selection; afterwards it returns ErrAlreadySelected.
func SetPreference(p Preference) error {
	selection.mu.Lock()
	defer selection.mu.Unlock()

	if selection.backend != nil {
		return ErrAlreadySelected
	}
	selection.pref = p
	return nil
}

// Select returns the process-wide backend, choosing it on first call.
// Selection never fails; it is immutable afterwards.
func Select() Backend {
	selection.mu.Lock()
	defer selection.mu.Unlock()

	if selection.backend == nil {
		selection.backend = newBackend(selection.pref)
		log.Debug("selected %s backend (preference %s)", selection.backend.Kind(), selection.pref)
	}
	return selection.backend
}

func newBackend(p Preference) Backend {
	switch p {
	case PreferANSI:
		return defaultANSI()
	case PreferNative:
		return defaultNative()
	default:
		return platformBackend()
	}
}

var (
	ansiOnce   sync.Once
	ansiB      *ANSIBackend
	nativeOnce sync.Once
	nativeB    *NativeBackend
)

// defaultANSI writes to stdout; raw mode uses the platform console handle.
func defaultANSI() *ANSIBackend {
	ansiOnce.Do(func() {
		ansiB = NewANSIBackend(os.Stdout, console.Open, console.RawMask())
	})
	return ansiB
}

// defaultNative is shared by Select and the command fallbacks so the
// alternate buffer handle has a single owner.
func defaultNative() *NativeBackend {
	nativeOnce.Do(func() {
		buffers, err := console.OpenScreenBuffers()
		if err != nil {
			log.Debug("native screen buffers unavailable: %v", err)
			nativeB = newNativeBackendErr(console.Open, err, console.RawMask())
			return
		}
		nativeB = NewNativeBackend(console.Open, buffers, console.RawMask())
	})
	return nativeB
}
