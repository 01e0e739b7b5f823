// ABOUTME: Capability probe: does the active console accept control sequences?
// ABOUTME: Memoized with sync.Once; the underlying check may itself change console state

package screen

import "sync"

// Probe runs a capability check at most once and caches the answer.
type Probe struct {
	once   sync.Once
	check  func() bool
	result bool
}

// NewProbe returns a Probe around check. A nil check reports false.
func NewProbe(check func() bool) *Probe {
	return &Probe{check: check}
}

// Supported returns the cached result, running the check on first use.
// A panicking check counts as unsupported.
func (p *Probe) Supported() bool {
	p.once.Do(func() {
		if p.check == nil {
			return
		}
		defer func() {
			if recover() != nil {
				p.result = false
			}
		}()
		p.result = p.check()
	})
	return p.result
}

var ansiProbe = NewProbe(probeANSI)

// SupportsANSI reports whether the active console interprets control
// sequences. The answer is computed once per process.
func SupportsANSI() bool {
	return ansiProbe.Supported()
}
