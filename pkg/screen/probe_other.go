//go:build !windows

package screen

// probeANSI is constant off Windows: terminals always interpret control sequences.
func probeANSI() bool {
	return true
}
