//go:build windows

package screen

// platformBackend consults the memoized probe; an undeterminable answer has
// already been folded into false, selecting the native backend.
func platformBackend() Backend {
	if SupportsANSI() {
		return defaultANSI()
	}
	return defaultNative()
}
