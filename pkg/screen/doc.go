// Package screen switches the controlling terminal between normal and raw
// input, and between the main and alternate screen buffer, and guarantees the
// switches are undone.
//
// Each successful transition hands back a guard. Release the guard with a
// deferred Release call; explicit Leave or Disable calls return errors to the
// caller, Release swallows them:
//
//	alt, err := screen.EnterAlternateScreen(true)
//	if err != nil {
//		return err
//	}
//	defer alt.Release() // raw mode off, then back to the main screen
//
// Two mechanisms exist. The ANSI backend writes CSI ?1049h / CSI ?1049l to
// an output stream; the native backend drives the OS console directly. On unix
// the ANSI backend is always used. On Windows the choice is made once per
// process by probing whether the console accepts control sequences.
//
// Raw mode is a mask over the console input-mode bitmask: enabling clears the
// mask bits, disabling sets them again. Bits outside the mask are left as
// found at disable time; nothing is snapshotted at enable time.
//
// The terminal is process-wide state. Every transition is serialized by a
// single package-level lock, and only one raw-mode guard is considered
// active at a time; enabling raw mode again replaces the active guard
// without reference counting.
package screen
