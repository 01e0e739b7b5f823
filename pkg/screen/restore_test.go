// ABOUTME: Tests for RecoverGoroutine panic recovery without os.Exit
// ABOUTME: Verifies goroutine panics are caught and guards are released in reverse order

package screen

import (
	"bytes"
	"slices"
	"sync"
	"testing"
)

// mockGuard records Release calls for testing.
type mockGuard struct {
	name string
	mu   *sync.Mutex
	log  *[]string
}

func (m mockGuard) Release() {
	m.mu.Lock()
	defer m.mu.Unlock()
	*m.log = append(*m.log, m.name)
}

func TestRecoverGoroutine_CatchesPanic(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var log []string
	outer := mockGuard{name: "alternate", mu: &mu, log: &log}
	inner := mockGuard{name: "raw", mu: &mu, log: &log}
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer RecoverGoroutine(outer, inner)
		panic("test goroutine panic")
	}()

	<-done

	mu.Lock()
	defer mu.Unlock()
	if want := []string{"raw", "alternate"}; !slices.Equal(log, want) {
		t.Errorf("release order = %v, want %v", log, want)
	}
}

func TestRecoverGoroutine_NoPanic(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var log []string
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer RecoverGoroutine(mockGuard{name: "raw", mu: &mu, log: &log})
		// no panic: normal return
	}()

	<-done

	mu.Lock()
	defer mu.Unlock()
	if len(log) != 0 {
		t.Error("Release should not be called when no panic occurs")
	}
}

func TestRestoreAfterPanic_ReleasesRealGuards(t *testing.T) {
	t.Parallel()
	fb := newFakeBackend()

	alt, err := EnterAlternateScreenWith(fb, true)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	restoreAfterPanic(&out, []Releaser{alt, (*RawMode)(nil)})

	want := []string{opEnterAlt, opEnableRaw, opDisableRaw, opLeaveAlt}
	if got := fb.calls(); !slices.Equal(got, want) {
		t.Errorf("calls = %v, want %v", got, want)
	}
}
