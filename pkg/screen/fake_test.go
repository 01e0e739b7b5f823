// ABOUTME: In-package fake Backend recording transition order for guard tests
// ABOUTME: Failed calls are not recorded, so logs show only transitions that happened

package screen

import (
	"sync"
)

const (
	opEnterAlt   = "enter-alt"
	opLeaveAlt   = "leave-alt"
	opEnableRaw  = "enable-raw"
	opDisableRaw = "disable-raw"
)

type fakeBackend struct {
	mu   sync.Mutex
	log  []string
	fail map[string]error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{fail: make(map[string]error)}
}

func (f *fakeBackend) do(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fail[op]; err != nil {
		return platformError(op, err)
	}
	f.log = append(f.log, op)
	return nil
}

func (f *fakeBackend) failOn(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fail[op] = err
}

func (f *fakeBackend) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, len(f.log))
	copy(out, f.log)
	return out
}

func (f *fakeBackend) Kind() Kind                  { return KindNative }
func (f *fakeBackend) EnterAlternateScreen() error { return f.do(opEnterAlt) }
func (f *fakeBackend) LeaveAlternateScreen() error { return f.do(opLeaveAlt) }
func (f *fakeBackend) EnableRawMode() error        { return f.do(opEnableRaw) }
func (f *fakeBackend) DisableRawMode() error       { return f.do(opDisableRaw) }
func (f *fakeBackend) sealed()                     {}
