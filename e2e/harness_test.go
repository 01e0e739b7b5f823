//go:build linux

// ABOUTME: E2E harness: builds the termscreen binary and drives it through a real PTY
// ABOUTME: Keeps the slave side open so tests can inspect termios after the process exits

package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/creack/pty"
	"golang.org/x/sys/unix"
)

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
)

// binary builds cmd/termscreen once per test run.
func binary(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "termscreen-e2e")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "termscreen")
		out, err := exec.Command("go", "build", "-o", binPath, "../cmd/termscreen").CombinedOutput()
		if err != nil {
			buildErr = &buildError{err: err, out: out}
		}
	})
	if buildErr != nil {
		t.Fatalf("building termscreen: %v", buildErr)
	}
	return binPath
}

type buildError struct {
	err error
	out []byte
}

func (e *buildError) Error() string { return e.err.Error() + "\n" + string(e.out) }

// session is a running termscreen process attached to a PTY.
type session struct {
	cmd  *exec.Cmd
	ptmx *os.File
	tty  *os.File

	// initial is the slave's local modes before the process started.
	initial uint32

	mu  sync.Mutex
	out bytes.Buffer

	done    chan struct{}
	waitErr error
}

// isolatedEnv points HOME and the working directory at empty temp dirs so no
// user config leaks into the run.
func isolatedEnv(t *testing.T) (env []string, dir string) {
	t.Helper()
	dir = t.TempDir()
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "HOME=") || strings.HasPrefix(kv, "TERMSCREEN_") {
			continue
		}
		env = append(env, kv)
	}
	return append(env, "HOME="+dir, "TERM=xterm-256color"), dir
}

func start(t *testing.T, args ...string) *session {
	t.Helper()

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 80}); err != nil {
		t.Fatal(err)
	}

	tio, err := unix.IoctlGetTermios(int(tty.Fd()), unix.TCGETS)
	if err != nil {
		t.Fatalf("reading termios: %v", err)
	}

	env, dir := isolatedEnv(t)
	cmd := exec.Command(binary(t), args...)
	cmd.Env = env
	cmd.Dir = dir
	cmd.Stdin, cmd.Stdout, cmd.Stderr = tty, tty, tty
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true, Setctty: true}

	if err := cmd.Start(); err != nil {
		ptmx.Close()
		tty.Close()
		t.Fatalf("starting termscreen: %v", err)
	}

	s := &session{cmd: cmd, ptmx: ptmx, tty: tty, initial: tio.Lflag, done: make(chan struct{})}
	go s.readLoop()
	go func() {
		s.waitErr = cmd.Wait()
		close(s.done)
	}()
	t.Cleanup(s.close)
	return s
}

func (s *session) readLoop() {
	buf := make([]byte, 4096)
	for {
		n, err := s.ptmx.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.out.Write(buf[:n])
			s.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

func (s *session) output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}

// expect waits for want in the output with styling sequences removed; the
// page renderer styles words one by one.
func (s *session) expect(t *testing.T, want string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(ansi.Strip(s.output()), want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q; output so far:\n%q", want, s.output())
}

func (s *session) send(t *testing.T, keys string) {
	t.Helper()
	if _, err := s.ptmx.Write([]byte(keys)); err != nil {
		t.Fatalf("writing to pty: %v", err)
	}
}

func (s *session) waitExit(t *testing.T, timeout time.Duration) {
	t.Helper()
	select {
	case <-s.done:
		if s.waitErr != nil {
			t.Fatalf("termscreen exited with %v; output:\n%q", s.waitErr, s.output())
		}
	case <-time.After(timeout):
		t.Fatalf("termscreen did not exit within %s; output:\n%q", timeout, s.output())
	}
}

// lflag reads the local modes of the slave side.
func (s *session) lflag(t *testing.T) uint32 {
	t.Helper()
	tio, err := unix.IoctlGetTermios(int(s.tty.Fd()), unix.TCGETS)
	if err != nil {
		t.Fatalf("reading termios: %v", err)
	}
	return tio.Lflag
}

func (s *session) close() {
	if s.cmd.Process != nil {
		select {
		case <-s.done:
		default:
			_ = s.cmd.Process.Kill()
			<-s.done
		}
	}
	s.ptmx.Close()
	s.tty.Close()
}
