package discovery

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"time"

	"github.com/Saml1211/mcp-config-watcher/internal/logger"
)

// listToolsRequest is the single framed request written to the probed
// server. Exact bytes, one line, newline-terminated.
const listToolsRequest = `{"jsonrpc":"2.0","id":1,"method":"tools/list","params":{}}`

type terminationReason string

const (
	reasonExited      terminationReason = "exited"
	reasonTimedOut    terminationReason = "timed-out"
	reasonSpawnFailed terminationReason = "spawn-failed"
)

// processSession owns one probed subprocess: its handle, the verbatim
// accumulation of both output streams, and the reason the exchange
// ended. A session lives for exactly one discovery call and is closed
// on every exit path.
type processSession struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bytes.Buffer
	stderr *bytes.Buffer

	// waitCh receives the cmd.Wait result exactly once.
	waitCh chan error

	reason  terminationReason
	exitErr error
}

// exchange runs the request/response phase: wait out the startup grace
// period, write the tools/list request, then race natural process exit
// against the discovery deadline. Exactly one of the two paths resolves
// the session, and the output buffers are safe to read once this
// returns.
func (s *processSession) exchange(ctx context.Context, grace, timeout time.Duration, sink logger.Sink) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	graceTimer := time.NewTimer(grace)
	defer graceTimer.Stop()

	// Let the server initialize before we write anything. If it exits
	// (or the deadline fires) during the grace period, skip the write
	// and salvage whatever output was produced.
	select {
	case err := <-s.waitCh:
		s.resolveExited(err, sink)
		return
	case <-deadline.C:
		s.resolveTimedOut(sink)
		return
	case <-ctx.Done():
		s.resolveTimedOut(sink)
		return
	case <-graceTimer.C:
	}

	s.writeRequest(sink)

	select {
	case err := <-s.waitCh:
		s.resolveExited(err, sink)
	case <-deadline.C:
		s.resolveTimedOut(sink)
	case <-ctx.Done():
		s.resolveTimedOut(sink)
	}
}

// writeRequest sends the framed tools/list request to the server's
// stdin. A failed write is non-fatal: plenty of servers close stdin
// immediately and still print their manifest.
func (s *processSession) writeRequest(sink logger.Sink) {
	if s.stdin == nil {
		return
	}
	if _, err := s.stdin.Write([]byte(listToolsRequest + "\n")); err != nil {
		sink.Debugf("discovery request write failed (non-fatal): %v", err)
	}
}

func (s *processSession) resolveExited(waitErr error, sink logger.Sink) {
	s.reason = reasonExited
	s.exitErr = waitErr

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		sink.Debugf("server exited with status %d", exitErr.ExitCode())
	}
}

func (s *processSession) resolveTimedOut(sink logger.Sink) {
	sink.Infof("discovery deadline reached, terminating server process")
	s.kill()
	// Reap the process so the output copiers have flushed before
	// extraction reads the buffers.
	s.exitErr = <-s.waitCh
	s.reason = reasonTimedOut
}

// kill force-terminates the subprocess. Killing an already-exited
// process is a no-op, not an error.
func (s *processSession) kill() {
	if s.cmd == nil || s.cmd.Process == nil {
		return
	}
	_ = s.cmd.Process.Kill()
}

// close releases the stream handles and makes sure the process has been
// reaped. Safe to call on every exit path, including after a kill.
func (s *processSession) close() {
	if s.stdin != nil {
		_ = s.stdin.Close()
		s.stdin = nil
	}
	if s.reason == "" {
		// Exchange never resolved (should not happen); don't leak the
		// process.
		s.kill()
		<-s.waitCh
		s.reason = reasonTimedOut
	}
}

func (s *processSession) stdoutText() string { return s.stdout.String() }
func (s *processSession) stderrText() string { return s.stderr.String() }
