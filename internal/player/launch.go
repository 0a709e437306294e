package player

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// launchPollInterval is how often LaunchMPV re-checks for the IPC socket
// while the mpv process is starting up.
const launchPollInterval = 100 * time.Millisecond

// LaunchedMPV is an MPV connection that also owns the mpv process, so
// Close tears down both.
type LaunchedMPV struct {
	*MPV
	cmd *exec.Cmd
}

// LaunchMPV starts an mpv process playing the given media and connects to
// its JSON IPC socket. The socket lives in a fresh temp directory that is
// removed on Close.
func LaunchMPV(media string) (*LaunchedMPV, error) {
	dir, err := os.MkdirTemp("", "retain-mpv-")
	if err != nil {
		return nil, fmt.Errorf("create socket dir: %w", err)
	}
	socketPath := filepath.Join(dir, "mpv.sock")

	cmd := exec.Command("mpv",
		"--input-ipc-server="+socketPath,
		"--force-window=yes",
		"--keep-open=yes",
		media,
	)
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("start mpv: %w", err)
	}

	m, err := dialWithRetry(socketPath, 10*time.Second)
	if err != nil {
		_ = cmd.Process.Kill()
		os.RemoveAll(dir)
		return nil, err
	}

	l := &LaunchedMPV{MPV: m, cmd: cmd}
	go func() {
		// Reap the process; also removes the socket dir once mpv exits.
		_ = cmd.Wait()
		os.RemoveAll(dir)
	}()
	return l, nil
}

// dialWithRetry polls for the IPC socket until mpv creates it.
func dialWithRetry(socketPath string, timeout time.Duration) (*MPV, error) {
	deadline := time.Now().Add(timeout)
	for {
		m, err := DialMPV(socketPath)
		if err == nil {
			return m, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("mpv socket never appeared: %w", err)
		}
		time.Sleep(launchPollInterval)
	}
}

// Close disconnects from mpv and terminates the process.
func (l *LaunchedMPV) Close() error {
	err := l.MPV.Close()
	if l.cmd.Process != nil {
		_ = l.cmd.Process.Kill()
	}
	return err
}
