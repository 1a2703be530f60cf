// SPDX-License-Identifier: EPL-2.0

package player

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sync"
)

// DefaultCommand is the external player used by NewMPV.
const DefaultCommand = "mpv"

// Exec plays a file with an external program. The program's output is
// discarded and it is killed on Terminate.
type Exec struct {
	Command string
	Args    []string
	Path    string
	Logger  *slog.Logger

	mtx  sync.Mutex
	cmd  *exec.Cmd
	done chan struct{}
}

// NewMPV returns a player running "mpv --no-video path".
func NewMPV(path string, logger *slog.Logger) *Exec {
	return &Exec{
		Command: DefaultCommand,
		Args:    []string{"--no-video"},
		Path:    path,
		Logger:  logger,
	}
}

func (e *Exec) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

func (e *Exec) Start() error {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if e.cmd != nil {
		return ErrAlreadyStarted
	}
	if e.Path == "" {
		return ErrNoSource
	}

	args := append(append([]string(nil), e.Args...), e.Path)
	cmd := exec.Command(e.Command, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", e.Command, err)
	}

	done := make(chan struct{})
	go func() {
		err := cmd.Wait()
		e.logger().Debug("player exited", "command", e.Command, "error", err)
		close(done)
	}()

	e.cmd = cmd
	e.done = done
	e.logger().Debug("player started", "command", e.Command, "pid", cmd.Process.Pid)

	return nil
}

// Terminate kills the program and waits for it to exit. It is a no-op
// when the program never started or was already terminated.
func (e *Exec) Terminate() error {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if e.cmd == nil {
		return nil
	}
	cmd, done := e.cmd, e.done
	e.cmd, e.done = nil, nil

	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("killing %s: %w", e.Command, err)
	}
	<-done

	return nil
}

// Running reports whether the program was started and has not exited.
func (e *Exec) Running() bool {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if e.done == nil {
		return false
	}
	select {
	case <-e.done:
		return false
	default:
		return true
	}
}
