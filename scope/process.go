// SPDX-License-Identifier: EPL-2.0

package scope

import (
	"fmt"
	"log/slog"
)

// Process is a companion task that runs alongside the loop, such as audio
// playback.
type Process interface {
	Start() error
	Terminate() error
}

// WithProcess starts proc, runs fn, and terminates proc when fn returns or
// panics. A start failure is logged and fn still runs, since the display
// is usable without sound. A nil proc just runs fn.
func WithProcess(proc Process, logger *slog.Logger, fn func() error) error {
	if proc == nil {
		return fn()
	}
	if logger == nil {
		logger = slog.Default()
	}

	if err := proc.Start(); err != nil {
		logger.Warn("companion process did not start", "error", err)
	}

	defer func() {
		if err := proc.Terminate(); err != nil {
			logger.Warn("companion process did not terminate cleanly", "error", err)
		}
	}()

	if err := fn(); err != nil {
		return fmt.Errorf("running scope: %w", err)
	}

	return nil
}
