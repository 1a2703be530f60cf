// SPDX-License-Identifier: EPL-2.0

package player

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/ik5/audscope/audio"
)

// Oto plays a source in-process through the system audio device.
//
// oto allows a single context per process, so only one Oto may be started
// over the life of the program.
type Oto struct {
	open   func() (audio.WaveSource, error)
	xCh    int
	yCh    int
	logger *slog.Logger

	mtx    sync.Mutex
	src    audio.WaveSource
	ctx    *oto.Context
	player *oto.Player
}

// NewOto returns a player for channels xCh and yCh, the pair the scope
// displays. It opens its own copy of the source on Start, so the display
// and the device never share a read position.
func NewOto(open func() (audio.WaveSource, error), xCh, yCh int, logger *slog.Logger) *Oto {
	if logger == nil {
		logger = slog.Default()
	}
	return &Oto{open: open, xCh: xCh, yCh: yCh, logger: logger}
}

func (o *Oto) Start() error {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	if o.player != nil {
		return ErrAlreadyStarted
	}
	if o.open == nil {
		return ErrNoSource
	}

	src, err := o.open()
	if err != nil {
		return fmt.Errorf("opening playback source: %w", err)
	}

	reader, err := newPCMReader(src, o.xCh, o.yCh)
	if err != nil {
		_ = src.Close()
		return err
	}

	format := src.Format()
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   format.SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		_ = src.Close()
		return fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	o.src = src
	o.ctx = ctx
	o.player = ctx.NewPlayer(reader)
	o.player.Play()

	o.logger.Debug("oto playback started", "format", format.String())

	return nil
}

// Terminate stops playback and releases the device. It is a no-op when
// playback never started.
func (o *Oto) Terminate() error {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	if o.player == nil {
		return nil
	}

	var errs []error
	if err := o.player.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing player: %w", err))
	}
	if err := o.ctx.Suspend(); err != nil {
		errs = append(errs, fmt.Errorf("suspending audio context: %w", err))
	}
	if err := o.src.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing playback source: %w", err))
	}
	o.player = nil
	o.src = nil

	return errors.Join(errs...)
}
