// SPDX-License-Identifier: EPL-2.0

package scope

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/ik5/audscope/audio"
	"golang.org/x/time/rate"
)

type State int

const (
	Running State = iota
	Ended
)

func (s State) String() string {
	if s == Ended {
		return "ended"
	}
	return "running"
}

// EndReason records which path moved the loop to Ended.
type EndReason int

const (
	NotEnded EndReason = iota
	EndOfStream
	Quit
	Failed
	Canceled
)

func (r EndReason) String() string {
	switch r {
	case EndOfStream:
		return "end of stream"
	case Quit:
		return "quit requested"
	case Failed:
		return "failed"
	case Canceled:
		return "canceled"
	default:
		return "running"
	}
}

// Source is the part of audio.WaveSource the loop reads from.
type Source interface {
	Format() audio.WaveFormat
	ReadFrames(start, count int) ([]byte, bool)
}

// Positioner turns elapsed time into a frame index. *Clock implements it.
type Positioner interface {
	SampleOffset(sampleRate int) int
}

// Renderer is the trace drawer. *render.Trail implements it.
type Renderer interface {
	Fade()
	Draw(pairs []audio.Pair)
	EndFrame() *image.RGBA
}

// Presenter shows a finished frame.
type Presenter interface {
	Present(frame *image.RGBA) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(frame *image.RGBA) error

func (f PresenterFunc) Present(frame *image.RGBA) error { return f(frame) }

// ExtractFunc matches audio.Extract.
type ExtractFunc func(dst []audio.Pair, raw []byte, f audio.WaveFormat, xCh, yCh int) ([]audio.Pair, error)

type Options struct {
	Source   Source
	Clock    Positioner
	Renderer Renderer

	// Presenter and Quit are optional.
	Presenter Presenter
	Quit      func() bool

	XChannel int
	YChannel int

	// SamplesPerFrame is how many frames each tick reads.
	SamplesPerFrame int
	// TickRate bounds Run to this many ticks per second; 0 means unbounded.
	TickRate int

	// Extract defaults to audio.Extract.
	Extract ExtractFunc
	Logger  *slog.Logger
}

// Loop runs the render ticks of one playback session. It is not safe for
// concurrent use; all state is owned by the goroutine calling Tick.
type Loop struct {
	opts   Options
	format audio.WaveFormat
	logger *slog.Logger

	pairs   []audio.Pair
	state   State
	reason  EndReason
	ticks   int
	current int
}

func NewLoop(opts Options) (*Loop, error) {
	if opts.Source == nil || opts.Clock == nil || opts.Renderer == nil {
		return nil, fmt.Errorf("%w: source, clock and renderer are required", ErrInvalidConfig)
	}
	if opts.SamplesPerFrame < 1 {
		return nil, fmt.Errorf("%w: samples per frame %d", ErrInvalidConfig, opts.SamplesPerFrame)
	}
	if opts.TickRate < 0 {
		return nil, fmt.Errorf("%w: tick rate %d", ErrInvalidConfig, opts.TickRate)
	}

	format := opts.Source.Format()
	if opts.XChannel < 0 || opts.XChannel >= format.Channels || opts.YChannel < 0 || opts.YChannel >= format.Channels {
		return nil, fmt.Errorf("%w: x=%d y=%d with %d channels",
			audio.ErrChannelOutOfRange, opts.XChannel, opts.YChannel, format.Channels)
	}

	if opts.Extract == nil {
		opts.Extract = audio.Extract
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Loop{
		opts:   opts,
		format: format,
		logger: logger,
		pairs:  make([]audio.Pair, 0, opts.SamplesPerFrame),
	}, nil
}

func (l *Loop) State() State { return l.state }

func (l *Loop) Reason() EndReason { return l.reason }

// Ticks counts the ticks that ran, including the one that ended the loop.
func (l *Loop) Ticks() int { return l.ticks }

// Position is the frame index the latest tick read from.
func (l *Loop) Position() int { return l.current }

func (l *Loop) end(reason EndReason) State {
	l.state = Ended
	l.reason = reason
	l.logger.Debug("scope loop ended", "reason", reason, "ticks", l.ticks, "frame", l.current)
	return l.state
}

// Tick reads the frames at the current playback position, fades the
// trace, draws them and presents the result. It returns Ended once the
// stream is exhausted, quit was requested, or a step failed; the error is
// only set for failures. Ticks after Ended return ErrEnded.
func (l *Loop) Tick() (State, error) {
	if l.state == Ended {
		return l.state, ErrEnded
	}
	l.ticks++

	l.current = l.opts.Clock.SampleOffset(l.format.SampleRate)

	raw, ok := l.opts.Source.ReadFrames(l.current, l.opts.SamplesPerFrame)
	if !ok {
		return l.end(EndOfStream), nil
	}

	pairs, err := l.opts.Extract(l.pairs, raw, l.format, l.opts.XChannel, l.opts.YChannel)
	if err != nil {
		l.end(Failed)
		return l.state, fmt.Errorf("extracting frame %d: %w", l.current, err)
	}
	l.pairs = pairs

	r := l.opts.Renderer
	r.Fade()
	r.Draw(pairs)
	frame := r.EndFrame()

	if l.opts.Presenter != nil {
		if err := l.opts.Presenter.Present(frame); err != nil {
			l.end(Failed)
			return l.state, fmt.Errorf("presenting frame: %w", err)
		}
	}

	if l.opts.Quit != nil && l.opts.Quit() {
		return l.end(Quit), nil
	}

	return l.state, nil
}

// Run ticks until the loop ends or ctx is done, at most TickRate times a
// second. It returns nil when the stream ends or quit is requested.
func (l *Loop) Run(ctx context.Context) error {
	limit := rate.Inf
	if l.opts.TickRate > 0 {
		limit = rate.Limit(l.opts.TickRate)
	}
	limiter := rate.NewLimiter(limit, 1)

	for l.state == Running {
		if err := limiter.Wait(ctx); err != nil {
			l.end(Canceled)
			return fmt.Errorf("waiting for tick: %w", err)
		}

		if _, err := l.Tick(); err != nil {
			return err
		}
	}

	return nil
}
