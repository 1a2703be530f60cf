// SPDX-License-Identifier: EPL-2.0

// Package display shows the scope in an ebiten window.
package display

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ik5/audscope/scope"
)

// ErrFrameSize is returned when a presented frame does not match the window.
var ErrFrameSize = errors.New("frame size does not match window")

// quitKeys end the session when pressed.
var quitKeys = []ebiten.Key{ebiten.KeyQ, ebiten.KeyX}

// Ticker advances the scope by one frame. *scope.Loop implements it.
type Ticker interface {
	Tick() (scope.State, error)
}

// Window is an ebiten game that calls Tick once per update. ebiten's
// TPS setting bounds the tick rate.
type Window struct {
	width  int
	height int
	title  string
	tps    int

	ticker Ticker
	frame  *image.RGBA
	offscr *ebiten.Image
	err    error
}

func New(width, height, tps int, title string) *Window {
	return &Window{width: width, height: height, tps: tps, title: title}
}

// Present keeps frame for the next Draw.
func (w *Window) Present(frame *image.RGBA) error {
	if b := frame.Bounds(); b.Dx() != w.width || b.Dy() != w.height {
		return fmt.Errorf("%w: %dx%d, window %dx%d", ErrFrameSize, b.Dx(), b.Dy(), w.width, w.height)
	}
	w.frame = frame
	return nil
}

// QuitRequested reports a quit key press or a window close. It must be
// called from within Update, which Tick is.
func (w *Window) QuitRequested() bool {
	if ebiten.IsWindowBeingClosed() {
		return true
	}
	for _, key := range quitKeys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// Run opens the window and blocks until the ticker ends or fails.
func (w *Window) Run(ticker Ticker) error {
	w.ticker = ticker

	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetTPS(w.tps)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("running window: %w", err)
	}

	return w.err
}

func (w *Window) Update() error {
	state, err := w.ticker.Tick()
	if err != nil {
		w.err = err
		return ebiten.Termination
	}
	if state == scope.Ended {
		return ebiten.Termination
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	if w.frame == nil {
		return
	}
	if w.offscr == nil {
		w.offscr = ebiten.NewImage(w.width, w.height)
	}

	w.offscr.WritePixels(w.frame.Pix)
	screen.DrawImage(w.offscr, nil)
}

func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}
