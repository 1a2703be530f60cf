// SPDX-License-Identifier: EPL-2.0

// Command audscope shows a WAV or AIFF file as an XY vectorscope.
//
// Usage:
//
//	audscope [flags] [file]
//
// The file defaults to the source set in scope.conf; when neither is
// given audscope asks for it. Press q or x, or close the window, to quit.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ik5/audscope"
	"github.com/ik5/audscope/audio"
	"github.com/ik5/audscope/config"
	"github.com/ik5/audscope/internal/display"
	"github.com/ik5/audscope/player"
	"github.com/ik5/audscope/render"
	"github.com/ik5/audscope/scope"
)

var (
	configPath   string
	logLevel     string
	headless     bool
	snapshotPath string
)

func init() {
	flag.StringVar(&configPath, "config", config.DefaultPath, "Path to the INI config file")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	flag.BoolVar(&headless, "headless", false, "Render without a window until the file ends")
	flag.StringVar(&snapshotPath, "snapshot", "", "With -headless, write the final frame to this PNG file")
}

func main() {
	flag.Parse()

	logger, err := newLogger(os.Stderr, logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(logger); err != nil {
		logger.Error("audscope failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	path, err := resolveSource(flag.Arg(0), cfg.Source, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	src, err := audscope.OpenFileWith(audscope.NewRegistry(logger), path)
	if err != nil {
		return err
	}
	defer src.Close()

	format := src.Format()
	logger.Info("opened audio file", "path", path, "format", format.String(), "frames", src.Frames())

	canvas, err := render.NewCanvas(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	viewport := render.NewViewport(format.MaxAmplitude, cfg.Render.XInvert, cfg.Render.YInvert, cfg.Width, cfg.Height)
	trail := render.NewTrail(canvas, viewport, cfg.Render, format.MaxAmplitude)

	clock := scope.NewClock()
	opts := scope.Options{
		Source:          src,
		Clock:           clock,
		Renderer:        trail,
		XChannel:        cfg.Render.XChannel,
		YChannel:        cfg.Render.YChannel,
		SamplesPerFrame: cfg.SamplesPerFrame,
		TickRate:        cfg.TickRate,
		Logger:          logger,
	}

	var win *display.Window
	if !headless {
		win = display.New(cfg.Width, cfg.Height, cfg.TickRate, "audscope - "+filepath.Base(path))
		opts.Presenter = win
		opts.Quit = win.QuitRequested
	}

	loop, err := scope.NewLoop(opts)
	if err != nil {
		return err
	}

	var proc scope.Process
	if cfg.PlayAudio {
		proc = newPlayer(cfg, path, logger)
	}

	err = scope.WithProcess(proc, logger, func() error {
		clock.Restart()

		if headless {
			return runHeadless(loop, canvas)
		}
		return win.Run(loop)
	})

	logger.Info("scope stopped", "reason", loop.Reason(), "ticks", loop.Ticks(), "frame", loop.Position())

	return err
}

func runHeadless(loop *scope.Loop, canvas *render.Canvas) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := loop.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if snapshotPath == "" {
		return nil
	}
	return writeSnapshot(snapshotPath, canvas.RGBA())
}

func newPlayer(cfg config.Config, path string, logger *slog.Logger) scope.Process {
	if cfg.AudioBackend == config.BackendOto {
		return player.NewOto(func() (audio.WaveSource, error) {
			return audscope.OpenFile(path)
		}, cfg.Render.XChannel, cfg.Render.YChannel, logger)
	}
	return player.NewMPV(path, logger)
}
