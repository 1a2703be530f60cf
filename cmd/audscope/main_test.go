package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveLogLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveLogLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ResolveLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn")
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("log output = %q", out)
	}
}

func TestResolveSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		arg        string
		configured string
		input      string
		want       string
		wantErr    error
		wantPrompt bool
	}{
		{"argument wins", "a.wav", "b.wav", "c.wav\n", "a.wav", nil, false},
		{"config next", "", "b.wav", "c.wav\n", "b.wav", nil, false},
		{"prompt", "", "", "  c.wav  \n", "c.wav", nil, true},
		{"prompt without newline", "", "", "d.aiff", "d.aiff", nil, true},
		{"empty answer", "", "", "\n", "", errNoSource, true},
		{"closed input", "", "", "", "", errNoSource, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			got, err := resolveSource(tt.arg, tt.configured, strings.NewReader(tt.input), &out)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("resolveSource() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("resolveSource() = %q, want %q", got, tt.want)
			}
			if prompted := out.Len() > 0; prompted != tt.wantPrompt {
				t.Errorf("prompted = %v, want %v", prompted, tt.wantPrompt)
			}
		})
	}
}

func TestWriteSnapshot(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(1, 1, color.RGBA{G: 255, A: 255})

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := writeSnapshot(path, img); err != nil {
		t.Fatalf("writeSnapshot() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
	if _, g, _, _ := decoded.At(1, 1).RGBA(); g != 0xffff {
		t.Errorf("green at (1,1) = %#x, want 0xffff", g)
	}
}

func TestWriteSnapshot_BadPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "frame.png")
	if err := writeSnapshot(path, image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("writeSnapshot() into a missing directory succeeded")
	}
}
