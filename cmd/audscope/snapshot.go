package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// writeSnapshot saves the final canvas of a headless run.
func writeSnapshot(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing snapshot: %w", err)
	}

	return nil
}
