// SPDX-License-Identifier: EPL-2.0

package render

import (
	"errors"
	"testing"
)

func newCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()

	c, err := NewCanvas(w, h)
	if err != nil {
		t.Fatalf("NewCanvas() error = %v", err)
	}
	return c
}

func TestNewCanvas_InvalidSize(t *testing.T) {
	t.Parallel()

	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := NewCanvas(size[0], size[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewCanvas(%v) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestCanvas_LineCoverage(t *testing.T) {
	t.Parallel()

	c := newCanvas(t, 16, 16)
	c.Line(2, 5, 8, 5, 2, RGB{R: 1})

	for _, p := range [][2]int{{3, 4}, {5, 4}, {5, 5}, {7, 5}} {
		if got := c.At(p[0], p[1]); got.R < 0.99 || got.G != 0 || got.B != 0 {
			t.Errorf("pixel %v = %v, want full red", p, got)
		}
	}
	for _, p := range [][2]int{{5, 7}, {5, 2}, {10, 5}, {0, 5}} {
		if got := c.At(p[0], p[1]); got.R != 0 {
			t.Errorf("pixel %v = %v, want dark", p, got)
		}
	}
}

func TestCanvas_AdditiveSaturates(t *testing.T) {
	t.Parallel()

	c := newCanvas(t, 16, 16)
	col := RGB{R: 0.6, G: 0.2}
	c.Line(2, 5, 8, 5, 2, col)
	c.Line(2, 5, 8, 5, 2, col)

	got := c.At(5, 5)
	if got.R != 1 {
		t.Errorf("R = %v, want saturated 1", got.R)
	}
	if got.G < 0.39 || got.G > 0.41 {
		t.Errorf("G = %v, want ~0.4", got.G)
	}
}

func TestCanvas_Fade(t *testing.T) {
	t.Parallel()

	c := newCanvas(t, 8, 8)
	c.Point(4.5, 4.5, 1, RGB{R: 1, G: 1, B: 1})
	before := c.At(4, 4)

	c.Fade(0.5)
	got := c.At(4, 4)
	if got.R != before.R*0.5 || got.B != before.B*0.5 {
		t.Errorf("after Fade(0.5) = %v, want half of %v", got, before)
	}

	c.Clear()
	if got := c.At(4, 4); got != (RGB{}) {
		t.Errorf("after Clear() = %v, want zero", got)
	}
}

func TestCanvas_ZeroLengthLineIsPoint(t *testing.T) {
	t.Parallel()

	c := newCanvas(t, 8, 8)
	c.Line(3.5, 3.5, 3.5, 3.5, 1, RGB{B: 1})

	if got := c.At(3, 3); got.B < 0.99 {
		t.Errorf("pixel (3,3) = %v, want lit", got)
	}
}

func TestCanvas_OffCanvasIsIgnored(t *testing.T) {
	t.Parallel()

	c := newCanvas(t, 8, 8)
	c.Line(-50, -50, -20, -30, 2, RGB{R: 1})
	c.Point(100, 100, 4, RGB{R: 1})

	for y := range 8 {
		for x := range 8 {
			if got := c.At(x, y); got != (RGB{}) {
				t.Fatalf("pixel (%d,%d) = %v, want dark", x, y, got)
			}
		}
	}

	if got := c.At(-1, 3); got != (RGB{}) {
		t.Errorf("At() outside bounds = %v, want zero", got)
	}
}

func TestCanvas_RGBA(t *testing.T) {
	t.Parallel()

	c := newCanvas(t, 4, 4)
	c.Point(1.5, 1.5, 1, RGB{R: 1, G: 0.5})

	img := c.RGBA()
	px := img.RGBAAt(1, 1)
	if px.R < 250 || px.G < 125 || px.G > 130 || px.B != 0 || px.A != 0xFF {
		t.Errorf("RGBAAt(1,1) = %v", px)
	}
	if bg := img.RGBAAt(3, 3); bg.R != 0 || bg.A != 0xFF {
		t.Errorf("background = %v, want opaque black", bg)
	}
}
