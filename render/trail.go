package render

import (
	"image"
	"math"

	"github.com/ik5/audscope/audio"
)

// Retention is the share of the canvas kept by each Fade: old strokes
// halve in brightness roughly every 69 frames.
const Retention = 0.99

// colorExponent sharpens ColorFactor so that only short moves stay bright.
const colorExponent = 100

// Mode is how a Draw call renders its pairs.
type Mode int

const (
	ModeLines Mode = iota
	ModePoints
)

func (m Mode) String() string {
	if m == ModePoints {
		return "points"
	}
	return "lines"
}

// ColorFactor is the brightness of a segment of the given length in sample
// units: 1 for a zero-length move, falling as (1 - length/(4*max))^100 and
// reaching 0 at 4*max.
func ColorFactor(length float64, maxAmplitude int) float64 {
	normalized := length / (4 * float64(maxAmplitude))
	if normalized >= 1 {
		return 0
	}
	return math.Pow(1-normalized, colorExponent)
}

// Trail draws the phosphor trace. It owns the last drawn pair, so each Draw
// continues from where the previous one stopped.
type Trail struct {
	canvas   *Canvas
	viewport Viewport
	cfg      Config
	maxAmp   int

	last       audio.Pair
	pointFrame bool
	mode       Mode
}

func NewTrail(canvas *Canvas, viewport Viewport, cfg Config, maxAmplitude int) *Trail {
	return &Trail{
		canvas:   canvas,
		viewport: viewport,
		cfg:      cfg,
		maxAmp:   maxAmplitude,
	}
}

// BeginFrame starts a tick by fading what is already on the canvas.
func (t *Trail) BeginFrame() { t.Fade() }

// Fade scales the canvas by Retention.
func (t *Trail) Fade() { t.canvas.Fade(Retention) }

// Draw connects the pairs in order, starting from the last pair of the
// previous call. In artifact mode calls alternate between lines and points,
// beginning with lines.
func (t *Trail) Draw(pairs []audio.Pair) {
	t.mode = ModeLines
	if t.cfg.ArtifactMode {
		if t.pointFrame {
			t.mode = ModePoints
		}
		t.pointFrame = !t.pointFrame
	}

	for _, p := range pairs {
		length := math.Hypot(float64(p.X-t.last.X), float64(p.Y-t.last.Y))
		factor := ColorFactor(length, t.maxAmp)

		if factor > 0 {
			col := t.cfg.Color.Scale(factor)

			// The Y channel drives the horizontal axis and X the vertical one.
			x0, y0 := t.viewport.Project(float64(t.last.Y), float64(t.last.X))
			x1, y1 := t.viewport.Project(float64(p.Y), float64(p.X))

			if t.mode == ModePoints {
				t.canvas.Point(x0, y0, 1, col)
				t.canvas.Point(x1, y1, 1, col)
			} else {
				t.canvas.Line(x0, y0, x1, y1, t.cfg.LineWidth, col)
			}
		}

		t.last = p
	}
}

// EndFrame returns the finished image for presentation.
func (t *Trail) EndFrame() *image.RGBA { return t.canvas.RGBA() }

// Mode reports how the latest Draw rendered.
func (t *Trail) Mode() Mode { return t.mode }

// Last is the pair the next Draw starts from.
func (t *Trail) Last() audio.Pair { return t.last }
