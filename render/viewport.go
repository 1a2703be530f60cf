package render

import "github.com/go-gl/mathgl/mgl64"

// Viewport maps sample space onto canvas pixels through an orthographic
// projection spanning [-max*xInvert, max*xInvert] × [-max*yInvert, max*yInvert].
// Axis inversion happens here and nowhere else.
type Viewport struct {
	proj   mgl64.Mat4
	width  float64
	height float64
}

func NewViewport(maxAmplitude, xInvert, yInvert, width, height int) Viewport {
	m := float64(maxAmplitude)
	xi, yi := float64(xInvert), float64(yInvert)

	return Viewport{
		proj:   mgl64.Ortho2D(-m*xi, m*xi, -m*yi, m*yi),
		width:  float64(width),
		height: float64(height),
	}
}

// Project returns the pixel position of (x, y). Pixel y grows downwards.
func (v Viewport) Project(x, y float64) (px, py float64) {
	ndc := v.proj.Mul4x1(mgl64.Vec4{x, y, 0, 1})
	px = (ndc.X() + 1) / 2 * v.width
	py = (1 - ndc.Y()) / 2 * v.height
	return px, py
}
