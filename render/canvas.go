package render

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Canvas is a persistence buffer: RGB intensities in [0,1] that strokes add
// to (saturating at 1) and Fade scales down.
type Canvas struct {
	width, height int
	acc           []float32

	ras  *vector.Rasterizer
	mask image.Alpha
	img  *image.RGBA
}

func NewCanvas(width, height int) (*Canvas, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	ras := vector.NewRasterizer(width, height)
	ras.DrawOp = draw.Src

	return &Canvas{
		width:  width,
		height: height,
		acc:    make([]float32, width*height*3),
		ras:    ras,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}, nil
}

func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.width, c.height) }

// At returns the accumulated intensity of pixel (x, y).
func (c *Canvas) At(x, y int) RGB {
	if !(image.Point{x, y}.In(c.Bounds())) {
		return RGB{}
	}
	i := (y*c.width + x) * 3
	return RGB{R: float64(c.acc[i]), G: float64(c.acc[i+1]), B: float64(c.acc[i+2])}
}

// Fade multiplies every pixel by retention.
func (c *Canvas) Fade(retention float64) {
	r := float32(retention)
	for i := range c.acc {
		c.acc[i] *= r
	}
}

// Clear zeroes the canvas.
func (c *Canvas) Clear() {
	clear(c.acc)
}

// Line adds an anti-aliased segment of the given pixel width.
func (c *Canvas) Line(x0, y0, x1, y1, width float64, col RGB) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		c.Point(x0, y0, width, col)
		return
	}

	half := width / 2
	nx, ny := -dy/length*half, dx/length*half

	c.fill(col, [][2]float64{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	})
}

// Point adds a square dot of side size centred on (x, y).
func (c *Canvas) Point(x, y, size float64, col RGB) {
	h := size / 2
	c.fill(col, [][2]float64{
		{x - h, y - h},
		{x + h, y - h},
		{x + h, y + h},
		{x - h, y + h},
	})
}

// fill rasterises the closed polygon into a mask covering its bounding box
// and adds col weighted by coverage.
func (c *Canvas) fill(col RGB, poly [][2]float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range poly {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}

	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(c.Bounds())
	if box.Empty() {
		return
	}

	w, h := box.Dx(), box.Dy()
	c.ras.Reset(w, h)
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	c.ras.MoveTo(float32(poly[0][0]-ox), float32(poly[0][1]-oy))
	for _, p := range poly[1:] {
		c.ras.LineTo(float32(p[0]-ox), float32(p[1]-oy))
	}
	c.ras.ClosePath()

	if cap(c.mask.Pix) < w*h {
		c.mask.Pix = make([]uint8, w*h)
	}
	c.mask.Pix = c.mask.Pix[:w*h]
	c.mask.Stride = w
	c.mask.Rect = image.Rect(0, 0, w, h)
	c.ras.Draw(&c.mask, c.mask.Rect, image.Opaque, image.Point{})

	r, g, b := float32(col.R), float32(col.G), float32(col.B)
	for y := range h {
		row := ((box.Min.Y+y)*c.width + box.Min.X) * 3
		for x := range w {
			a := c.mask.Pix[y*w+x]
			if a == 0 {
				continue
			}
			f := float32(a) / 0xFF
			i := row + x*3
			c.acc[i] = min(1, c.acc[i]+r*f)
			c.acc[i+1] = min(1, c.acc[i+1]+g*f)
			c.acc[i+2] = min(1, c.acc[i+2]+b*f)
		}
	}
}

// RGBA renders the canvas into an opaque image. The image is reused by the
// next call.
func (c *Canvas) RGBA() *image.RGBA {
	pix := c.img.Pix
	for i, j := 0, 0; i < len(c.acc); i, j = i+3, j+4 {
		pix[j] = uint8(c.acc[i]*0xFF + 0.5)
		pix[j+1] = uint8(c.acc[i+1]*0xFF + 0.5)
		pix[j+2] = uint8(c.acc[i+2]*0xFF + 0.5)
		pix[j+3] = 0xFF
	}
	return c.img
}
