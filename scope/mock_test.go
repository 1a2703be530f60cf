package scope

import (
	"image"

	"github.com/ik5/audscope/audio"
)

// stepClock advances a fixed number of frames on every call.
type stepClock struct {
	step  int
	calls int
}

func (c *stepClock) SampleOffset(int) int {
	offset := c.calls * c.step
	c.calls++
	return offset
}

type fakeRenderer struct {
	fades  int
	draws  [][]audio.Pair
	frames int
	order  []string
	img    *image.RGBA
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{img: image.NewRGBA(image.Rect(0, 0, 4, 4))}
}

func (r *fakeRenderer) Fade() {
	r.fades++
	r.order = append(r.order, "fade")
}

func (r *fakeRenderer) Draw(pairs []audio.Pair) {
	r.draws = append(r.draws, append([]audio.Pair(nil), pairs...))
	r.order = append(r.order, "draw")
}

func (r *fakeRenderer) EndFrame() *image.RGBA {
	r.frames++
	r.order = append(r.order, "end")
	return r.img
}

type fakeProcess struct {
	startErr     error
	terminateErr error
	starts       int
	terminates   int
}

func (p *fakeProcess) Start() error {
	p.starts++
	return p.startErr
}

func (p *fakeProcess) Terminate() error {
	p.terminates++
	return p.terminateErr
}
