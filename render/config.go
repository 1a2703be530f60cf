package render

import "fmt"

// RGB is a colour with components in [0,1].
type RGB struct {
	R, G, B float64
}

// Scale multiplies every component by f.
func (c RGB) Scale(f float64) RGB {
	return RGB{R: c.R * f, G: c.G * f, B: c.B * f}
}

// Config is the resolved, read-only render configuration.
type Config struct {
	// XChannel feeds the pair's X value, YChannel its Y value.
	XChannel int
	YChannel int
	// XInvert and YInvert flip the viewport axes; each is 1 or -1.
	XInvert int
	YInvert int

	Color     RGB
	LineWidth float64
	// ArtifactMode alternates point and line frames.
	ArtifactMode bool
}

// DefaultConfig matches the stock scope.conf.
func DefaultConfig() Config {
	return Config{
		XChannel:  1,
		YChannel:  0,
		XInvert:   1,
		YInvert:   1,
		Color:     RGB{R: 0, G: 1, B: 0},
		LineWidth: 1,
	}
}

func (c Config) Validate() error {
	if c.XChannel < 0 || c.YChannel < 0 {
		return fmt.Errorf("%w: negative channel index", ErrInvalidConfig)
	}
	if (c.XInvert != 1 && c.XInvert != -1) || (c.YInvert != 1 && c.YInvert != -1) {
		return fmt.Errorf("%w: invert must be 1 or -1", ErrInvalidConfig)
	}
	if !(c.LineWidth > 0) {
		return fmt.Errorf("%w: line width %v", ErrInvalidConfig, c.LineWidth)
	}
	for _, v := range []float64{c.Color.R, c.Color.G, c.Color.B} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: colour component %v outside [0,1]", ErrInvalidConfig, v)
		}
	}
	return nil
}
