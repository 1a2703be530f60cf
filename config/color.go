package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ik5/audscope/render"
	"golang.org/x/image/colornames"
)

// ParseColor accepts an SVG colour name, #rgb, #rrggbb or rgb(r, g, b)
// with components in 0..255.
func ParseColor(s string) (render.RGB, error) {
	v := strings.ToLower(strings.TrimSpace(s))

	if c, ok := colornames.Map[v]; ok {
		return rgb255(int(c.R), int(c.G), int(c.B)), nil
	}

	switch {
	case strings.HasPrefix(v, "#"):
		return parseHex(v[1:], s)
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseFunc(v[len("rgb("):len(v)-1], s)
	}

	return render.RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseHex(hex, orig string) (render.RGB, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return render.RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}

	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return render.RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}

	return rgb255(int(n>>16&0xff), int(n>>8&0xff), int(n&0xff)), nil
}

func parseFunc(args, orig string) (render.RGB, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return render.RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}

	var comp [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return render.RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
		}
		comp[i] = n
	}

	return rgb255(comp[0], comp[1], comp[2]), nil
}

func rgb255(r, g, b int) render.RGB {
	return render.RGB{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
