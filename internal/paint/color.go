// Package paint parses the CSS color strings objects carry.
package paint

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned for strings Parse does not understand
var ErrInvalidColor = errors.New("invalid color")

// Transparent is what an empty color string means
var Transparent = color.NRGBA{}

// Parse reads a hex (#rgb, #rrggbb, #rrggbbaa), rgb(), rgba() or named
// CSS color. The empty string is transparent.
func Parse(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "" || s == "transparent":
		return Transparent, nil
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunc(s, s[5:len(s)-1], 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunc(s, s[4:len(s)-1], 3)
	}

	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return Transparent, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// ParseOrTransparent is Parse with invalid input drawn as Transparent
func ParseOrTransparent(s string) color.NRGBA {
	c, _ := Parse(s)
	return c
}

func parseHex(s string) (color.NRGBA, error) {
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Transparent, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Transparent, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func parseFunc(s, args string, n int) (color.NRGBA, error) {
	parts := strings.Split(args, ",")
	if len(parts) != n {
		return Transparent, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil || v < 0 || v > 255 {
			return Transparent, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		ch[i] = uint8(math.Round(v))
	}

	alpha := 1.0
	if n == 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || v < 0 || v > 1 {
			return Transparent, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		alpha = v
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: uint8(math.Round(alpha * 255))}, nil
}
