package paint

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#fff", color.NRGBA{255, 255, 255, 255}},
		{"#3B82F6", color.NRGBA{0x3b, 0x82, 0xf6, 255}},
		{"#00000080", color.NRGBA{0, 0, 0, 0x80}},
		{"rgb(1, 2, 3)", color.NRGBA{1, 2, 3, 255}},
		{"rgba(0,0,0,1)", color.NRGBA{0, 0, 0, 255}},
		{"rgba(0,0,0, 0.5)", color.NRGBA{0, 0, 0, 128}},
		{"White", color.NRGBA{255, 255, 255, 255}},
		{"rebeccapurple", color.NRGBA{0x66, 0x33, 0x99, 255}},
		{"transparent", Transparent},
		{"", Transparent},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"#12", "#zzzzzz", "rgb(1,2)", "rgba(0,0,0,2)", "rgb(300,0,0)", "notacolor"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalidColor, in)
	}
	assert.Equal(t, Transparent, ParseOrTransparent("nope"))
}

func TestPaletteParses(t *testing.T) {
	for _, c := range Palette {
		_, err := Parse(c)
		assert.NoError(t, err, c)
	}
}
