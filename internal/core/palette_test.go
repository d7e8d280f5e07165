package core

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	cases := map[string]color.RGBA{
		"#f724ea":  {R: 0xf7, G: 0x24, B: 0xea, A: 0xff},
		"386e97":   {R: 0x38, G: 0x6e, B: 0x97, A: 0xff},
		"#fff":     {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		" #020202": {R: 2, G: 2, B: 2, A: 0xff},
	}
	for in, want := range cases {
		got, err := ParseHex(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "#12", "#12345", "#zzzzzz"} {
		_, err := ParseHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette("#ff0000, #00ff00,,#0000ff")
	require.NoError(t, err)
	require.Len(t, p, 3)
	assert.Equal(t, color.RGBA{G: 0xff, A: 0xff}, p[1])

	_, err = ParsePalette(" , ")
	assert.Error(t, err)

	_, err = ParsePalette("#ff0000,nope")
	assert.ErrorContains(t, err, "nope")
}

func TestBlend(t *testing.T) {
	base := color.RGBA{A: 255}
	over := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	assert.Equal(t, base, Blend(base, over, 0))
	assert.Equal(t, over, Blend(base, over, 1))
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 255}, Blend(base, over, 0.5))
}
