package qr_test

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"
	"testing"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrgen/qr"
)

func renderBase(t *testing.T) *image.RGBA {
	t.Helper()
	img, err := qr.Render("https://example.com", qr.Options{
		BoxSize:    8,
		Border:     2,
		Level:      qrcode.Highest,
		Foreground: color.RGBA{0, 0, 0, 0xff},
		Background: color.RGBA{0xff, 0xff, 0xff, 0xff},
	})
	require.NoError(t, err)
	return img
}

func pngBytes(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func clone(img *image.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	copy(out.Pix, img.Pix)
	return out
}

func TestOverlayLogoCentered(t *testing.T) {
	base := renderBase(t)
	red := color.RGBA{0xff, 0, 0, 0xff}

	err := qr.OverlayLogo(base, bytes.NewReader(pngBytes(t, 64, 64, red)))
	require.NoError(t, err)

	center := base.Bounds().Dx() / 2
	assert.Equal(t, red, base.RGBAAt(center, center))
}

func TestOverlayLogoCappedAtQuarter(t *testing.T) {
	base := renderBase(t)
	before := clone(base)
	red := color.RGBA{0xff, 0, 0, 0xff}

	// Far larger than the QR itself; must be shrunk to 25% of the edge.
	err := qr.OverlayLogo(base, bytes.NewReader(pngBytes(t, 2000, 1000, red)))
	require.NoError(t, err)

	edge := base.Bounds().Dx()
	center := edge / 2
	assert.Equal(t, red, base.RGBAAt(center, center))

	// Just outside the centered quarter box nothing may change.
	off := edge/8 + 2
	for _, p := range []image.Point{
		{center + off, center},
		{center - off, center},
		{center, center + off},
		{center, center - off},
	} {
		assert.Equal(t, before.RGBAAt(p.X, p.Y), base.RGBAAt(p.X, p.Y), p)
	}
}

func TestOverlayLogoSmallLogoNotEnlarged(t *testing.T) {
	base := renderBase(t)
	before := clone(base)
	red := color.RGBA{0xff, 0, 0, 0xff}

	err := qr.OverlayLogo(base, bytes.NewReader(pngBytes(t, 4, 4, red)))
	require.NoError(t, err)

	center := base.Bounds().Dx() / 2
	assert.Equal(t, red, base.RGBAAt(center, center))

	// A 4x4 logo stays 4x4; five pixels out is untouched.
	assert.Equal(t, before.RGBAAt(center+5, center), base.RGBAAt(center+5, center))
}

func TestOverlayLogoBadData(t *testing.T) {
	base := renderBase(t)
	before := clone(base)

	err := qr.OverlayLogo(base, strings.NewReader("definitely not an image"))
	assert.Error(t, err)
	assert.Equal(t, before.Pix, base.Pix)
}
