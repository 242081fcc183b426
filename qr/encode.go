package qr

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Options controls how a QR symbol is rendered to pixels. BoxSize is the
// edge of one module in pixels, Border the quiet zone width in modules.
type Options struct {
	BoxSize    int
	Border     int
	Level      qrcode.RecoveryLevel
	Foreground color.Color
	Background color.Color
}

var levels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

// Level maps the single-letter error correction codes (L/M/Q/H) to the
// encoder's recovery levels.
func Level(s string) (qrcode.RecoveryLevel, error) {
	lvl, ok := levels[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return qrcode.Medium, fmt.Errorf("unknown error correction level %q", s)
	}
	return lvl, nil
}

// ParseHexColor parses #rgb and #rrggbb color strings.
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return c, fmt.Errorf("color %q must start with #", s)
	}

	hexVal := func(b byte) (uint8, error) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', nil
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, nil
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, nil
		}
		return 0, fmt.Errorf("invalid hex digit %q", b)
	}

	switch len(s) {
	case 7:
		for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
			hi, err := hexVal(s[1+i*2])
			if err != nil {
				return c, err
			}
			lo, err := hexVal(s[2+i*2])
			if err != nil {
				return c, err
			}
			*dst = hi<<4 | lo
		}
	case 4:
		for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
			v, err := hexVal(s[1+i])
			if err != nil {
				return c, err
			}
			*dst = v<<4 | v
		}
	default:
		return c, fmt.Errorf("color %q must be #rgb or #rrggbb", s)
	}
	return c, nil
}

// Render encodes data into a QR symbol and rasterizes it. The encoder's
// own quiet zone is disabled so the border width is exactly
// Border*BoxSize pixels on every side, painted in the background color.
func Render(data string, opts Options) (*image.RGBA, error) {
	code, err := qrcode.New(data, opts.Level)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	code.DisableBorder = true
	code.ForegroundColor = opts.Foreground
	code.BackgroundColor = opts.Background

	// Negative size means pixels per module.
	inner := code.Image(-opts.BoxSize)

	quiet := opts.Border * opts.BoxSize
	edge := inner.Bounds().Dx() + 2*quiet
	out := image.NewRGBA(image.Rect(0, 0, edge, edge))
	draw.Draw(out, out.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	draw.Draw(out,
		image.Rect(quiet, quiet, quiet+inner.Bounds().Dx(), quiet+inner.Bounds().Dy()),
		inner, inner.Bounds().Min, draw.Src)

	return out, nil
}
