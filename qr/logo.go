package qr

import (
	"fmt"
	"image"
	"image/draw"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// maxLogoRatio caps the logo at a quarter of the QR edge so the symbol
// stays decodable at the higher error correction levels.
const maxLogoRatio = 0.25

// OverlayLogo decodes a logo image from r and composites it centered on
// base. The logo is shrunk to fit within maxLogoRatio of each edge but
// never enlarged. The base image is left untouched on decode failure.
func OverlayLogo(base *image.RGBA, r io.Reader) error {
	logo, _, err := image.Decode(r)
	if err != nil {
		return fmt.Errorf("decode logo: %w", err)
	}

	bw := base.Bounds().Dx()
	bh := base.Bounds().Dy()
	lw := logo.Bounds().Dx()
	lh := logo.Bounds().Dy()
	if lw == 0 || lh == 0 {
		return fmt.Errorf("logo has zero size")
	}

	scale := 1.0
	if s := maxLogoRatio * float64(bw) / float64(lw); s < scale {
		scale = s
	}
	if s := maxLogoRatio * float64(bh) / float64(lh); s < scale {
		scale = s
	}

	w := int(float64(lw) * scale)
	h := int(float64(lh) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), logo, logo.Bounds(), xdraw.Src, nil)

	offset := image.Pt((bw-w)/2, (bh-h)/2)
	draw.Draw(base, scaled.Bounds().Add(offset), scaled, image.Point{}, draw.Over)
	return nil
}
