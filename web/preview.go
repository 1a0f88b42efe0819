package web

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/vector"
)

// RenderHighlight draws a width x height PNG of a horizontal progress
// bar: a muted background track spanning the full width, and a
// brand-colored segment from fraction start to fraction end (each in
// [0,1]), for a player UI to show which spoken word the character map
// currently points back at. The fill technique paths out a rectangle on
// a vector.Rasterizer and composites its anti-aliased mask over the
// destination image.
func RenderHighlight(width, height int, start, end float64, brand color.NRGBA) ([]byte, error) {
	if start < 0 {
		start = 0
	}
	if end > 1 {
		end = 1
	}
	if end < start {
		end = start
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	fillRect(img, 0, 0, float64(width), float64(height), color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0x30})
	fillRect(img, start*float64(width), 0, end*float64(width), float64(height), brand)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fillRect rasterizes the axis-aligned rectangle [x0,x1]x[y0,y1] into an
// anti-aliased alpha mask and composites it over dst in color c.
func fillRect(dst *image.NRGBA, x0, y0, x1, y1 float64, c color.NRGBA) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()

	rasterizer := vector.NewRasterizer(w, h)
	rasterizer.MoveTo(float32(x0), float32(y0))
	rasterizer.LineTo(float32(x1), float32(y0))
	rasterizer.LineTo(float32(x1), float32(y1))
	rasterizer.LineTo(float32(x0), float32(y1))
	rasterizer.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	rasterizer.Draw(mask, mask.Bounds(), image.NewUniform(color.Alpha{A: 0xff}), image.Point{})

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := mask.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			dst.SetNRGBA(x, y, blend(dst.NRGBAAt(x, y), c, a))
		}
	}
}

func blend(bg, fg color.NRGBA, alpha uint8) color.NRGBA {
	af := float64(alpha) / 255.0 * float64(fg.A) / 255.0
	return color.NRGBA{
		R: blendChannel(bg.R, fg.R, af),
		G: blendChannel(bg.G, fg.G, af),
		B: blendChannel(bg.B, fg.B, af),
		A: 255,
	}
}

func blendChannel(bg, fg uint8, af float64) uint8 {
	return uint8(float64(bg)*(1-af) + float64(fg)*af)
}
