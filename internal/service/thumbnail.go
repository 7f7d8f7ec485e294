package service

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"strings"

	"golang.org/x/image/draw"
)

// fitWithin returns the size of a w×h image scaled down to fit a box×box
// square with its aspect ratio kept. Images that already fit are unchanged.
func fitWithin(w, h, box int) (int, int) {
	if w <= box && h <= box {
		return w, h
	}
	if w >= h {
		nh := (h*box + w/2) / w
		return box, max(nh, 1)
	}
	nw := (w*box + h/2) / h
	return max(nw, 1), box
}

func thumbnail(src image.Image, box int) image.Image {
	b := src.Bounds()
	w, h := fitWithin(b.Dx(), b.Dy(), box)
	if w == b.Dx() && h == b.Dy() {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func encodeImage(img image.Image, ext string) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	case ".gif":
		err = gif.Encode(&buf, img, nil)
	default:
		err = png.Encode(&buf, img)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// placeholder renders a flat grey square used for missing reserved pictures.
func placeholder(box int) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, box, box))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}}, image.Point{}, draw.Src)
	return encodeImage(img, ".png")
}
