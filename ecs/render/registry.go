package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// BlockImage builds a block sprite: a filled square with a darker inset
// border so stacked blocks stay visually separable. Images are cached per
// size and color.
func BlockImage(size int, c color.NRGBA) *ebiten.Image {
	key := blockKey{size: size, c: c}
	if img, ok := blockCache[key]; ok {
		return img
	}

	img := ebiten.NewImage(size, size)
	img.Fill(darken(c, 0.6))

	inner := ebiten.NewImage(size-4, size-4)
	inner.Fill(c)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(2, 2)
	img.DrawImage(inner, op)

	blockCache[key] = img
	return img
}

// SolidImage builds a plain filled rectangle, for board geometry.
func SolidImage(w, h int, c color.NRGBA) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(c)
	return img
}

type blockKey struct {
	size int
	c    color.NRGBA
}

var blockCache = map[blockKey]*ebiten.Image{}

func darken(c color.NRGBA, f float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
