package compose

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func uniformRGBA(c color.RGBA, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestApplyFilterNone(t *testing.T) {
	src := color.RGBA{R: 200, G: 50, B: 120, A: 255}
	img := uniformRGBA(src, 4, 4)

	applyFilter(img, FilterNone)
	assert.Equal(t, src, img.RGBAAt(2, 2))
}

func TestApplyNoirProducesGray(t *testing.T) {
	img := uniformRGBA(color.RGBA{R: 200, G: 50, B: 120, A: 255}, 4, 4)

	applyFilter(img, FilterNoir)

	px := img.RGBAAt(1, 1)
	assert.Equal(t, px.R, px.G)
	assert.Equal(t, px.G, px.B)
	assert.Equal(t, uint8(255), px.A, "alpha untouched")
}

func TestApplyNoirBoostsContrast(t *testing.T) {
	dark := uniformRGBA(color.RGBA{R: 40, G: 40, B: 40, A: 255}, 2, 2)
	light := uniformRGBA(color.RGBA{R: 220, G: 220, B: 220, A: 255}, 2, 2)

	applyFilter(dark, FilterNoir)
	applyFilter(light, FilterNoir)

	// contrast pushes values away from mid-gray
	assert.Less(t, dark.RGBAAt(0, 0).R, uint8(40))
	assert.Greater(t, light.RGBAAt(0, 0).R, uint8(220))
}

func TestApplySepiaWarmTone(t *testing.T) {
	img := uniformRGBA(color.RGBA{R: 128, G: 128, B: 128, A: 255}, 4, 4)

	applyFilter(img, FilterSepia)

	px := img.RGBAAt(0, 0)
	assert.Greater(t, px.R, px.G)
	assert.Greater(t, px.G, px.B)
	assert.Equal(t, uint8(255), px.A)
}

func TestClamp8(t *testing.T) {
	assert.Equal(t, uint8(0), clamp8(-12))
	assert.Equal(t, uint8(255), clamp8(300))
	assert.Equal(t, uint8(128), clamp8(127.6))
}
