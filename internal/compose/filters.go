package compose

import "image"

// Filter is the visual transform applied to the photo before drawing.
type Filter string

const (
	FilterNone  Filter = "none"
	FilterNoir  Filter = "noir"  // grayscale with a contrast boost
	FilterSepia Filter = "sepia" // sepia with a contrast boost
)

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// contrast re-centers a channel around mid-gray and stretches it.
func contrast(v, factor float64) float64 {
	return (v-128)*factor + 128
}

// applyFilter transforms img's pixels in place. The photo is the only
// region filtered; everything else on the canvas draws afterwards.
func applyFilter(img *image.RGBA, filter Filter) {
	switch filter {
	case FilterNoir:
		applyNoir(img)
	case FilterSepia:
		applySepia(img)
	}
}

// applyNoir converts to luminance, boosts contrast 15% and dims 5%,
// mirroring a grayscale(100%) contrast(115%) brightness(95%) pipeline.
func applyNoir(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			r, g, bl := float64(img.Pix[i]), float64(img.Pix[i+1]), float64(img.Pix[i+2])
			l := 0.299*r + 0.587*g + 0.114*bl
			l = contrast(l, 1.15) * 0.95
			v := clamp8(l)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2] = v, v, v
		}
	}
}

// applySepia applies the standard sepia matrix with a 10% contrast boost.
func applySepia(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			r, g, bl := float64(img.Pix[i]), float64(img.Pix[i+1]), float64(img.Pix[i+2])
			tr := 0.393*r + 0.769*g + 0.189*bl
			tg := 0.349*r + 0.686*g + 0.168*bl
			tb := 0.272*r + 0.534*g + 0.131*bl
			img.Pix[i] = clamp8(contrast(tr, 1.10))
			img.Pix[i+1] = clamp8(contrast(tg, 1.10))
			img.Pix[i+2] = clamp8(contrast(tb, 1.10))
		}
	}
}
