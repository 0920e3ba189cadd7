package compose

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// redPNG encodes a solid-red test photo.
func redPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 0xff, A: 0xff})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

const sampleReport = `Crime Scene Report – Couch Potato Edition

Crime Scene: A living room in deep disarray, cushions everywhere.

Verdict: Guilty of aggravated lounging in the first degree.`

func TestExportPNG(t *testing.T) {
	c, err := NewCompositor()
	require.NoError(t, err)

	blob, err := c.Export(redPNG(t, 10, 10), "20250101-120000-AB12", sampleReport, FilterNone, Options{Format: FormatPNG})
	require.NoError(t, err)
	require.NotEmpty(t, blob)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(blob))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, canvasWidth, cfg.Width)
	assert.Greater(t, cfg.Height, HeaderHeight, "canvas must extend past the header band")
}

func TestExportJPEGWithSepia(t *testing.T) {
	c, err := NewCompositor()
	require.NoError(t, err)

	blob, err := c.Export(redPNG(t, 10, 10), "CASE01", sampleReport, FilterSepia, Options{Format: FormatJPEG})
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(blob))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, canvasWidth, cfg.Width)
	assert.Greater(t, cfg.Height, HeaderHeight)
}

func TestExportEmptyReport(t *testing.T) {
	c, err := NewCompositor()
	require.NoError(t, err)

	blob, err := c.Export(redPNG(t, 10, 10), "CASE02", "", FilterNoir, Options{})
	require.NoError(t, err, "an empty report still renders header and photo")
	assert.NotEmpty(t, blob)
}

func TestExportBadSourceImage(t *testing.T) {
	c, err := NewCompositor()
	require.NoError(t, err)

	_, err = c.Export([]byte("definitely not an image"), "CASE03", sampleReport, FilterNone, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode source image")
}

func TestComputeLayoutShortText(t *testing.T) {
	c, err := NewCompositor()
	require.NoError(t, err)
	f, err := c.newFaces()
	require.NoError(t, err)

	long := strings.Repeat("a very long winded accusation ", 40)
	layout := computeLayout(f, 100, 100, long, Options{UseShortText: true})

	require.Len(t, layout.Blocks, 1)
	joined := strings.Join(layout.Blocks[0].Lines, " ")
	assert.LessOrEqual(t, len([]rune(joined)), shortTextLimit+1, "capped text is at most the limit plus an ellipsis")
	assert.True(t, strings.HasSuffix(joined, "…"))
}

func TestComputeLayoutLongReportShrinksPhoto(t *testing.T) {
	c, err := NewCompositor()
	require.NoError(t, err)
	f, err := c.newFaces()
	require.NoError(t, err)

	short := computeLayout(f, 200, 100, sampleReport, Options{})
	verbose := computeLayout(f, 200, 100, strings.Repeat("word after word after word, an avalanche of testimony. ", 120), Options{})

	assert.Less(t, verbose.ImageWidth, short.ImageWidth)
	// aspect ratio is preserved at either scale
	assert.InDelta(t, 0.5, float64(short.ImageHeight)/float64(short.ImageWidth), 0.02)
	assert.InDelta(t, 0.5, float64(verbose.ImageHeight)/float64(verbose.ImageWidth), 0.02)
}

func TestComputeLayoutSubtitle(t *testing.T) {
	c, err := NewCompositor()
	require.NoError(t, err)
	f, err := c.newFaces()
	require.NoError(t, err)

	layout := computeLayout(f, 100, 100, sampleReport, Options{})
	assert.Equal(t, "Couch Potato", layout.Subtitle)

	plain := computeLayout(f, 100, 100, "Crime Scene: nothing fancy.", Options{})
	assert.Empty(t, plain.Subtitle)
	assert.Greater(t, plain.TotalHeight, HeaderHeight)

	overridden := computeLayout(f, 100, 100, sampleReport, Options{TitleOverride: "Mugshot Poster"})
	assert.Equal(t, "Mugshot Poster", overridden.Subtitle)
}

func TestFormatMIMEType(t *testing.T) {
	assert.Equal(t, "image/png", FormatPNG.MIMEType())
	assert.Equal(t, "image/jpeg", FormatJPEG.MIMEType())
	assert.Equal(t, "image/png", Format("").MIMEType())
}
