// Package compose renders a shareable composite image: a header band with
// the brand mark and case number, the subject photo with an optional color
// transform, and the generated report word-wrapped into titled sections.
// Every export uses a fresh canvas; nothing is cached between calls.
package compose

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	xdraw "golang.org/x/image/draw"

	"crimecam-core/internal/report"
)

// Format selects the output encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// MIMEType returns the content type for the encoded blob.
func (f Format) MIMEType() string {
	if f == FormatJPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// Canvas geometry. Portrait paper layout, 1080 wide.
const (
	canvasWidth  = 1080
	pagePad      = 64
	contentWidth = canvasWidth - 2*pagePad
	HeaderHeight = 140
	blockGap     = 28
	sectionGap   = 12

	titleSize         = 42
	sectionTitleSize  = 36
	bodySize          = 30
	titleLineH        = 50
	sectionTitleLineH = 44
	bodyLineH         = 40

	shortTextLimit = 260
	jpegQuality    = 90
)

// Options tunes one export call.
type Options struct {
	UseShortText  bool
	TitleOverride string // replaces the parsed edition subtitle when set
	Format        Format
	Logo          image.Image // optional brand mark for the header
}

// SectionBlock is one titled run of wrapped lines.
type SectionBlock struct {
	Title string
	Lines []string
}

// Layout is the transient per-export layout: wrapped sections, computed
// photo dimensions and total canvas height.
type Layout struct {
	Subtitle    string
	Blocks      []SectionBlock
	ImageWidth  int
	ImageHeight int
	TotalHeight int
}

// Compositor renders composite exports. The parsed fonts are shared;
// faces are created per call so concurrent exports do not interfere.
type Compositor struct {
	regular *opentype.Font
	bold    *opentype.Font
}

// NewCompositor parses the embedded Go fonts.
func NewCompositor() (*Compositor, error) {
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bld, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &Compositor{regular: reg, bold: bld}, nil
}

type faces struct {
	title        font.Face
	sectionTitle font.Face
	body         font.Face
	caseLabel    font.Face
	unitLabel    font.Face
	stamp        font.Face
}

func (c *Compositor) newFaces() (*faces, error) {
	mk := func(f *opentype.Font, size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	}
	title, err := mk(c.bold, titleSize)
	if err != nil {
		return nil, err
	}
	section, err := mk(c.bold, sectionTitleSize)
	if err != nil {
		return nil, err
	}
	body, err := mk(c.regular, bodySize)
	if err != nil {
		return nil, err
	}
	caseLabel, err := mk(c.bold, 22)
	if err != nil {
		return nil, err
	}
	unitLabel, err := mk(c.bold, 20)
	if err != nil {
		return nil, err
	}
	stamp, err := mk(c.bold, 28)
	if err != nil {
		return nil, err
	}
	return &faces{
		title:        title,
		sectionTitle: section,
		body:         body,
		caseLabel:    caseLabel,
		unitLabel:    unitLabel,
		stamp:        stamp,
	}, nil
}

// capText truncates to the short-form limit, marking truncation with an
// ellipsis.
func capText(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "…"
}

// computeLayout parses and wraps the report against real font metrics and
// sizes the photo and canvas. Long reports shrink the photo rather than
// clipping; there is no height cap.
func computeLayout(f *faces, srcW, srcH int, reportText string, opts Options) Layout {
	text := reportText
	if opts.UseShortText {
		text = capText(text, shortTextLimit)
	}

	subtitle := report.Subtitle(text)
	if opts.TitleOverride != "" {
		subtitle = opts.TitleOverride
	}
	sections := report.ParseSections(text, report.CrimeVocabulary)

	blocks := make([]SectionBlock, 0, len(sections))
	totalLines := 0
	for _, s := range sections {
		lines := wrapText(f.body, s.Content, contentWidth)
		totalLines += len(lines) + 1 // +1 for the section title
		blocks = append(blocks, SectionBlock{Title: s.Title, Lines: lines})
	}

	imgFactor := 0.7
	if totalLines > 70 {
		imgFactor = 0.5 // keep very long reports from producing absurdly tall pages
	}
	imgW := int(float64(contentWidth)*imgFactor + 0.5)
	imgH := 0
	if srcW > 0 {
		imgH = int(float64(srcH)*float64(imgW)/float64(srcW) + 0.5)
	}

	textHeight := 0
	for _, b := range blocks {
		textHeight += sectionTitleLineH + len(b.Lines)*bodyLineH + sectionGap
	}

	h := HeaderHeight
	if subtitle != "" {
		h += blockGap/2 + bodyLineH
	}
	h += blockGap + imgH + blockGap + textHeight + pagePad

	return Layout{
		Subtitle:    subtitle,
		Blocks:      blocks,
		ImageWidth:  imgW,
		ImageHeight: imgH,
		TotalHeight: h,
	}
}

var (
	paperColor   = color.RGBA{R: 0xf8, G: 0xf7, B: 0xf4, A: 0xff}
	ruleColor    = color.RGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff}
	inkColor     = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}
	bodyInkColor = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
	unitRedColor = color.RGBA{R: 0xb9, G: 0x1c, B: 0x1c, A: 0xff}
	stampColor   = color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0x26}
)

func drawString(dst draw.Image, face font.Face, col color.Color, x, y int, s string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// Export decodes src, lays out the report, draws the composite and encodes
// it. Decode failure fails the whole export; an empty report still renders
// the header and photo.
func (c *Compositor) Export(src []byte, caseID, reportText string, filter Filter, opts Options) ([]byte, error) {
	srcImg, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("decode source image: %w", err)
	}

	f, err := c.newFaces()
	if err != nil {
		return nil, fmt.Errorf("build font faces: %w", err)
	}

	srcBounds := srcImg.Bounds()
	layout := computeLayout(f, srcBounds.Dx(), srcBounds.Dy(), reportText, opts)

	canvas := image.NewRGBA(image.Rect(0, 0, canvasWidth, layout.TotalHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(paperColor), image.Point{}, draw.Src)

	// Header band with bottom rule.
	draw.Draw(canvas, image.Rect(0, 0, canvasWidth, HeaderHeight), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, HeaderHeight-2, canvasWidth, HeaderHeight), image.NewUniform(ruleColor), image.Point{}, draw.Src)

	brandX := pagePad
	if opts.Logo != nil {
		const logoSize = 84
		logoRect := image.Rect(pagePad, (HeaderHeight-logoSize)/2, pagePad+logoSize, (HeaderHeight-logoSize)/2+logoSize)
		xdraw.ApproxBiLinear.Scale(canvas, logoRect, opts.Logo, opts.Logo.Bounds(), xdraw.Over, nil)
		brandX += 100
	}
	drawString(canvas, f.title, inkColor, brandX, 56, "CRIMECAM")
	drawString(canvas, f.unitLabel, unitRedColor, brandX, 84, "THE CRIME-ISH UNIT")

	caseText := "CASE #" + caseID
	caseW := font.MeasureString(f.caseLabel, caseText).Ceil()
	drawString(canvas, f.caseLabel, inkColor, canvasWidth-pagePad-caseW, 56, caseText)
	drawString(canvas, f.stamp, stampColor, canvasWidth-300, 118, "OFFICIAL REPORT")

	y := HeaderHeight
	if layout.Subtitle != "" {
		y += blockGap / 2
		drawString(canvas, f.sectionTitle, inkColor, pagePad, y+bodyLineH-8, layout.Subtitle)
		y += bodyLineH
	}

	// Photo, centered, filtered before anything else draws over the canvas.
	imgY := y + blockGap
	imgX := pagePad + (contentWidth-layout.ImageWidth)/2
	photo := image.NewRGBA(image.Rect(0, 0, layout.ImageWidth, layout.ImageHeight))
	xdraw.ApproxBiLinear.Scale(photo, photo.Bounds(), srcImg, srcBounds, xdraw.Src, nil)
	applyFilter(photo, filter)
	draw.Draw(canvas, image.Rect(imgX, imgY, imgX+layout.ImageWidth, imgY+layout.ImageHeight), photo, image.Point{}, draw.Over)

	// Section titles and wrapped body lines.
	textY := imgY + layout.ImageHeight + blockGap
	for _, block := range layout.Blocks {
		textY += sectionTitleLineH
		drawString(canvas, f.sectionTitle, inkColor, pagePad, textY, block.Title)
		for _, line := range block.Lines {
			textY += bodyLineH
			if strings.TrimSpace(line) == "" {
				continue
			}
			drawString(canvas, f.body, bodyInkColor, pagePad, textY, line)
		}
		textY += sectionGap
	}

	var buf bytes.Buffer
	switch opts.Format {
	case FormatJPEG:
		err = jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: jpegQuality})
	default:
		err = png.Encode(&buf, canvas)
	}
	if err != nil {
		return nil, fmt.Errorf("encode composite: %w", err)
	}
	return buf.Bytes(), nil
}
