package compose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/image/font"
)

func bodyFace(t *testing.T) font.Face {
	t.Helper()
	c, err := NewCompositor()
	require.NoError(t, err)
	f, err := c.newFaces()
	require.NoError(t, err)
	return f.body
}

func TestWrapTextFittingLineUnchanged(t *testing.T) {
	face := bodyFace(t)

	lines := wrapText(face, "short line", contentWidth)
	assert.Equal(t, []string{"short line"}, lines)
}

func TestWrapTextEveryLineFits(t *testing.T) {
	face := bodyFace(t)
	text := strings.Repeat("an unusually verbose and meandering accusation ", 20)

	lines := wrapText(face, text, contentWidth)
	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, font.MeasureString(face, line).Ceil(), contentWidth, "line %q overflows", line)
	}
}

func TestWrapTextPreservesWords(t *testing.T) {
	face := bodyFace(t)
	text := strings.Repeat("suspicious crumbs on the counter ", 15)

	lines := wrapText(face, text, contentWidth)
	assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(lines, " ")))
}

func TestWrapTextHardBreaks(t *testing.T) {
	face := bodyFace(t)

	lines := wrapText(face, "first paragraph\n\nsecond paragraph", contentWidth)
	assert.Equal(t, []string{"first paragraph", "", "second paragraph"}, lines)

	// CRLF input behaves the same
	crlf := wrapText(face, "first paragraph\r\n\r\nsecond paragraph", contentWidth)
	assert.Equal(t, lines, crlf)
}

func TestWrapTextBlankInput(t *testing.T) {
	face := bodyFace(t)

	assert.Nil(t, wrapText(face, "", contentWidth))
	assert.Nil(t, wrapText(face, "   \n\t  ", contentWidth))
}

func TestWrapTextOversizedWord(t *testing.T) {
	face := bodyFace(t)
	giant := strings.Repeat("x", 400)

	// a single word wider than the column still lands on its own line
	lines := wrapText(face, "small "+giant+" small", contentWidth)
	assert.Contains(t, lines, giant)
}
