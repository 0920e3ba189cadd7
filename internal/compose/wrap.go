package compose

import (
	"strings"

	"golang.org/x/image/font"
)

// wrapText greedily packs words into lines no wider than maxWidth,
// measured with the actual face metrics. Explicit line breaks are kept as
// hard breaks and each resulting line wraps independently. Whitespace-only
// input yields no lines.
func wrapText(face font.Face, text string, maxWidth int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	normalized := strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")
	var out []string
	for _, para := range strings.Split(normalized, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, w := range words {
			test := w
			if line != "" {
				test = line + " " + w
			}
			if font.MeasureString(face, test).Ceil() > maxWidth && line != "" {
				out = append(out, line)
				line = w
			} else {
				line = test
			}
		}
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
