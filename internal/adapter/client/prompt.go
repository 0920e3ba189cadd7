package client

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"crimecam-core/internal/domain/entity"
)

// buildUserMessage assembles the user-turn text: the intensity dial is
// always stated, the caller's context is framed as clues rather than a
// script and only included when non-empty.
func buildUserMessage(context string, intensity int) string {
	s := entity.ClampIntensity(intensity)

	var b strings.Builder
	fmt.Fprintf(&b, "HUMOR DIAL: %d/10.\n", s)
	b.WriteString("Guidance: 1-3 gentle and playful, 4-6 spicy but friendly, 7-8 savage yet safe, 9-10 feral but still playful. Never cross into cruelty, slurs, or hate.\n\n")

	if trimmed := strings.TrimSpace(context); trimmed != "" {
		fmt.Fprintf(&b, "Context (use as clues, not a script): %q\n", trimmed)
		b.WriteString("- Weave context where it heightens the joke.\n")
		b.WriteString("- Blend with image details and plausible life habits.\n")
		b.WriteString("- Do NOT make every line about the photo or the context.\n\n")
	}

	b.WriteString("Analyze this image using the system instructions.")
	return b.String()
}

var dataURIRe = regexp.MustCompile(`^data:([^;]+);base64,(.+)$`)

// ensureDataURI passes a data-URI string through unchanged and wraps bare
// base64 in a JPEG data-URI prefix.
func ensureDataURI(imageBase64 string) string {
	if strings.HasPrefix(imageBase64, "data:") {
		return imageBase64
	}
	return "data:image/jpeg;base64," + imageBase64
}

// decodeImagePayload splits an optionally data-URI-prefixed base64 string
// into raw bytes and a MIME type (JPEG assumed for bare payloads).
func decodeImagePayload(imageBase64 string) ([]byte, string, error) {
	mimeType := "image/jpeg"
	data := imageBase64
	if m := dataURIRe.FindStringSubmatch(imageBase64); m != nil {
		mimeType = m[1]
		data = m[2]
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, "", fmt.Errorf("decode image payload: %w", err)
	}
	return raw, mimeType, nil
}

// modelRate is USD per 1M tokens.
type modelRate struct {
	input  float64
	output float64
}

// Rough list prices; models absent from the table bill at the default rate
// rather than erroring.
var pricing = map[string]modelRate{
	"gpt-4o-mini":      {input: 0.15, output: 0.6},
	"gpt-4o":           {input: 2.5, output: 10},
	"gemini-2.0-flash": {input: 0.10, output: 0.40},
	"gemini-1.5-pro":   {input: 1.25, output: 5},
}

var defaultRate = modelRate{input: 1, output: 5}

// estimateCost converts token usage into an estimated USD cost.
func estimateCost(model string, promptTokens, completionTokens int) float64 {
	rate, ok := pricing[model]
	if !ok {
		rate = defaultRate
	}
	return (float64(promptTokens)*rate.input + float64(completionTokens)*rate.output) / 1_000_000
}
