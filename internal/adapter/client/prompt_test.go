package client

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUserMessage(t *testing.T) {
	msg := buildUserMessage("he never does the dishes", 9)

	assert.Contains(t, msg, "HUMOR DIAL: 9/10")
	assert.Contains(t, msg, "he never does the dishes")
	assert.Contains(t, msg, "clues, not a script")
	assert.True(t, strings.HasSuffix(msg, "Analyze this image using the system instructions."))
}

func TestBuildUserMessageWithoutContext(t *testing.T) {
	for _, ctx := range []string{"", "   ", "\n\t"} {
		msg := buildUserMessage(ctx, 3)
		assert.Contains(t, msg, "HUMOR DIAL: 3/10")
		assert.NotContains(t, msg, "Context", "blank context must not leave an empty clue block")
	}
}

func TestBuildUserMessageClampsDial(t *testing.T) {
	assert.Contains(t, buildUserMessage("", 0), "HUMOR DIAL: 7/10")
	assert.Contains(t, buildUserMessage("", -2), "HUMOR DIAL: 1/10")
	assert.Contains(t, buildUserMessage("", 15), "HUMOR DIAL: 10/10")
}

func TestEnsureDataURI(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,AAAA", ensureDataURI("data:image/png;base64,AAAA"))
	assert.Equal(t, "data:image/jpeg;base64,AAAA", ensureDataURI("AAAA"))
}

func TestDecodeImagePayload(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("pixels"))

	raw, mime, err := decodeImagePayload(payload)
	require.NoError(t, err)
	assert.Equal(t, []byte("pixels"), raw)
	assert.Equal(t, "image/jpeg", mime)

	raw, mime, err = decodeImagePayload("data:image/png;base64," + payload)
	require.NoError(t, err)
	assert.Equal(t, []byte("pixels"), raw)
	assert.Equal(t, "image/png", mime)

	_, _, err = decodeImagePayload("data:image/png;base64,!!!not-base64!!!")
	assert.Error(t, err)
}

func TestEstimateCost(t *testing.T) {
	assert.InDelta(t, 0.00045, estimateCost("gpt-4o-mini", 1000, 500), 1e-9)
	assert.InDelta(t, (1000*0.10+500*0.40)/1e6, estimateCost("gemini-2.0-flash", 1000, 500), 1e-9)
	// unknown models bill at the default rate instead of erroring
	assert.InDelta(t, (1000*1+500*5)/1e6, estimateCost("gpt-9-turbo", 1000, 500), 1e-9)
	assert.Zero(t, estimateCost("gpt-4o-mini", 0, 0))
}
