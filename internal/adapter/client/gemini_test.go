package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crimecam-core/internal/domain/entity"
)

func TestGeminiTemperatureMapping(t *testing.T) {
	assert.InDelta(t, 0.3, float64(geminiTemperature(1)), 1e-6)
	assert.InDelta(t, 1.0, float64(geminiTemperature(10)), 1e-6)
	assert.InDelta(t, float64(geminiTemperature(1)), float64(geminiTemperature(-4)), 1e-6)
	assert.InDelta(t, float64(geminiTemperature(10)), float64(geminiTemperature(99)), 1e-6)
}

func TestGeminiClientProvider(t *testing.T) {
	c := &GeminiClient{}
	assert.Equal(t, entity.ProviderGemini, c.Provider())
}
