package usecase

import "crimecam-core/internal/domain/entity"

// ModelConfigs is the static capability table, keyed by quality tier.
// Immutable after init.
var ModelConfigs = map[entity.ModelQuality]entity.ModelConfig{
	entity.QualitySpeed: {
		Provider:            entity.ProviderOpenAI,
		Model:               "gpt-4o-mini",
		Quality:             entity.QualitySpeed,
		DisplayName:         "Speed",
		Description:         "Fast & affordable (OpenAI mini)",
		RelativeSpeed:       9,
		RelativeCost:        2,
		SupportsTemperature: false,
		MaxTokens:           3000,
	},
	entity.QualityBalanced: {
		Provider:            entity.ProviderGemini,
		Model:               "gemini-2.0-flash",
		Quality:             entity.QualityBalanced,
		DisplayName:         "Balanced",
		Description:         "Good quality & speed (Gemini Flash)",
		RelativeSpeed:       7,
		RelativeCost:        4,
		SupportsTemperature: true,
		MaxTokens:           4096,
	},
	entity.QualityPremium: {
		Provider:            entity.ProviderGemini,
		Model:               "gemini-1.5-pro",
		Quality:             entity.QualityPremium,
		DisplayName:         "Premium",
		Description:         "Best quality (Gemini Pro)",
		RelativeSpeed:       5,
		RelativeCost:        8,
		SupportsTemperature: true,
		MaxTokens:           8192,
	},
	entity.QualityAuto: {
		Provider:            entity.ProviderOpenAI,
		Model:               "gpt-4o-mini",
		Quality:             entity.QualityAuto,
		DisplayName:         "Auto",
		Description:         "Selects best available model",
		RelativeSpeed:       7,
		RelativeCost:        5,
		SupportsTemperature: false,
		MaxTokens:           3000,
	},
}

// fallbackOrder maps each tier to the ordered list of alternate tiers to
// try when the primary provider is unavailable or fails at runtime.
var fallbackOrder = map[entity.ModelQuality][]entity.ModelQuality{
	entity.QualitySpeed:    {entity.QualityBalanced, entity.QualityPremium},
	entity.QualityBalanced: {entity.QualitySpeed, entity.QualityPremium},
	entity.QualityPremium:  {entity.QualityBalanced, entity.QualitySpeed},
	entity.QualityAuto:     {entity.QualitySpeed, entity.QualityBalanced, entity.QualityPremium},
}
