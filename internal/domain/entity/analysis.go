package entity

// ModelProvider identifies one of the external vision-capable LLM vendors.
type ModelProvider string

const (
	ProviderOpenAI ModelProvider = "openai"
	ProviderGemini ModelProvider = "gemini"
)

// ModelQuality is the caller-facing quality tier.
type ModelQuality string

const (
	QualitySpeed    ModelQuality = "speed"
	QualityBalanced ModelQuality = "balanced"
	QualityPremium  ModelQuality = "premium"
	QualityAuto     ModelQuality = "auto"
)

// ModelConfig describes one callable backend option. The table of configs
// is defined once at startup and never mutated.
type ModelConfig struct {
	Provider            ModelProvider `json:"provider"`
	Model               string        `json:"model"`
	Quality             ModelQuality  `json:"quality"`
	DisplayName         string        `json:"displayName"`
	Description         string        `json:"description"`
	RelativeSpeed       int           `json:"relativeSpeed"` // 1-10, higher is faster; display only
	RelativeCost        int           `json:"relativeCost"`  // 1-10, higher is pricier; display only
	SupportsTemperature bool          `json:"supportsTemperature"`
	MaxTokens           int           `json:"maxTokens"`
}

// AnalysisRequest carries one photo-analysis call through the dispatcher.
type AnalysisRequest struct {
	ImageBase64 string       `json:"image"`
	Quality     ModelQuality `json:"quality"`
	Mode        string       `json:"mode"`
	Context     string       `json:"context"`
	Intensity   int          `json:"intensity"` // 1-10 humor dial
}

// DefaultIntensity is used when the caller sends a zero or out-of-range dial.
const DefaultIntensity = 7

// ClampIntensity normalizes the 1-10 dial. Zero means "not provided" and
// resolves to the default; anything else is clamped into range.
func ClampIntensity(v int) int {
	if v == 0 {
		return DefaultIntensity
	}
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

// Telemetry describes how a report was produced. Field names are rendered
// by the UI and must stay stable.
type Telemetry struct {
	Provider         ModelProvider `json:"provider"`
	Model            string        `json:"model"`
	Quality          ModelQuality  `json:"quality"`
	DurationMs       int64         `json:"durationMs"`
	PromptTokens     int           `json:"promptTokens,omitempty"`
	CompletionTokens int           `json:"completionTokens,omitempty"`
	EstimatedCost    float64       `json:"estimatedCost,omitempty"`
	FallbackUsed     bool          `json:"fallbackUsed,omitempty"`
	FallbackReason   string        `json:"fallbackReason,omitempty"`
}

// AnalysisResult is the dispatcher's answer: the raw model text plus
// telemetry about which backend produced it.
type AnalysisResult struct {
	Report    string     `json:"report"`
	Telemetry *Telemetry `json:"telemetry,omitempty"`
}

// EmptyReportPlaceholder stands in for an empty-but-successful completion
// so downstream parsing never sees an empty report.
const EmptyReportPlaceholder = "Case file corrupted. Investigation inconclusive."
