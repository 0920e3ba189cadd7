package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"crimecam-core/internal/domain/entity"
	"crimecam-core/internal/domain/repository"
)

// Dispatcher resolves a requested quality tier to a concrete, reachable
// (provider, model) pair, invokes it, and recovers from unavailability or
// runtime failure by retrying once against an alternate provider. The
// transition is one-shot: a fallback never loops back to the primary and a
// failed fallback is not followed by a second one.
type Dispatcher struct {
	providers map[entity.ModelProvider]repository.VisionProvider
	logger    zerolog.Logger
}

// NewDispatcher registers the configured vendor clients. Only providers
// whose credentials are present should be passed in; availability checks
// reduce to "was a client registered".
func NewDispatcher(logger zerolog.Logger, providers ...repository.VisionProvider) *Dispatcher {
	m := make(map[entity.ModelProvider]repository.VisionProvider, len(providers))
	for _, p := range providers {
		m[p.Provider()] = p
	}
	return &Dispatcher{
		providers: m,
		logger:    logger.With().Str("component", "dispatcher").Logger(),
	}
}

// Available reports whether a client is registered for the provider. This
// is checked before any network call.
func (d *Dispatcher) Available(p entity.ModelProvider) bool {
	return d.providers[p] != nil
}

// Analyze runs one photo analysis. It fails only when no provider is
// configured at all, or when both the chosen provider and its one fallback
// attempt fail at runtime.
func (d *Dispatcher) Analyze(ctx context.Context, req entity.AnalysisRequest) (*entity.AnalysisResult, error) {
	req.Intensity = entity.ClampIntensity(req.Intensity)

	cfg, err := d.resolveConfig(req.Quality)
	if err != nil {
		return nil, err
	}

	// Primary unavailable: go straight to the first available fallback and
	// never attempt the originally requested provider.
	if !d.Available(cfg.Provider) {
		fb, ok := d.fallbackConfig(req.Quality, "")
		if !ok {
			return nil, entity.ErrNoProviderConfigured
		}
		d.logger.Warn().
			Str("requested", string(cfg.Provider)).
			Str("fallback", string(fb.Provider)).
			Str("model", fb.Model).
			Msg("primary provider not available, using fallback")

		res, err := d.providers[fb.Provider].Invoke(ctx, req, fb)
		if err != nil {
			return nil, err
		}
		markFallback(res, fmt.Sprintf("primary provider %s not available", cfg.Provider))
		return res, nil
	}

	res, primaryErr := d.providers[cfg.Provider].Invoke(ctx, req, cfg)
	if primaryErr == nil {
		return res, nil
	}

	d.logger.Error().Err(primaryErr).
		Str("provider", string(cfg.Provider)).
		Str("model", cfg.Model).
		Msg("primary provider failed")

	// Runtime failure: one fallback attempt against a different provider.
	// A second failure propagates the original error.
	if fb, ok := d.fallbackConfig(req.Quality, cfg.Provider); ok {
		d.logger.Warn().
			Str("fallback", string(fb.Provider)).
			Str("model", fb.Model).
			Msg("attempting fallback provider")

		if fbRes, fbErr := d.providers[fb.Provider].Invoke(ctx, req, fb); fbErr == nil {
			markFallback(fbRes, fmt.Sprintf("primary provider error: %s", primaryErr.Error()))
			return fbRes, nil
		} else {
			d.logger.Error().Err(fbErr).Str("provider", string(fb.Provider)).Msg("fallback provider also failed")
		}
	}

	return nil, primaryErr
}

// resolveConfig turns a quality tier into a concrete model config. The
// auto tier prefers the balanced (gemini) configuration, then the speed
// (openai) one; empty or unknown tiers resolve as auto.
func (d *Dispatcher) resolveConfig(quality entity.ModelQuality) (entity.ModelConfig, error) {
	cfg, ok := ModelConfigs[quality]
	if !ok || quality == entity.QualityAuto {
		switch {
		case d.Available(entity.ProviderGemini):
			return ModelConfigs[entity.QualityBalanced], nil
		case d.Available(entity.ProviderOpenAI):
			return ModelConfigs[entity.QualitySpeed], nil
		default:
			return entity.ModelConfig{}, entity.ErrNoProviderConfigured
		}
	}
	return cfg, nil
}

// fallbackConfig walks the fallback list for the tier and returns the
// first entry whose provider is available, skipping entries mapped to
// skipProvider (the provider that just failed).
func (d *Dispatcher) fallbackConfig(quality entity.ModelQuality, skipProvider entity.ModelProvider) (entity.ModelConfig, bool) {
	order, ok := fallbackOrder[quality]
	if !ok {
		order = fallbackOrder[entity.QualityAuto]
	}
	for _, tier := range order {
		cfg := ModelConfigs[tier]
		if skipProvider != "" && cfg.Provider == skipProvider {
			continue
		}
		if d.Available(cfg.Provider) {
			return cfg, true
		}
	}
	return entity.ModelConfig{}, false
}

func markFallback(res *entity.AnalysisResult, reason string) {
	if res.Telemetry == nil {
		res.Telemetry = &entity.Telemetry{}
	}
	res.Telemetry.FallbackUsed = true
	res.Telemetry.FallbackReason = reason
}

// ProviderStatus is the capability summary rendered by the UI.
type ProviderStatus struct {
	OpenAI             bool                  `json:"openai"`
	Gemini             bool                  `json:"gemini"`
	AvailableQualities []entity.ModelQuality `json:"availableQualities"`
}

// Status reports per-provider availability and the quality tiers that can
// currently be served. Auto is always listed.
func (d *Dispatcher) Status() ProviderStatus {
	s := ProviderStatus{
		OpenAI:             d.Available(entity.ProviderOpenAI),
		Gemini:             d.Available(entity.ProviderGemini),
		AvailableQualities: []entity.ModelQuality{entity.QualityAuto},
	}
	for _, q := range []entity.ModelQuality{entity.QualitySpeed, entity.QualityBalanced, entity.QualityPremium} {
		if d.Available(ModelConfigs[q].Provider) {
			s.AvailableQualities = append(s.AvailableQualities, q)
		}
	}
	return s
}
