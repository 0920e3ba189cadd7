package repository

import (
	"context"

	"crimecam-core/internal/domain/entity"
)

// VisionProvider is one vendor's vision-model invocation. The dispatcher
// depends only on this interface; adding a vendor means one new
// implementation and one new row in the model table.
type VisionProvider interface {
	// Invoke sends the image and prompts to the vendor and returns the
	// generated report with per-call telemetry (duration, tokens, cost).
	Invoke(ctx context.Context, req entity.AnalysisRequest, cfg entity.ModelConfig) (*entity.AnalysisResult, error)
	// Provider returns the vendor this client talks to.
	Provider() entity.ModelProvider
}

// ReportStore persists shareable report records.
type ReportStore interface {
	Save(ctx context.Context, report *entity.StoredReport) error
	Get(ctx context.Context, id string) (*entity.StoredReport, error)
}

// RequestLimiter applies a coarse per-source counter window at the HTTP
// boundary.
type RequestLimiter interface {
	Allow(ctx context.Context, source string) (bool, error)
}
