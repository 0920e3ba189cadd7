package entity

import "errors"

// Standard domain errors
var (
	ErrNoProviderConfigured = errors.New("no AI provider configured: set OPENAI_API_KEY or GEMINI_API_KEY")
	ErrRateLimitExceeded    = errors.New("rate limit exceeded: too many requests from this source")
	ErrInvalidRequest       = errors.New("invalid request parameters")
	ErrReportNotFound       = errors.New("the requested report was not found")
)
