package api

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"crimecam-core/internal/compose"
	"crimecam-core/internal/domain/entity"
	"crimecam-core/internal/domain/repository"
	"crimecam-core/internal/preset"
	"crimecam-core/internal/report"
	"crimecam-core/internal/usecase"
)

// analyzeTimeout bounds the whole dispatch path, fallback included.
const analyzeTimeout = 60 * time.Second

// minContextLen: shorter context strings are noise, not clues.
const minContextLen = 3

// CaseHandler wires the HTTP surface to the dispatcher, compositor and
// report store.
type CaseHandler struct {
	dispatcher *usecase.Dispatcher
	compositor *compose.Compositor
	reports    repository.ReportStore
	limiter    repository.RequestLimiter
	baseURL    string
	logger     zerolog.Logger
}

func NewCaseHandler(
	dispatcher *usecase.Dispatcher,
	compositor *compose.Compositor,
	reports repository.ReportStore,
	limiter repository.RequestLimiter,
	baseURL string,
	logger zerolog.Logger,
) *CaseHandler {
	return &CaseHandler{
		dispatcher: dispatcher,
		compositor: compositor,
		reports:    reports,
		limiter:    limiter,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger.With().Str("component", "api").Logger(),
	}
}

type analyzeRequest struct {
	Image     string `json:"image"`
	Quality   string `json:"quality"`
	Mode      string `json:"mode"`
	Context   string `json:"context"`
	Intensity int    `json:"intensity"`
}

// HandleAnalyze runs one photo analysis through the dispatcher.
func (h *CaseHandler) HandleAnalyze(c *fiber.Ctx) error {
	if h.limiter != nil {
		allowed, err := h.limiter.Allow(c.Context(), c.IP())
		if err != nil {
			// Fail open: a broken limiter should not take analysis down.
			h.logger.Warn().Err(err).Msg("rate limiter check failed")
		} else if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": entity.ErrRateLimitExceeded.Error()})
		}
	}

	var body analyzeRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if body.Image == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no image provided"})
	}

	contextText := strings.TrimSpace(body.Context)
	if len(contextText) < minContextLen {
		contextText = ""
	}

	ctx, cancel := context.WithTimeout(c.Context(), analyzeTimeout)
	defer cancel()

	result, err := h.dispatcher.Analyze(ctx, entity.AnalysisRequest{
		ImageBase64: body.Image,
		Quality:     entity.ModelQuality(body.Quality),
		Mode:        body.Mode,
		Context:     contextText,
		Intensity:   body.Intensity,
	})
	if err != nil {
		if errors.Is(err, entity.ErrNoProviderConfigured) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"report":     result.Report,
		"telemetry":  result.Telemetry,
		"caseNumber": entity.NewCaseNumber(),
	})
}

// HandleProviders reports which vendors and quality tiers are usable.
func (h *CaseHandler) HandleProviders(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.dispatcher.Status())
}

// HandlePresets lists the available analysis modes.
func (h *CaseHandler) HandlePresets(c *fiber.Ctx) error {
	type presetView struct {
		ID            string `json:"id"`
		Label         string `json:"label"`
		ExportTitle   string `json:"exportTitle"`
		ContextPrompt string `json:"contextPrompt"`
		ShortDesc     string `json:"shortDesc,omitempty"`
	}
	all := preset.All()
	out := make([]presetView, 0, len(all))
	for _, p := range all {
		out = append(out, presetView{
			ID:            string(p.ID),
			Label:         p.Label,
			ExportTitle:   p.ExportTitle,
			ContextPrompt: p.ContextPrompt,
			ShortDesc:     p.ShortDesc,
		})
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

type sectionsRequest struct {
	Report string `json:"report"`
	Mode   string `json:"mode"`
}

// HandleSections parses a report into display sections for the UI.
func (h *CaseHandler) HandleSections(c *fiber.Ctx) error {
	var body sectionsRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	sections := report.ParseSections(body.Report, report.VocabularyFor(body.Mode))
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"subtitle": report.Subtitle(body.Report),
		"sections": sections,
	})
}

type exportRequest struct {
	Image         string `json:"image"`
	CaseID        string `json:"caseId"`
	Report        string `json:"report"`
	Filter        string `json:"filter"`
	Format        string `json:"format"`
	UseShortText  bool   `json:"useShortText"`
	TitleOverride string `json:"titleOverride"`
}

// HandleExport renders the shareable composite and streams it back with
// the matching content type.
func (h *CaseHandler) HandleExport(c *fiber.Ctx) error {
	var body exportRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if body.Image == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no image provided"})
	}

	raw, err := decodeImage(body.Image)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "image payload is not valid base64"})
	}

	format := compose.FormatPNG
	if body.Format == string(compose.FormatJPEG) {
		format = compose.FormatJPEG
	}

	blob, err := h.compositor.Export(raw, body.CaseID, body.Report, compose.Filter(body.Filter), compose.Options{
		UseShortText:  body.UseShortText,
		TitleOverride: body.TitleOverride,
		Format:        format,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("composite export failed")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, format.MIMEType())
	return c.Status(fiber.StatusOK).Send(blob)
}

type saveReportRequest struct {
	ImageBase64 string            `json:"imageBase64"`
	Report      string            `json:"report"`
	CaseID      string            `json:"caseId"`
	Mode        string            `json:"mode"`
	Intensity   int               `json:"intensity"`
	Context     string            `json:"context"`
	Telemetry   *entity.Telemetry `json:"telemetry"`
}

// HandleSaveReport persists a report record for the public share page.
func (h *CaseHandler) HandleSaveReport(c *fiber.Ctx) error {
	var body saveReportRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if body.ImageBase64 == "" || body.Report == "" || body.CaseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing required fields"})
	}

	stored := &entity.StoredReport{
		ID:          body.CaseID,
		ImageBase64: body.ImageBase64,
		Report:      body.Report,
		CaseID:      body.CaseID,
		Mode:        body.Mode,
		Intensity:   entity.ClampIntensity(body.Intensity),
		Context:     body.Context,
		CreatedAt:   time.Now().UnixMilli(),
		Telemetry:   body.Telemetry,
	}
	if err := h.reports.Save(c.Context(), stored); err != nil {
		h.logger.Error().Err(err).Str("caseId", body.CaseID).Msg("failed to save report")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save report"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"reportId": stored.ID,
		"shareUrl": h.baseURL + "/report/" + stored.ID,
	})
}

// HandleGetReport serves the public read-only view of a saved report.
func (h *CaseHandler) HandleGetReport(c *fiber.Ctx) error {
	id := c.Params("id")
	stored, err := h.reports.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load report"})
	}
	return c.Status(fiber.StatusOK).JSON(stored)
}

// decodeImage strips an optional data-URI prefix and decodes base64.
func decodeImage(payload string) ([]byte, error) {
	data := payload
	if strings.HasPrefix(payload, "data:") {
		if idx := strings.Index(payload, "base64,"); idx >= 0 {
			data = payload[idx+len("base64,"):]
		}
	}
	return base64.StdEncoding.DecodeString(data)
}
