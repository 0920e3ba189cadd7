package main

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"crimecam-core/internal/adapter/api"
	"crimecam-core/internal/adapter/client"
	"crimecam-core/internal/adapter/store"
	"crimecam-core/internal/compose"
	"crimecam-core/internal/domain/repository"
	"crimecam-core/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(".env.dev"); err != nil {
		logger.Info().Msg(".env.dev file not found, using system environment variables")
	}
	ctx := context.Background()

	redisAddr := os.Getenv("REDIS_ADDR")
	openAIKey := trimmedEnv("OPENAI_API_KEY")
	geminiKey := trimmedEnv("GEMINI_API_KEY")
	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "https://crimecam.fun"
	}

	rateLimit := envInt("RATE_LIMIT_PER_MINUTE", 20)
	reportTTLDays := envInt("REPORT_TTL_DAYS", 90)

	// Redis backs both the saved-report store and the request limiter.
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	// Vendor clients are only constructed when their credential is present;
	// the dispatcher treats a missing client as "provider unavailable".
	var providers []repository.VisionProvider
	if openAIKey != "" {
		providers = append(providers, client.NewOpenAIClient(openAIKey, logger))
	}
	if geminiKey != "" {
		gemini, err := client.NewGeminiClient(ctx, geminiKey, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to init gemini client")
		}
		providers = append(providers, gemini)
	}
	if len(providers) == 0 {
		logger.Warn().Msg("no provider credential configured, analysis requests will be rejected")
	}

	dispatcher := usecase.NewDispatcher(logger, providers...)

	compositor, err := compose.NewCompositor()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init compositor")
	}

	reportStore := store.NewRedisReportStore(rdb, time.Duration(reportTTLDays)*24*time.Hour)
	limiter := store.NewRedisLimiter(rdb, rateLimit, time.Minute)

	// Initialize API Layer (Delivery Layer)
	app := fiber.New(fiber.Config{
		AppName:   "CrimeCam Core",
		BodyLimit: 25 * 1024 * 1024, // room for base64 photos
	})

	handler := api.NewCaseHandler(dispatcher, compositor, reportStore, limiter, baseURL, logger)
	api.SetupRouter(app, handler)

	// Start Server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info().Str("port", port).Msg("CrimeCam core running")
	if err := app.Listen(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func trimmedEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
