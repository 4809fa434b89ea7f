package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"business-advisor/internal/di"
	"business-advisor/internal/infrastructure/env"
	"business-advisor/internal/infrastructure/server"
)

func main() {
	envService := env.NewEnvService()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := di.NewContainer(di.Config{
		YelpAPIKey:   envService.MustGet("YELP_API_KEY"),
		GeminiAPIKey: envService.MustGet("GEMINI_API_KEY"),
		GeminiModel:  envService.GetDefault("GEMINI_MODEL_NAME", "gemini-2.0-flash"),

		MinReviews:        envService.GetInt("MIN_REVIEWS", 0),
		ContextBudget:     envService.GetInt("CONTEXT_BUDGET", 0),
		ReviewLimit:       envService.GetInt("REVIEW_LIMIT", 0),
		GenerationRetries: envService.GetInt("GENERATION_RETRIES", 0),
		ValidationRetries: envService.GetInt("VALIDATION_RETRIES", 0),
		CallTimeout:       envService.GetDuration("CALL_TIMEOUT", 0),

		Debug: envService.GetBool("DEBUG", false),
	})
	if err != nil {
		log.Fatalf("Initialization failed: %v", err)
	}
	defer container.Close()

	srv := server.New(container.Evaluator, container.Logger)

	addr := ":" + envService.GetDefault("PORT", "8080")
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		container.Logger.Error("Server stopped", "error", err)
	}
}
