package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"business-advisor/internal/application/port/input"
	"business-advisor/internal/di"
	"business-advisor/internal/infrastructure/env"
	"business-advisor/internal/infrastructure/imageprep"
	"business-advisor/internal/infrastructure/yelp"
)

func main() {
	business := flag.String("business", "", "business id, alias or business page URL to evaluate")
	imagePath := flag.String("image", "", "path to a photo of the venue (discovery mode)")
	question := flag.String("question", "", "what you want to know about the place on the photo")
	location := flag.String("location", "", "city or neighborhood for discovery")
	date := flag.String("date", "", "planned visit date, e.g. 2026-08-23")
	visitTime := flag.String("time", "", "planned visit time, e.g. 19:30")
	flag.Parse()

	if *business == "" && *imagePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: advisor -business <id|url>")
		fmt.Fprintln(os.Stderr, "       advisor -image <photo> -question <text> [-location ...] [-date ...] [-time ...]")
		os.Exit(2)
	}

	envService := env.NewEnvService()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

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

	businessID := yelp.ParseBusinessID(*business)

	if *imagePath != "" {
		businessID, err = discover(ctx, container, *imagePath, *question, *location, *date, *visitTime)
		if err != nil {
			container.Logger.Error("Discovery failed", "error", err)
			fmt.Fprintf(os.Stderr, "Discovery failed: %v\n", err)
			os.Exit(1)
		}
	}

	verdict, err := container.Evaluator.Evaluate(ctx, businessID)
	if err != nil {
		container.Logger.Error("Evaluation failed", "error", err)
		fmt.Fprintf(os.Stderr, "Evaluation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(verdict.Pros)
	fmt.Println(verdict.Cons)
	fmt.Println(verdict.Recommendation)
}

// discover resolves a photo plus a question into a business id, printing
// the candidate list and continuing with the best match.
func discover(ctx context.Context, container *di.Container, imagePath, question, location, date, visitTime string) (string, error) {
	dataURL, err := imageprep.PrepareFile(imagePath)
	if err != nil {
		return "", fmt.Errorf("prepare image: %w", err)
	}

	result, err := container.Finder.Discover(ctx, input.DiscoverRequest{
		ImageDataURL: dataURL,
		Question:     question,
		Location:     location,
		Date:         date,
		Time:         visitTime,
	})
	if err != nil {
		return "", err
	}
	if len(result.Hits) == 0 {
		return "", fmt.Errorf("no businesses matched %q", result.Query)
	}

	fmt.Printf("Search query: %s\n\nCandidates:\n", result.Query)
	for i, hit := range result.Hits {
		fmt.Printf("  %d. %s (%.1f of 5) %s\n", i+1, hit.Name, hit.Rating, hit.Address)
	}
	fmt.Printf("\nEvaluating %s...\n\n", result.Hits[0].Name)

	return result.Hits[0].ID, nil
}
