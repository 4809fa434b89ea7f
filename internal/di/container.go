package di

import (
	"fmt"
	"time"

	"business-advisor/internal/application/port/input"
	"business-advisor/internal/application/port/output"
	"business-advisor/internal/infrastructure/llm/gemini"
	"business-advisor/internal/infrastructure/logger"
	"business-advisor/internal/infrastructure/summarizer"
	"business-advisor/internal/infrastructure/yelp"
	"business-advisor/internal/usecase/advisor"
	"business-advisor/internal/usecase/contextbuilder"
	"business-advisor/internal/usecase/debate"
	"business-advisor/internal/usecase/discovery"
)

type Container struct {
	LLM       output.LLMPort
	Data      output.BusinessDataPort
	Logger    output.LoggerPort
	Evaluator input.BusinessEvaluator
	Finder    input.BusinessFinder
}

type Config struct {
	YelpAPIKey   string
	GeminiAPIKey string
	GeminiModel  string

	// Optional endpoint overrides, mainly for tests and staging.
	YelpBaseURL    string
	YelpAIEndpoint string
	GeminiBaseURL  string

	MinReviews        int
	ContextBudget     int
	ReviewLimit       int
	GenerationRetries int
	ValidationRetries int
	CallTimeout       time.Duration
	Temperature       float32

	Debug bool
}

func NewContainer(cfg Config) (*Container, error) {
	log, err := logger.NewZapAdapter(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	yelpCfg := yelp.DefaultConfig(cfg.YelpAPIKey)
	if cfg.YelpBaseURL != "" {
		yelpCfg.BaseURL = cfg.YelpBaseURL
	}
	if cfg.YelpAIEndpoint != "" {
		yelpCfg.AIEndpoint = cfg.YelpAIEndpoint
	}
	yelpCfg.Logger = log
	data := yelp.NewClient(yelpCfg)

	llmCfg := gemini.DefaultConfig(cfg.GeminiAPIKey, cfg.GeminiModel)
	if cfg.GeminiBaseURL != "" {
		llmCfg.BaseURL = cfg.GeminiBaseURL
	}
	if cfg.Debug {
		llmCfg.Logger = log
	}
	llm := gemini.NewAdapter(llmCfg)

	summaries := summarizer.New(llm, log)

	builder := contextbuilder.New(summaries, log, contextbuilder.Config{
		MinReviews: cfg.MinReviews,
		Budget:     cfg.ContextBudget,
	})

	orchestrator := debate.New(llm, log, debate.Config{
		GenerationRetries: cfg.GenerationRetries,
		ValidationRetries: cfg.ValidationRetries,
		CallTimeout:       cfg.CallTimeout,
		Temperature:       cfg.Temperature,
	})

	evaluator := advisor.New(data, builder, orchestrator, log, cfg.ReviewLimit)
	finder := discovery.New(llm, data, log)

	return &Container{
		LLM:       llm,
		Data:      data,
		Logger:    log,
		Evaluator: evaluator,
		Finder:    finder,
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}
