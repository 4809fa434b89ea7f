// Package discovery turns a captured image plus a question into candidate
// businesses by asking the generation model for a search query and feeding
// it to the natural-language search endpoint.
package discovery

import (
	"context"
	"fmt"
	"strings"

	"business-advisor/internal/application/port/input"
	"business-advisor/internal/application/port/output"
	"business-advisor/internal/domain/entity"
	"business-advisor/internal/infrastructure/prompts"
	"business-advisor/internal/infrastructure/textclean"
)

// Query length cap mirrors the search endpoint's tolerance; the cut lands
// on a sentence boundary when one exists.
const maxQueryLen = 1000

var _ input.BusinessFinder = (*UseCase)(nil)

type UseCase struct {
	llm    output.LLMPort
	data   output.BusinessDataPort
	logger output.LoggerPort
}

func New(llm output.LLMPort, data output.BusinessDataPort, logger output.LoggerPort) *UseCase {
	return &UseCase{
		llm:    llm,
		data:   data,
		logger: logger,
	}
}

func (uc *UseCase) Discover(ctx context.Context, req input.DiscoverRequest) (*input.DiscoverResult, error) {
	instruction, err := prompts.RenderSearchQueryInstruction(req.Location, req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	resp, err := uc.llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleSystem, Content: instruction},
			{
				Role:         entity.RoleUser,
				Content:      "User question: " + req.Question,
				ImageDataURL: req.ImageDataURL,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("query generation failed: %w", err)
	}

	query := textclean.TruncateToSentence(resp.Content, maxQueryLen)
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query generation returned empty text")
	}

	uc.logger.Info("Search query generated", "queryLen", len(query))

	hits, err := uc.data.SearchByQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	return &input.DiscoverResult{Query: query, Hits: hits}, nil
}
