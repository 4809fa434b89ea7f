// Package summarizer synthesizes a typical-experience summary for a
// business when real reviews are unusable, via the generation backend.
package summarizer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"business-advisor/internal/application/port/output"
	"business-advisor/internal/domain/entity"
	"business-advisor/internal/infrastructure/prompts"
)

var _ output.SummarizerPort = (*LLMSummarizer)(nil)

type LLMSummarizer struct {
	llm    output.LLMPort
	logger output.LoggerPort
}

func New(llm output.LLMPort, logger output.LoggerPort) *LLMSummarizer {
	return &LLMSummarizer{
		llm:    llm,
		logger: logger,
	}
}

// SummarizeTypicalExperience asks the model for exactly
// entity.SummaryBullets positives and negatives. A malformed or
// wrongly-sized answer is reported as *entity.SummaryUnavailableError;
// the summary is never padded or trimmed into shape.
func (s *LLMSummarizer) SummarizeTypicalExperience(ctx context.Context, md entity.BusinessMetadata) ([]string, []string, error) {
	header, err := prompts.RenderContextHeader(md)
	if err != nil {
		return nil, nil, err
	}

	resp, err := s.llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleSystem, Content: prompts.SummaryInstruction},
			{Role: entity.RoleUser, Content: header},
		},
	})
	if err != nil {
		return nil, nil, &entity.SummaryUnavailableError{Reason: "generation failed", Err: err}
	}

	positives, negatives, err := parseSummary(resp.Content)
	if err != nil {
		s.logger.Warn("Summarizer returned malformed output", "business", md.ID, "error", err)
		return nil, nil, err
	}

	return positives, negatives, nil
}

type summaryPayload struct {
	Positives []string `json:"positives"`
	Negatives []string `json:"negatives"`
}

// parseSummary pulls the JSON object out of the response, tolerating
// prose around it, and checks the bullet counts strictly.
func parseSummary(response string) ([]string, []string, error) {
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end < start {
		return nil, nil, &entity.SummaryUnavailableError{Reason: "no JSON object in response"}
	}

	var payload summaryPayload
	if err := json.Unmarshal([]byte(response[start:end+1]), &payload); err != nil {
		return nil, nil, &entity.SummaryUnavailableError{Reason: "malformed JSON", Err: err}
	}

	if len(payload.Positives) != entity.SummaryBullets || len(payload.Negatives) != entity.SummaryBullets {
		return nil, nil, &entity.SummaryUnavailableError{
			Reason: fmt.Sprintf("expected %d/%d bullets, got %d/%d",
				entity.SummaryBullets, entity.SummaryBullets,
				len(payload.Positives), len(payload.Negatives)),
		}
	}

	return payload.Positives, payload.Negatives, nil
}
