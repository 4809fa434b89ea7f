package prompts

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/prompts"

	"business-advisor/internal/domain/entity"
)

// InstructionForRole returns the fixed system instruction for an advocate
// or judge pass. The instructions are constants; roles never share text.
func InstructionForRole(role entity.AgentRole) string {
	switch role {
	case entity.RoleOptimist:
		return OptimistInstruction
	case entity.RoleCritic:
		return CriticInstruction
	default:
		return JudgeDirective
	}
}

// RenderContextHeader renders the metadata block that always opens an
// evidence brief: name, rating, price, categories, address, in that order.
func RenderContextHeader(md entity.BusinessMetadata) (string, error) {
	tmpl := prompts.NewPromptTemplate(contextHeaderTemplate, []string{"name", "rating", "price", "categories", "address"})

	categories := strings.Join(md.Categories, ", ")
	if categories == "" {
		categories = "unspecified"
	}

	rendered, err := tmpl.Format(map[string]any{
		"name":       md.Name,
		"rating":     fmt.Sprintf("%.1f", md.Rating),
		"price":      md.Price.String(),
		"categories": categories,
		"address":    md.Address,
	})
	if err != nil {
		return "", fmt.Errorf("render context header: %w", err)
	}
	return rendered, nil
}

// RenderSearchQueryInstruction fills the image-to-query instruction with
// the where/when details of the request.
func RenderSearchQueryInstruction(location, date, timeOfDay string) (string, error) {
	tmpl := prompts.NewPromptTemplate(searchQueryTemplate, []string{"location", "date", "time"})

	rendered, err := tmpl.Format(map[string]any{
		"location": location,
		"date":     date,
		"time":     timeOfDay,
	})
	if err != nil {
		return "", fmt.Errorf("render search query instruction: %w", err)
	}
	return rendered, nil
}
