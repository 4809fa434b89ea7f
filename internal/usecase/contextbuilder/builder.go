package contextbuilder

import (
	"context"
	"fmt"
	"strings"

	"business-advisor/internal/application/port/output"
	"business-advisor/internal/domain/entity"
	"business-advisor/internal/infrastructure/prompts"
)

const (
	DefaultMinReviews = 6
	DefaultBudget     = 4000
)

// Topical keywords used to pick the most representative reviews: food
// quality, service, cleanliness and atmosphere.
var topicKeywords = []string{
	"food", "taste", "delicious", "fresh", "quality", "dish", "menu",
	"service", "staff", "waiter", "server", "friendly", "rude", "wait",
	"clean", "dirty", "hygiene", "spotless",
	"atmosphere", "ambiance", "ambience", "vibe", "cozy", "noisy", "loud",
}

type Config struct {
	// MinReviews is the threshold below which real reviews are abandoned
	// in favor of a synthetic summary.
	MinReviews int
	// Budget caps the rendered context length in characters.
	Budget int
}

func (c Config) withDefaults() Config {
	if c.MinReviews <= 0 {
		c.MinReviews = DefaultMinReviews
	}
	if c.Budget <= 0 {
		c.Budget = DefaultBudget
	}
	return c
}

type Builder struct {
	summarizer output.SummarizerPort
	logger     output.LoggerPort
	cfg        Config
}

func New(summarizer output.SummarizerPort, logger output.LoggerPort, cfg Config) *Builder {
	return &Builder{
		summarizer: summarizer,
		logger:     logger,
		cfg:        cfg.withDefaults(),
	}
}

// Build selects the evidence source for this run and renders the bounded
// evidence brief the agents will reason over. The selection is made once:
// enough substantive reviews means the real ones are used, anything less
// falls back to a synthetic summary, and a summarizer failure is fatal.
func (b *Builder) Build(ctx context.Context, md entity.BusinessMetadata, reviews entity.ReviewSet) (entity.Context, error) {
	evidence, err := b.selectEvidence(ctx, md, reviews)
	if err != nil {
		return "", err
	}

	b.logger.Debug("Evidence source selected",
		"business", md.ID,
		"kind", evidence.Kind().String(),
		"reviews", len(reviews),
	)

	header, err := prompts.RenderContextHeader(md)
	if err != nil {
		return "", fmt.Errorf("render metadata header: %w", err)
	}

	rendered := b.render(header, evidence)
	if len(rendered) > b.cfg.Budget {
		// render already trims to whole evidence units; this only fires
		// when the metadata header alone blows the budget
		rendered = rendered[:b.cfg.Budget]
	}
	return entity.Context(rendered), nil
}

func (b *Builder) selectEvidence(ctx context.Context, md entity.BusinessMetadata, reviews entity.ReviewSet) (entity.EvidenceSource, error) {
	if len(reviews) >= b.cfg.MinReviews && hasSubstantiveText(reviews) {
		return entity.ReviewEvidence(reviews), nil
	}

	positives, negatives, err := b.summarizer.SummarizeTypicalExperience(ctx, md)
	if err != nil {
		return entity.EvidenceSource{}, &entity.InsufficientEvidenceError{
			BusinessID: md.ID,
			Reason:     "too few usable reviews and no synthetic summary",
			Err:        err,
		}
	}

	evidence, err := entity.SyntheticEvidence(positives, negatives)
	if err != nil {
		return entity.EvidenceSource{}, &entity.InsufficientEvidenceError{
			BusinessID: md.ID,
			Reason:     "summarizer returned a malformed summary",
			Err:        err,
		}
	}
	return evidence, nil
}

func hasSubstantiveText(reviews entity.ReviewSet) bool {
	for _, r := range reviews {
		if strings.TrimSpace(r.Text) != "" {
			return true
		}
	}
	return false
}

// render concatenates the metadata header and the evidence body, dropping
// whole evidence units from the tail when the budget would overflow. The
// header is never cut here.
func (b *Builder) render(header string, evidence entity.EvidenceSource) string {
	var units []string
	switch evidence.Kind() {
	case entity.EvidenceReviews:
		units = append(units, "What visitors report:")
		for _, r := range b.representativeSubset(evidence.Reviews()) {
			units = append(units, fmt.Sprintf("- [%.1f of 5] %s", r.Rating, strings.TrimSpace(r.Text)))
		}
	case entity.EvidenceSynthetic:
		positives, negatives := evidence.Summary()
		units = append(units, "What a typical visit is like:")
		units = append(units, "Usual strengths:")
		for _, p := range positives {
			units = append(units, "- "+p)
		}
		units = append(units, "Usual complaints:")
		for _, n := range negatives {
			units = append(units, "- "+n)
		}
	}

	var sb strings.Builder
	sb.WriteString(strings.TrimRight(header, "\n"))
	sb.WriteString("\n")

	for _, unit := range units {
		if sb.Len()+1+len(unit) > b.cfg.Budget {
			break
		}
		sb.WriteString("\n")
		sb.WriteString(unit)
	}
	return sb.String()
}

// representativeSubset keeps the reviews that touch the topical keywords,
// preserving input order, capped at MinReviews entries. When nothing
// matches it falls back to the first MinReviews by input order.
func (b *Builder) representativeSubset(reviews entity.ReviewSet) entity.ReviewSet {
	limit := b.cfg.MinReviews

	var matched entity.ReviewSet
	for _, r := range reviews {
		if mentionsTopic(r.Text) {
			matched = append(matched, r)
			if len(matched) == limit {
				break
			}
		}
	}
	if len(matched) > 0 {
		return matched
	}

	if len(reviews) > limit {
		return reviews[:limit]
	}
	return reviews
}

func mentionsTopic(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range topicKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
