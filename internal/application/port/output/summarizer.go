package output

import (
	"context"

	"business-advisor/internal/domain/entity"
)

// SummarizerPort synthesizes what a typical visit to the business looks
// like when real reviews are not usable. It must return exactly
// entity.SummaryBullets positives and negatives or fail with
// *entity.SummaryUnavailableError.
type SummarizerPort interface {
	SummarizeTypicalExperience(ctx context.Context, metadata entity.BusinessMetadata) (positives, negatives []string, err error)
}
