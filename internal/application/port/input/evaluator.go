package input

import (
	"context"

	"business-advisor/internal/domain/entity"
)

// BusinessEvaluator is the single operation the core exposes: one business
// id in, one validated verdict out, or a tagged failure.
type BusinessEvaluator interface {
	Evaluate(ctx context.Context, businessID string) (*entity.Verdict, error)
}
