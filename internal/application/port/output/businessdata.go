package output

import (
	"context"

	"business-advisor/internal/domain/entity"
)

// BusinessDataPort is the upstream business data source. FetchReviews may
// return fewer reviews than asked for, including none at all.
type BusinessDataPort interface {
	FetchBusinessMetadata(ctx context.Context, businessID string) (*entity.BusinessMetadata, error)
	FetchReviews(ctx context.Context, businessID string, limit int) (entity.ReviewSet, error)
	SearchByQuery(ctx context.Context, query string) ([]entity.SearchHit, error)
}
