package input

import (
	"context"

	"business-advisor/internal/domain/entity"
)

// DiscoverRequest carries a captured image plus the user's question and
// the where/when details used to phrase the search query.
type DiscoverRequest struct {
	ImageDataURL string
	Question     string
	Location     string
	Date         string
	Time         string
}

type DiscoverResult struct {
	Query string
	Hits  []entity.SearchHit
}

// BusinessFinder turns an image and a question into candidate businesses.
// It is a caller-side convenience in front of BusinessEvaluator, not part
// of the evaluation pipeline itself.
type BusinessFinder interface {
	Discover(ctx context.Context, req DiscoverRequest) (*DiscoverResult, error)
}
