// Package advisor wires the evaluation pipeline: fetch business evidence,
// build the bounded context, run the debate, hand back the verdict.
package advisor

import (
	"context"
	"fmt"

	"business-advisor/internal/application/port/input"
	"business-advisor/internal/application/port/output"
	"business-advisor/internal/domain/entity"
	"business-advisor/internal/usecase/contextbuilder"
	"business-advisor/internal/usecase/debate"
)

const DefaultReviewLimit = 6

var _ input.BusinessEvaluator = (*UseCase)(nil)

type UseCase struct {
	data        output.BusinessDataPort
	builder     *contextbuilder.Builder
	debate      *debate.Orchestrator
	logger      output.LoggerPort
	reviewLimit int
}

func New(
	data output.BusinessDataPort,
	builder *contextbuilder.Builder,
	orchestrator *debate.Orchestrator,
	logger output.LoggerPort,
	reviewLimit int,
) *UseCase {
	if reviewLimit <= 0 {
		reviewLimit = DefaultReviewLimit
	}
	return &UseCase{
		data:        data,
		builder:     builder,
		debate:      orchestrator,
		logger:      logger,
		reviewLimit: reviewLimit,
	}
}

// Evaluate runs one business through the full pipeline. All state is
// scoped to the call; fatal errors from any stage propagate unchanged
// and no fallback verdict is ever fabricated.
func (uc *UseCase) Evaluate(ctx context.Context, businessID string) (*entity.Verdict, error) {
	log := uc.logger.WithField("business", businessID)
	log.Info("Evaluation started")

	metadata, err := uc.data.FetchBusinessMetadata(ctx, businessID)
	if err != nil {
		log.Error("Metadata fetch failed", "error", err)
		return nil, err
	}

	reviews, err := uc.data.FetchReviews(ctx, businessID, uc.reviewLimit)
	if err != nil {
		log.Error("Reviews fetch failed", "error", err)
		return nil, fmt.Errorf("fetch reviews: %w", err)
	}

	evctx, err := uc.builder.Build(ctx, *metadata, reviews)
	if err != nil {
		log.Error("Context build failed", "error", err)
		return nil, err
	}

	verdict, err := uc.debate.Run(ctx, evctx)
	if err != nil {
		log.Error("Debate failed", "error", err)
		return nil, err
	}

	log.Info("Evaluation complete")
	return verdict, nil
}
