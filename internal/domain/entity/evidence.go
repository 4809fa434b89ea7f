package entity

import "fmt"

// SummaryBullets is the number of positive and negative bullet points a
// synthetic summary must carry. Anything else is rejected outright.
const SummaryBullets = 3

type EvidenceKind int

const (
	EvidenceReviews EvidenceKind = iota + 1
	EvidenceSynthetic
)

func (k EvidenceKind) String() string {
	switch k {
	case EvidenceReviews:
		return "reviews"
	case EvidenceSynthetic:
		return "synthetic"
	default:
		return "unknown"
	}
}

// EvidenceSource is a closed two-case variant: either a set of real user
// reviews or a synthesized summary standing in for them. The active case
// is decided once per run and never re-evaluated.
type EvidenceSource struct {
	kind      EvidenceKind
	reviews   ReviewSet
	positives []string
	negatives []string
}

func ReviewEvidence(reviews ReviewSet) EvidenceSource {
	return EvidenceSource{kind: EvidenceReviews, reviews: reviews}
}

// SyntheticEvidence rejects anything but exactly SummaryBullets positives
// and negatives; padding or trimming a malformed summary is not allowed.
func SyntheticEvidence(positives, negatives []string) (EvidenceSource, error) {
	if len(positives) != SummaryBullets || len(negatives) != SummaryBullets {
		return EvidenceSource{}, fmt.Errorf("synthetic summary must have %d positives and %d negatives, got %d/%d",
			SummaryBullets, SummaryBullets, len(positives), len(negatives))
	}
	return EvidenceSource{kind: EvidenceSynthetic, positives: positives, negatives: negatives}, nil
}

func (e EvidenceSource) Kind() EvidenceKind {
	return e.kind
}

func (e EvidenceSource) Reviews() ReviewSet {
	return e.reviews
}

func (e EvidenceSource) Summary() (positives, negatives []string) {
	return e.positives, e.negatives
}
