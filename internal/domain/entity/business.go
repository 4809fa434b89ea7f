package entity

// PriceLevel is the 1-4 dollar-sign scale reported by the data source.
// PriceUnknown means the source did not report a price.
type PriceLevel int

const (
	PriceUnknown PriceLevel = 0
	PriceCheap   PriceLevel = 1
	PriceModest  PriceLevel = 2
	PricePricey  PriceLevel = 3
	PriceLuxury  PriceLevel = 4
)

func (p PriceLevel) String() string {
	switch p {
	case PriceCheap:
		return "$"
	case PriceModest:
		return "$$"
	case PricePricey:
		return "$$$"
	case PriceLuxury:
		return "$$$$"
	default:
		return "unspecified"
	}
}

// BusinessMetadata is immutable once fetched; one instance per pipeline run.
type BusinessMetadata struct {
	ID         string
	Name       string
	Rating     float64
	Price      PriceLevel
	Categories []string
	Address    string
}

type Review struct {
	Rating float64
	Text   string
}

// ReviewSet preserves the relevance order returned by the upstream source.
type ReviewSet []Review

// SearchHit is one business extracted from a natural-language search
// response. Only the discovery flow uses it; the evaluation pipeline
// works from BusinessMetadata.
type SearchHit struct {
	ID          string
	Name        string
	Address     string
	Rating      float64
	ReviewCount int
	Price       string
	Summary     string
	PhotoURL    string
}
