package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Quote bundles one finished computation for presentation and export:
// the inputs it was built from, the resulting breakdown and meta, plus
// an id and timestamp so an exported sheet can be referenced later.
type Quote struct {
	ID          string        `json:"id"`
	GeneratedAt time.Time     `json:"generated_at"`
	Inputs      PricingInputs `json:"inputs"`
	Breakdown   Breakdown     `json:"breakdown"`
	Meta        Meta          `json:"meta"`
}

// NewQuote stamps a computation result with a fresh id.
func NewQuote(inputs PricingInputs, breakdown Breakdown, meta Meta) Quote {
	return Quote{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now(),
		Inputs:      inputs,
		Breakdown:   breakdown,
		Meta:        meta,
	}
}

// Note returns the copy/paste one-liner offered after each computation.
func (q Quote) Note() string {
	return fmt.Sprintf("Recommended Price: € %.2f — Filament %.1f g, Time %.1f h",
		q.Breakdown.RecommendedPrice(), q.Meta.FilamentTotalG, q.Inputs.PrintTimeH)
}
