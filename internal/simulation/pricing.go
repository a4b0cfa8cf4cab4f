package simulation

import "time"

// Terms are the month-dependent knobs of the simulation: the growth
// range the new-user cohort is drawn from and the recurring fee every
// existing user pays.
type Terms struct {
	MinGrowthPct float64 // lower bound of the monthly growth draw, in percent
	MaxGrowthPct float64 // upper bound of the monthly growth draw, in percent
	Amount       float64 // recurring fee charged per user per month
}

// PricingPolicy resolves the terms in effect for a simulated month.
// The two historical seeding variants are expressed as two policies
// over one engine instead of two codepaths.
type PricingPolicy interface {
	TermsFor(month time.Time) Terms
}

// FlatPricing applies the same terms to every month.
type FlatPricing Terms

// TermsFor implements PricingPolicy.
func (p FlatPricing) TermsFor(time.Time) Terms { return Terms(p) }

// TieredPricing models the era-based variant: growth slows and the fee
// rises as the business matures.
type TieredPricing struct{}

// TermsFor implements PricingPolicy.
func (TieredPricing) TermsFor(month time.Time) Terms {
	switch year := month.Year(); {
	case year < 2005:
		return Terms{MinGrowthPct: 3, MaxGrowthPct: 5, Amount: 9.99}
	case year < 2010:
		return Terms{MinGrowthPct: 5, MaxGrowthPct: 10, Amount: 10.99}
	default:
		return Terms{MinGrowthPct: 1, MaxGrowthPct: 3, Amount: 12.99}
	}
}
