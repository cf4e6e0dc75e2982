package duty

import "github.com/shopspring/decimal"

// Recommend compares the general amount (post-TCO) against the best
// preferential amount and reports the lower one, with the savings available.
//
// Tie-breaks are deterministic: an exact tie between general and FTA prefers
// general (no origin-certificate burden); a tie between FTAs prefers the one
// with the earliest effective date.
func Recommend(generalAmount *decimal.Decimal, assessments []FtaAssessment) *Recommendation {
	best := bestFta(assessments)

	switch {
	case generalAmount == nil && best == nil:
		return nil
	case best == nil:
		return &Recommendation{
			Source:  RateSourceGeneral,
			Amount:  *generalAmount,
			Savings: decimal.Zero,
		}
	case generalAmount == nil:
		// General rate unknown or not automatable: surface the preferential
		// amount with no savings claim, since there is nothing to compare to.
		return &Recommendation{
			Source:  RateSourceFta,
			FtaCode: best.FtaCode,
			Amount:  best.Amount,
			Savings: decimal.Zero,
		}
	case best.Amount.LessThan(*generalAmount):
		return &Recommendation{
			Source:  RateSourceFta,
			FtaCode: best.FtaCode,
			Amount:  best.Amount,
			Savings: generalAmount.Sub(best.Amount),
		}
	default:
		return &Recommendation{
			Source:  RateSourceGeneral,
			Amount:  *generalAmount,
			Savings: decimal.Zero,
		}
	}
}

func bestFta(assessments []FtaAssessment) *FtaAssessment {
	var best *FtaAssessment
	for i := range assessments {
		a := &assessments[i]
		if best == nil {
			best = a
			continue
		}
		switch {
		case a.Amount.LessThan(best.Amount):
			best = a
		case a.Amount.Equal(best.Amount) && a.EffectiveDate.Before(best.EffectiveDate):
			best = a
		}
	}
	return best
}
