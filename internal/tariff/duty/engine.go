package duty

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/opencustoms/tariff/internal/tariff/model"
)

// Calculate computes the duty breakdown for one line item from a rate
// snapshot. It performs no I/O and is deterministic for a fixed asOf date.
//
// The steps follow the assessment order used by the portal: general rate,
// TCO override, preferential rates, best-rate comparison, dumping measures,
// then GST on the duty-inclusive value.
func Calculate(in Input, snap RateSnapshot, gstRatePercent decimal.Decimal, asOf time.Time) (*Breakdown, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	b := &Breakdown{
		HSCode:       in.HSCode,
		CountryCode:  in.CountryCode,
		CustomsValue: in.CustomsValue,
		Quantity:     in.Quantity,
		AsOf:         asOf,
		Fta:          []FtaAssessment{},
		Dumping:      []DumpingAssessment{},
	}

	general, err := assessGeneral(in, snap.DutyRate)
	if err != nil {
		return nil, err
	}

	// A current TCO zeroes the general duty outright, ahead of any
	// general-vs-preferential comparison.
	if tco := snap.Tco; tco != nil && tco.IsCurrent && tco.IsUnexpired(asOf) && !tco.EffectiveDate.After(asOf) {
		zero := decimal.Zero
		general.Amount = &zero
		general.TcoApplied = true
		general.TcoNumber = tco.TcoNumber
		general.Reason = "TCO exemption"
		general.RequiresManualCalculation = false
	}
	b.General = general

	for i := range snap.FtaRates {
		if fa, ok := assessFtaRate(&snap.FtaRates[i], in.CustomsValue, asOf); ok {
			b.Fta = append(b.Fta, fa)
		}
	}

	b.Recommendation = Recommend(general.Amount, b.Fta)

	dumpingTotal := decimal.Zero
	for i := range snap.DumpingDuties {
		da, err := assessDumpingDuty(&snap.DumpingDuties[i], in, asOf)
		if err != nil {
			return nil, err
		}
		if da == nil {
			continue
		}
		b.Dumping = append(b.Dumping, *da)
		if da.Amount != nil {
			dumpingTotal = dumpingTotal.Add(*da.Amount)
		}
		if da.RequiresManualCalculation {
			b.RequiresManualCalculation = true
		}
	}

	// Duty applied so far: the recommended rate if one exists, otherwise the
	// general amount when known, plus all dumping components.
	applied := decimal.Zero
	if b.Recommendation != nil {
		applied = b.Recommendation.Amount
	} else if general.Amount != nil {
		applied = *general.Amount
	}
	dutySoFar := applied.Add(dumpingTotal)

	b.Gst = assessGst(in.CustomsValue.Add(dutySoFar), snap.GstProvisions, gstRatePercent)

	b.TotalDuty = dutySoFar.Add(b.Gst.Amount)
	b.TotalPayable = in.CustomsValue.Add(b.TotalDuty)

	if general.RequiresManualCalculation {
		b.RequiresManualCalculation = true
	}

	return b, nil
}

func assessGeneral(in Input, rate *model.DutyRate) (GeneralAssessment, error) {
	if rate == nil {
		// No row at all: the system has no rate data, which is not the same
		// as an explicit "Free" rate.
		return GeneralAssessment{RateUnknown: true}, nil
	}

	g := GeneralAssessment{
		Basis:    rate.UnitType,
		Rate:     rate.GeneralRate,
		RateText: rate.RateText,
	}

	switch rate.UnitType {
	case model.RateBasisAdValorem:
		amount := decimal.Zero
		if rate.GeneralRate != nil {
			amount = adValorem(in.CustomsValue, *rate.GeneralRate)
		}
		g.Amount = &amount
	case model.RateBasisSpecific:
		if rate.GeneralRate == nil {
			amount := decimal.Zero
			g.Amount = &amount
			break
		}
		if in.Quantity == nil {
			return GeneralAssessment{}, ErrMissingQuantity()
		}
		amount := rate.GeneralRate.Mul(*in.Quantity)
		g.Amount = &amount
	case model.RateBasisCompound:
		// Compound rates only carry free text; no single numeric amount can
		// be derived, so surface the text as an advisory.
		g.RequiresManualCalculation = true
	default:
		g.RequiresManualCalculation = true
	}

	return g, nil
}

// assessFtaRate evaluates one preferential rate row. Rows not yet effective
// or under an agreement that is not in force are dropped entirely. Eliminated
// rows stay in with a zero amount so callers can tell "phased out" apart from
// "no preferential rate exists".
func assessFtaRate(r *model.FtaRate, customsValue decimal.Decimal, asOf time.Time) (FtaAssessment, bool) {
	if r.EffectiveDate.After(asOf) {
		return FtaAssessment{}, false
	}
	if r.Agreement != nil && !r.Agreement.IsInForce(asOf) {
		return FtaAssessment{}, false
	}

	fa := FtaAssessment{
		FtaCode:         r.FtaCode,
		Rate:            r.PreferentialRate,
		StagingCategory: r.StagingCategory,
		EffectiveDate:   r.EffectiveDate,
		EliminationDate: r.EliminationDate,
	}
	if r.Agreement != nil {
		fa.AgreementName = r.Agreement.FullName
	}

	if r.IsEliminated(asOf) {
		fa.Eliminated = true
		fa.Amount = decimal.Zero
		return fa, true
	}

	fa.CurrentlyEffective = true
	if r.PreferentialRate != nil {
		fa.Amount = adValorem(customsValue, *r.PreferentialRate)
	}
	return fa, true
}

func assessDumpingDuty(d *model.DumpingDuty, in Input, asOf time.Time) (*DumpingAssessment, error) {
	if !d.InEffect(asOf) {
		return nil, nil
	}

	da := &DumpingAssessment{
		DutyType:      d.DutyType,
		CaseNumber:    d.CaseNumber,
		Rate:          d.DutyRate,
		AmountPerUnit: d.DutyAmount,
		Unit:          d.DutyUnit,
	}
	if d.ExporterName != nil {
		da.ExporterName = *d.ExporterName
	}

	// Percentage and specific forms are meant to be mutually exclusive; when
	// a row carries both, the percentage wins.
	switch {
	case d.DutyRate != nil:
		amount := adValorem(in.CustomsValue, *d.DutyRate)
		da.Amount = &amount
	case d.DutyAmount != nil:
		if in.Quantity == nil {
			return nil, ErrMissingQuantity()
		}
		amount := d.DutyAmount.Mul(*in.Quantity)
		da.Amount = &amount
	default:
		da.RequiresManualCalculation = true
	}

	return da, nil
}

func assessGst(taxableBase decimal.Decimal, provisions []model.GstProvision, ratePercent decimal.Decimal) GstAssessment {
	gst := GstAssessment{
		RatePercent: ratePercent,
		TaxableBase: taxableBase,
		Amount:      decimal.Zero,
	}
	for i := range provisions {
		if provisions[i].Exempts(taxableBase) {
			gst.Exempt = true
			gst.ExemptionType = provisions[i].ExemptionType
			return gst
		}
	}
	gst.Amount = adValorem(taxableBase, ratePercent)
	return gst
}

// adValorem computes value * ratePercent / 100 exactly. Shift(-2) is a pure
// exponent move, so no precision is lost in the division.
func adValorem(value, ratePercent decimal.Decimal) decimal.Decimal {
	return value.Mul(ratePercent).Shift(-2)
}
