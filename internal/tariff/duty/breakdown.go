package duty

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/opencustoms/tariff/internal/tariff/model"
)

// RateSnapshot carries the rate records relevant to one assessment, fetched
// by the store. The engine only ever reads it.
type RateSnapshot struct {
	DutyRate      *model.DutyRate
	FtaRates      []model.FtaRate
	DumpingDuties []model.DumpingDuty
	Tco           *model.Tco
	GstProvisions []model.GstProvision
}

// RateSource identifies which rate a recommendation applies.
type RateSource string

const (
	RateSourceGeneral RateSource = "general"
	RateSourceFta     RateSource = "fta"
)

// GeneralAssessment is the general (MFN) duty component of a breakdown.
type GeneralAssessment struct {
	Basis    model.RateBasis  `json:"basis,omitempty"`
	Rate     *decimal.Decimal `json:"rate,omitempty"`
	RateText string           `json:"rateText,omitempty"`
	// Amount is nil when the rate is unknown or cannot be computed
	// automatically; zero means explicitly free.
	Amount                    *decimal.Decimal `json:"amount"`
	RateUnknown               bool             `json:"rateUnknown,omitempty"`
	RequiresManualCalculation bool             `json:"requiresManualCalculation,omitempty"`
	TcoApplied                bool             `json:"tcoApplied,omitempty"`
	TcoNumber                 string           `json:"tcoNumber,omitempty"`
	Reason                    string           `json:"reason,omitempty"`
}

// FtaAssessment is one preferential rate considered for the line item.
// Eliminated rows are surfaced with a zero amount, distinct from absent rows.
type FtaAssessment struct {
	FtaCode            string                `json:"ftaCode"`
	AgreementName      string                `json:"agreementName,omitempty"`
	Rate               *decimal.Decimal      `json:"rate,omitempty"`
	StagingCategory    model.StagingCategory `json:"stagingCategory,omitempty"`
	EffectiveDate      time.Time             `json:"effectiveDate"`
	EliminationDate    *time.Time            `json:"eliminationDate,omitempty"`
	CurrentlyEffective bool                  `json:"currentlyEffective"`
	Eliminated         bool                  `json:"eliminated"`
	Amount             decimal.Decimal       `json:"amount"`
}

// DumpingAssessment is one anti-dumping or countervailing component. These
// are additive and independent of the FTA/TCO logic.
type DumpingAssessment struct {
	DutyType                  model.DumpingDutyType `json:"dutyType"`
	CaseNumber                string                `json:"caseNumber"`
	ExporterName              string                `json:"exporterName,omitempty"`
	Rate                      *decimal.Decimal      `json:"rate,omitempty"`
	AmountPerUnit             *decimal.Decimal      `json:"amountPerUnit,omitempty"`
	Unit                      string                `json:"unit,omitempty"`
	Amount                    *decimal.Decimal      `json:"amount"`
	RequiresManualCalculation bool                  `json:"requiresManualCalculation,omitempty"`
}

// GstAssessment is the GST component, computed on customs value plus duty.
type GstAssessment struct {
	RatePercent   decimal.Decimal `json:"ratePercent"`
	TaxableBase   decimal.Decimal `json:"taxableBase"`
	Exempt        bool            `json:"exempt"`
	ExemptionType string          `json:"exemptionType,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
}

// Recommendation reports the lower of the general and best preferential
// amounts. The consumer decides which to apply; the engine never substitutes
// one for the other.
type Recommendation struct {
	Source  RateSource      `json:"source"`
	FtaCode string          `json:"ftaCode,omitempty"`
	Amount  decimal.Decimal `json:"amount"`
	Savings decimal.Decimal `json:"savings"`
}

// Breakdown is the full result of a duty calculation for one line item.
type Breakdown struct {
	HSCode       string           `json:"hsCode"`
	CountryCode  string           `json:"countryCode"`
	CustomsValue decimal.Decimal  `json:"customsValue"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
	AsOf         time.Time        `json:"asOf"`

	General        GeneralAssessment   `json:"general"`
	Fta            []FtaAssessment     `json:"fta"`
	Dumping        []DumpingAssessment `json:"dumping"`
	Gst            GstAssessment       `json:"gst"`
	Recommendation *Recommendation     `json:"recommendation,omitempty"`

	TotalDuty    decimal.Decimal `json:"totalDuty"`
	TotalPayable decimal.Decimal `json:"totalPayable"`

	RequiresManualCalculation bool `json:"requiresManualCalculation,omitempty"`
}
