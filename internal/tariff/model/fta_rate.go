package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StagingCategory is the descriptive phase-out bucket for FTA tariff
// elimination schedules. It is stored and displayed, never computed from.
type StagingCategory string

const (
	StagingCategoryA    StagingCategory = "A"
	StagingCategoryB    StagingCategory = "B"
	StagingCategoryC    StagingCategory = "C"
	StagingCategoryD    StagingCategory = "D"
	StagingCategoryE    StagingCategory = "E"
	StagingCategoryBase StagingCategory = "Base"
)

// FtaRate represents a preferential duty rate available under a free trade
// agreement for goods of qualifying origin.
type FtaRate struct {
	BaseModel
	HSCode              string           `gorm:"type:varchar(10);column:hs_code;not null;index:idx_fta_rates_lookup" json:"hsCode"`
	FtaCode             string           `gorm:"type:varchar(20);column:fta_code;not null;index" json:"ftaCode"`
	Agreement           *TradeAgreement  `gorm:"foreignKey:FtaCode;references:FtaCode" json:"agreement,omitempty"`
	CountryCode         string           `gorm:"type:varchar(3);column:country_code;not null;index:idx_fta_rates_lookup" json:"countryCode"`
	PreferentialRate    *decimal.Decimal `gorm:"type:decimal(10,4);column:preferential_rate" json:"preferentialRate"` // nil = free
	StagingCategory     StagingCategory  `gorm:"type:varchar(10);column:staging_category" json:"stagingCategory"`
	EffectiveDate       time.Time        `gorm:"type:date;column:effective_date;not null" json:"effectiveDate"`
	EliminationDate     *time.Time       `gorm:"type:date;column:elimination_date" json:"eliminationDate,omitempty"`
	QuotaQuantity       *decimal.Decimal `gorm:"type:decimal(14,4);column:quota_quantity" json:"quotaQuantity,omitempty"`
	QuotaUnit           string           `gorm:"type:varchar(20);column:quota_unit" json:"quotaUnit,omitempty"`
	RuleOfOrigin        string           `gorm:"type:text;column:rule_of_origin" json:"ruleOfOrigin,omitempty"`
	SafeguardApplicable bool             `gorm:"column:safeguard_applicable;not null;default:false" json:"safeguardApplicable"`
}

func (r *FtaRate) TableName() string {
	return "fta_rates"
}

// IsCurrentlyEffective reports whether the preferential rate can be claimed
// as of the given date: effective_date <= asOf < elimination_date (or no
// elimination date at all).
func (r *FtaRate) IsCurrentlyEffective(asOf time.Time) bool {
	if r.EffectiveDate.After(asOf) {
		return false
	}
	return r.EliminationDate == nil || r.EliminationDate.After(asOf)
}

// IsEliminated reports whether the tariff under this rate has been fully
// phased out. An eliminated rate's effective duty is zero.
func (r *FtaRate) IsEliminated(asOf time.Time) bool {
	return r.EliminationDate != nil && !r.EliminationDate.After(asOf)
}
