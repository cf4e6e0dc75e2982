package model

import (
	"github.com/shopspring/decimal"
)

// RateBasis describes how a duty rate is expressed.
type RateBasis string

const (
	RateBasisAdValorem RateBasis = "ad_valorem" // percentage of customs value
	RateBasisSpecific  RateBasis = "specific"   // fixed amount per unit quantity
	RateBasisCompound  RateBasis = "compound"   // mixed, free-text only
)

// DutyRate represents the general (MFN) duty rate for one tariff code.
//
// A nil GeneralRate means the rate is "Free". A missing row means the system
// has no rate data at all, which callers must keep distinct from free.
type DutyRate struct {
	BaseModel
	HSCode      string           `gorm:"type:varchar(10);column:hs_code;not null;index" json:"hsCode"`
	GeneralRate *decimal.Decimal `gorm:"type:decimal(10,4);column:general_rate" json:"generalRate"`
	UnitType    RateBasis        `gorm:"type:varchar(20);column:unit_type;not null" json:"unitType"`
	RateText    string           `gorm:"type:text;column:rate_text" json:"rateText"` // display string, e.g. "5%" or "$1.22/kg plus 5%"
}

func (d *DutyRate) TableName() string {
	return "duty_rates"
}
