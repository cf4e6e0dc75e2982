package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DumpingDutyType distinguishes anti-dumping from countervailing measures.
type DumpingDutyType string

const (
	DutyTypeDumping        DumpingDutyType = "dumping"
	DutyTypeCountervailing DumpingDutyType = "countervailing"
)

// DumpingDuty represents an anti-dumping or countervailing measure against a
// tariff code and country, optionally scoped to one exporter.
//
// Exactly one of DutyRate (percentage) and DutyAmount (specific, per
// DutyUnit) is expected to be populated. The source data does not enforce
// this, so readers must tolerate rows that violate it.
type DumpingDuty struct {
	BaseModel
	HSCode        string           `gorm:"type:varchar(10);column:hs_code;not null;index:idx_dumping_duties_lookup" json:"hsCode"`
	CountryCode   string           `gorm:"type:varchar(3);column:country_code;not null;index:idx_dumping_duties_lookup" json:"countryCode"`
	ExporterName  *string          `gorm:"type:varchar(255);column:exporter_name" json:"exporterName,omitempty"`
	DutyType      DumpingDutyType  `gorm:"type:varchar(20);column:duty_type;not null" json:"dutyType"`
	DutyRate      *decimal.Decimal `gorm:"type:decimal(10,4);column:duty_rate" json:"dutyRate,omitempty"`     // ad valorem percentage
	DutyAmount    *decimal.Decimal `gorm:"type:decimal(14,4);column:duty_amount" json:"dutyAmount,omitempty"` // specific amount per DutyUnit
	DutyUnit      string           `gorm:"type:varchar(20);column:duty_unit" json:"dutyUnit,omitempty"`
	CaseNumber    string           `gorm:"type:varchar(50);column:case_number" json:"caseNumber"`
	IsActive      bool             `gorm:"column:is_active;not null;default:true" json:"isActive"`
	EffectiveDate time.Time        `gorm:"type:date;column:effective_date;not null" json:"effectiveDate"`
	ExpiryDate    *time.Time       `gorm:"type:date;column:expiry_date" json:"expiryDate,omitempty"`
}

func (d *DumpingDuty) TableName() string {
	return "dumping_duties"
}

// InEffect reports whether the measure applies as of the given date.
func (d *DumpingDuty) InEffect(asOf time.Time) bool {
	if !d.IsActive || d.EffectiveDate.After(asOf) {
		return false
	}
	return d.ExpiryDate == nil || d.ExpiryDate.After(asOf)
}

// HasSingleForm reports whether exactly one of the percentage and specific
// forms is populated.
func (d *DumpingDuty) HasSingleForm() bool {
	return (d.DutyRate != nil) != (d.DutyAmount != nil)
}
