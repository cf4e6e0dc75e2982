package model

import (
	"github.com/shopspring/decimal"
)

// GstProvision represents a GST exemption provision. A nil HSCode marks a
// general provision applying across all tariff codes. The GST rate itself is
// configuration; this table only ever grants exemptions.
type GstProvision struct {
	BaseModel
	HSCode         *string          `gorm:"type:varchar(10);column:hs_code;index" json:"hsCode,omitempty"`
	ExemptionType  string           `gorm:"type:varchar(100);column:exemption_type;not null" json:"exemptionType"`
	ValueThreshold *decimal.Decimal `gorm:"type:decimal(14,2);column:value_threshold" json:"valueThreshold,omitempty"`
	IsActive       bool             `gorm:"column:is_active;not null;default:true" json:"isActive"`
}

func (p *GstProvision) TableName() string {
	return "gst_provisions"
}

// Exempts reports whether the provision exempts a consignment whose taxable
// base (customs value plus duty so far) is the given amount. A provision
// without a threshold exempts unconditionally.
func (p *GstProvision) Exempts(taxableBase decimal.Decimal) bool {
	if !p.IsActive {
		return false
	}
	if p.ValueThreshold == nil {
		return true
	}
	return taxableBase.LessThan(*p.ValueThreshold)
}
