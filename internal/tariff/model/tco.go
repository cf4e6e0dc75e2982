package model

import "time"

// Tco represents a Tariff Concession Order: an administrative exemption from
// the general duty for goods with no local substitute.
type Tco struct {
	BaseModel
	TcoNumber     string     `gorm:"type:varchar(50);column:tco_number;not null;uniqueIndex" json:"tcoNumber"`
	HSCode        string     `gorm:"type:varchar(10);column:hs_code;not null;index" json:"hsCode"`
	Description   string     `gorm:"type:text;column:description" json:"description"`
	ApplicantName string     `gorm:"type:varchar(255);column:applicant_name" json:"applicantName"`
	EffectiveDate time.Time  `gorm:"type:date;column:effective_date;not null" json:"effectiveDate"`
	ExpiryDate    *time.Time `gorm:"type:date;column:expiry_date" json:"expiryDate,omitempty"`
	IsCurrent     bool       `gorm:"column:is_current;not null;default:true" json:"isCurrent"`
}

func (t *Tco) TableName() string {
	return "tcos"
}

// IsUnexpired reports whether the order is still within its validity window.
// IsCurrent must be false once the expiry date has passed; this check guards
// against stale rows where the flag was never flipped.
func (t *Tco) IsUnexpired(asOf time.Time) bool {
	return t.ExpiryDate == nil || !t.ExpiryDate.Before(asOf)
}
