package model

import "time"

// AgreementStatus represents the lifecycle state of a trade agreement.
type AgreementStatus string

const (
	AgreementStatusActive     AgreementStatus = "active"
	AgreementStatusSuspended  AgreementStatus = "suspended"
	AgreementStatusTerminated AgreementStatus = "terminated"
)

// TradeAgreement represents a free trade agreement under which preferential
// rates may be claimed.
type TradeAgreement struct {
	BaseModel
	FtaCode        string          `gorm:"type:varchar(20);column:fta_code;not null;uniqueIndex" json:"ftaCode"`
	FullName       string          `gorm:"type:varchar(255);column:full_name;not null" json:"fullName"`
	EntryForceDate time.Time       `gorm:"type:date;column:entry_force_date;not null" json:"entryForceDate"`
	Status         AgreementStatus `gorm:"type:varchar(20);column:status;not null" json:"status"`
}

func (a *TradeAgreement) TableName() string {
	return "trade_agreements"
}

// IsInForce reports whether the agreement can confer preferential rates as of
// the given date.
func (a *TradeAgreement) IsInForce(asOf time.Time) bool {
	return a.Status == AgreementStatusActive && !a.EntryForceDate.After(asOf)
}
