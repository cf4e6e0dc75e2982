package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var asOf = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func datePtr(t time.Time) *time.Time { return &t }

func TestTariffCodeValidate(t *testing.T) {
	cases := []struct {
		name    string
		code    TariffCode
		wantErr bool
	}{
		{"valid leaf", TariffCode{HSCode: "0101210000", Level: 10, ParentCode: strPtr("010121")}, false},
		{"valid chapter without parent", TariffCode{HSCode: "01", Level: 2}, false},
		{"level mismatch", TariffCode{HSCode: "0101", Level: 6}, true},
		{"odd length", TariffCode{HSCode: "010", Level: 3}, true},
		{"non-digit", TariffCode{HSCode: "01A1", Level: 4}, true},
		{"parent not a prefix", TariffCode{HSCode: "0101", Level: 4, ParentCode: strPtr("02")}, true},
		{"parent not shorter", TariffCode{HSCode: "0101", Level: 4, ParentCode: strPtr("0101")}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.code.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFtaRateWindows(t *testing.T) {
	r := FtaRate{
		EffectiveDate:   asOf.AddDate(-2, 0, 0),
		EliminationDate: datePtr(asOf.AddDate(1, 0, 0)),
	}
	assert.True(t, r.IsCurrentlyEffective(asOf))
	assert.False(t, r.IsEliminated(asOf))

	// On the elimination date itself the rate counts as eliminated
	assert.False(t, r.IsCurrentlyEffective(*r.EliminationDate))
	assert.True(t, r.IsEliminated(*r.EliminationDate))
}

func TestAgreementIsInForce(t *testing.T) {
	active := TradeAgreement{Status: AgreementStatusActive, EntryForceDate: asOf.AddDate(-1, 0, 0)}
	assert.True(t, active.IsInForce(asOf))

	pending := TradeAgreement{Status: AgreementStatusActive, EntryForceDate: asOf.AddDate(0, 0, 1)}
	assert.False(t, pending.IsInForce(asOf))

	suspended := TradeAgreement{Status: AgreementStatusSuspended, EntryForceDate: asOf.AddDate(-1, 0, 0)}
	assert.False(t, suspended.IsInForce(asOf))
}

func TestDumpingDutyInEffect(t *testing.T) {
	d := DumpingDuty{IsActive: true, EffectiveDate: asOf.AddDate(-1, 0, 0)}
	assert.True(t, d.InEffect(asOf))

	d.ExpiryDate = datePtr(asOf)
	assert.False(t, d.InEffect(asOf))

	d.ExpiryDate = nil
	d.IsActive = false
	assert.False(t, d.InEffect(asOf))
}

func TestDumpingDutyHasSingleForm(t *testing.T) {
	assert.True(t, (&DumpingDuty{DutyRate: decPtr("14.2")}).HasSingleForm())
	assert.True(t, (&DumpingDuty{DutyAmount: decPtr("0.35")}).HasSingleForm())
	assert.False(t, (&DumpingDuty{DutyRate: decPtr("14.2"), DutyAmount: decPtr("0.35")}).HasSingleForm())
	assert.False(t, (&DumpingDuty{}).HasSingleForm())
}

func TestGstProvisionExempts(t *testing.T) {
	threshold := GstProvision{ValueThreshold: decPtr("1000.00"), IsActive: true}
	assert.True(t, threshold.Exempts(decimal.RequireFromString("999.99")))
	assert.False(t, threshold.Exempts(decimal.RequireFromString("1000.00")))

	unconditional := GstProvision{IsActive: true}
	assert.True(t, unconditional.Exempts(decimal.RequireFromString("5000")))

	inactive := GstProvision{ValueThreshold: decPtr("1000.00")}
	assert.False(t, inactive.Exempts(decimal.RequireFromString("1")))
}

func TestTcoIsUnexpired(t *testing.T) {
	open := Tco{EffectiveDate: asOf.AddDate(-1, 0, 0)}
	assert.True(t, open.IsUnexpired(asOf))

	// An order expiring today is still claimable today
	expiringToday := Tco{ExpiryDate: datePtr(asOf)}
	assert.True(t, expiringToday.IsUnexpired(asOf))

	expired := Tco{ExpiryDate: datePtr(asOf.AddDate(0, 0, -1))}
	assert.False(t, expired.IsUnexpired(asOf))
}
