package duty

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend_NothingToCompare(t *testing.T) {
	assert.Nil(t, Recommend(nil, nil))
}

func TestRecommend_GeneralOnly(t *testing.T) {
	rec := Recommend(decPtr("50"), nil)

	require.NotNil(t, rec)
	assert.Equal(t, RateSourceGeneral, rec.Source)
	assert.True(t, rec.Amount.Equal(dec("50")))
	assert.True(t, rec.Savings.IsZero())
}

func TestRecommend_FtaOnlyWhenGeneralUnknown(t *testing.T) {
	rec := Recommend(nil, []FtaAssessment{
		{FtaCode: "AUSFTA", Amount: dec("25")},
	})

	require.NotNil(t, rec)
	assert.Equal(t, RateSourceFta, rec.Source)
	assert.Equal(t, "AUSFTA", rec.FtaCode)
	// No baseline to compare against, so no savings claim
	assert.True(t, rec.Savings.IsZero())
}

func TestRecommend_FtaUndercutsGeneral(t *testing.T) {
	rec := Recommend(decPtr("50"), []FtaAssessment{
		{FtaCode: "KAFTA", Amount: dec("30")},
		{FtaCode: "AUSFTA", Amount: dec("20")},
	})

	require.NotNil(t, rec)
	assert.Equal(t, RateSourceFta, rec.Source)
	assert.Equal(t, "AUSFTA", rec.FtaCode)
	assert.True(t, rec.Amount.Equal(dec("20")))
	assert.True(t, rec.Savings.Equal(dec("30")))
}

func TestRecommend_TiePrefersGeneral(t *testing.T) {
	rec := Recommend(decPtr("50"), []FtaAssessment{
		{FtaCode: "AUSFTA", Amount: dec("50")},
	})

	require.NotNil(t, rec)
	assert.Equal(t, RateSourceGeneral, rec.Source)
	assert.Empty(t, rec.FtaCode)
}

func TestRecommend_FtaTiePrefersEarliestEffectiveDate(t *testing.T) {
	older := time.Date(2015, time.January, 15, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2018, time.December, 30, 0, 0, 0, 0, time.UTC)

	rec := Recommend(decPtr("50"), []FtaAssessment{
		{FtaCode: "CPTPP", Amount: dec("25"), EffectiveDate: newer},
		{FtaCode: "JAEPA", Amount: dec("25"), EffectiveDate: older},
	})

	require.NotNil(t, rec)
	assert.Equal(t, "JAEPA", rec.FtaCode)

	// Same result regardless of input order
	rec = Recommend(decPtr("50"), []FtaAssessment{
		{FtaCode: "JAEPA", Amount: dec("25"), EffectiveDate: older},
		{FtaCode: "CPTPP", Amount: dec("25"), EffectiveDate: newer},
	})
	require.NotNil(t, rec)
	assert.Equal(t, "JAEPA", rec.FtaCode)
}

func TestRecommend_ZeroGeneralNeverLosesToZeroFta(t *testing.T) {
	zero := decimal.Zero
	rec := Recommend(&zero, []FtaAssessment{
		{FtaCode: "AUSFTA", Amount: decimal.Zero},
	})

	require.NotNil(t, rec)
	assert.Equal(t, RateSourceGeneral, rec.Source)
	assert.True(t, rec.Amount.IsZero())
}
