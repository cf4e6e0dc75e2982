package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/opencustoms/tariff/internal/tariff/model"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}

// Sample tariff hierarchy: live horses (0101) and passenger vehicles (8703),
// enough depth to exercise every lookup path.
func sampleTariffCodes() []model.TariffCode {
	return []model.TariffCode{
		{HSCode: "01", Description: "Live animals", Level: 2, IsActive: true},
		{HSCode: "0101", Description: "Live horses, asses, mules and hinnies", Level: 4, ParentCode: strPtr("01"), IsActive: true},
		{HSCode: "010121", Description: "Horses; pure-bred breeding animals", Level: 6, ParentCode: strPtr("0101"), IsActive: true},
		{HSCode: "0101210000", Description: "Pure-bred breeding horses", Level: 10, ParentCode: strPtr("010121"), IsActive: true},
		{HSCode: "010129", Description: "Horses; other than pure-bred breeding animals", Level: 6, ParentCode: strPtr("0101"), IsActive: true},
		{HSCode: "0101290000", Description: "Other live horses", Level: 10, ParentCode: strPtr("010129"), IsActive: true},
		{HSCode: "22", Description: "Beverages, spirits and vinegar", Level: 2, IsActive: true},
		{HSCode: "2204", Description: "Wine of fresh grapes", Level: 4, ParentCode: strPtr("22"), IsActive: true},
		{HSCode: "220421", Description: "Wine; in containers holding 2 litres or less", Level: 6, ParentCode: strPtr("2204"), IsActive: true},
		{HSCode: "2204210000", Description: "Bottled wine of fresh grapes", Level: 10, ParentCode: strPtr("220421"), IsActive: true},
		{HSCode: "87", Description: "Vehicles other than railway or tramway rolling stock", Level: 2, IsActive: true},
		{HSCode: "8703", Description: "Motor cars for the transport of persons", Level: 4, ParentCode: strPtr("87"), IsActive: true},
		{HSCode: "870323", Description: "Vehicles with spark-ignition engine, 1500-3000cc", Level: 6, ParentCode: strPtr("8703"), IsActive: true},
		{HSCode: "8703230000", Description: "Passenger motor vehicles, 1500-3000cc", Level: 10, ParentCode: strPtr("870323"), IsActive: true},
		{HSCode: "73", Description: "Articles of iron or steel", Level: 2, IsActive: true},
		{HSCode: "7308", Description: "Structures and parts of structures, of iron or steel", Level: 4, ParentCode: strPtr("73"), IsActive: true},
		{HSCode: "730890", Description: "Structures of iron or steel; other", Level: 6, ParentCode: strPtr("7308"), IsActive: true},
		{HSCode: "7308900000", Description: "Other structures of iron or steel", Level: 10, ParentCode: strPtr("730890"), IsActive: true},
	}
}

func sampleDutyRates() []model.DutyRate {
	return []model.DutyRate{
		{HSCode: "0101210000", GeneralRate: decPtr("5.00"), UnitType: model.RateBasisAdValorem, RateText: "5%"},
		{HSCode: "0101290000", GeneralRate: decPtr("0"), UnitType: model.RateBasisAdValorem, RateText: "Free"},
		{HSCode: "2204210000", GeneralRate: decPtr("1.22"), UnitType: model.RateBasisSpecific, RateText: "$1.22/L"},
		{HSCode: "8703230000", GeneralRate: decPtr("5.00"), UnitType: model.RateBasisCompound, RateText: "5% plus $12,000 each over luxury threshold"},
		{HSCode: "7308900000", GeneralRate: decPtr("4.00"), UnitType: model.RateBasisAdValorem, RateText: "4%"},
	}
}

func sampleAgreements() []model.TradeAgreement {
	return []model.TradeAgreement{
		{FtaCode: "AUSFTA", FullName: "Australia-United States Free Trade Agreement", EntryForceDate: date(2005, time.January, 1), Status: model.AgreementStatusActive},
		{FtaCode: "ChAFTA", FullName: "China-Australia Free Trade Agreement", EntryForceDate: date(2015, time.December, 20), Status: model.AgreementStatusActive},
		{FtaCode: "CPTPP", FullName: "Comprehensive and Progressive Agreement for Trans-Pacific Partnership", EntryForceDate: date(2018, time.December, 30), Status: model.AgreementStatusActive},
		{FtaCode: "JAEPA", FullName: "Japan-Australia Economic Partnership Agreement", EntryForceDate: date(2015, time.January, 15), Status: model.AgreementStatusActive},
		{FtaCode: "AANZFTA", FullName: "ASEAN-Australia-New Zealand Free Trade Area", EntryForceDate: date(2010, time.January, 1), Status: model.AgreementStatusSuspended},
	}
}

func sampleFtaRates() []model.FtaRate {
	return []model.FtaRate{
		{HSCode: "0101210000", FtaCode: "AUSFTA", CountryCode: "USA", PreferentialRate: decPtr("0"), StagingCategory: model.StagingCategoryA, EffectiveDate: date(2005, time.January, 1), RuleOfOrigin: "Wholly obtained or produced"},
		{HSCode: "7308900000", FtaCode: "ChAFTA", CountryCode: "CHN", PreferentialRate: decPtr("2.00"), StagingCategory: model.StagingCategoryB, EffectiveDate: date(2015, time.December, 20), EliminationDate: datePtr(2019, time.January, 1)},
		{HSCode: "8703230000", FtaCode: "JAEPA", CountryCode: "JPN", PreferentialRate: decPtr("2.50"), StagingCategory: model.StagingCategoryC, EffectiveDate: date(2015, time.January, 15)},
		{HSCode: "8703230000", FtaCode: "CPTPP", CountryCode: "JPN", PreferentialRate: decPtr("2.50"), StagingCategory: model.StagingCategoryB, EffectiveDate: date(2018, time.December, 30)},
		{HSCode: "2204210000", FtaCode: "CPTPP", CountryCode: "NZL", PreferentialRate: decPtr("0"), StagingCategory: model.StagingCategoryA, EffectiveDate: date(2018, time.December, 30), SafeguardApplicable: true},
	}
}

func sampleDumpingDuties() []model.DumpingDuty {
	return []model.DumpingDuty{
		{HSCode: "7308900000", CountryCode: "CHN", DutyType: model.DutyTypeDumping, DutyRate: decPtr("14.20"), CaseNumber: "ADC-2019-512", IsActive: true, EffectiveDate: date(2019, time.June, 1)},
		{HSCode: "7308900000", CountryCode: "CHN", ExporterName: strPtr("Shanghai Fabrication Co"), DutyType: model.DutyTypeCountervailing, DutyRate: decPtr("6.30"), CaseNumber: "CVD-2019-513", IsActive: true, EffectiveDate: date(2019, time.June, 1)},
		{HSCode: "7308900000", CountryCode: "KOR", DutyType: model.DutyTypeDumping, DutyAmount: decPtr("0.35"), DutyUnit: "kg", CaseNumber: "ADC-2021-118", IsActive: true, EffectiveDate: date(2021, time.March, 15), ExpiryDate: datePtr(2026, time.March, 15)},
	}
}

func sampleTcos() []model.Tco {
	return []model.Tco{
		{TcoNumber: "TC 2312345", HSCode: "8703230000", Description: "Specialised mobility vehicles not produced locally", ApplicantName: "Mobility Imports Pty Ltd", EffectiveDate: date(2023, time.April, 1), IsCurrent: true},
		{TcoNumber: "TC 1898765", HSCode: "7308900000", Description: "Pre-engineered transmission towers", ApplicantName: "GridBuild Ltd", EffectiveDate: date(2018, time.July, 1), ExpiryDate: datePtr(2021, time.July, 1), IsCurrent: true}, // flag never flipped after expiry; Verify reports it
	}
}

func sampleGstProvisions() []model.GstProvision {
	return []model.GstProvision{
		{HSCode: nil, ExemptionType: "Low value import threshold", ValueThreshold: decPtr("1000.00"), IsActive: true},
		{HSCode: strPtr("0101210000"), ExemptionType: "GST-free breeding livestock", IsActive: false},
	}
}

func sampleExportCodes() []model.ExportCode {
	return []model.ExportCode{
		{AheccCode: "01012100", Description: "Horses, pure-bred breeding", UnitType: "No", IsActive: true},
		{AheccCode: "22042110", Description: "Wine, bottled, not exceeding 2L", UnitType: "L", IsActive: true},
	}
}

func sampleNews() []model.NewsArticle {
	return []model.NewsArticle{
		{Title: "Anti-dumping review initiated on steel structures", Summary: "Review of measures on fabricated steel from China", Body: "The Anti-Dumping Commission has initiated a review of the measures applying to fabricated steel structures.", Category: "dumping", PublishedAt: date(2025, time.November, 3)},
		{Title: "New TCOs gazetted for specialised vehicles", Summary: "Three new tariff concession orders take effect this quarter", Body: "Importers of specialised mobility vehicles can now claim concessional entry under the newly gazetted orders.", Category: "tco", PublishedAt: date(2025, time.September, 18)},
		{Title: "CPTPP staging update for wine tariffs", Summary: "Preferential wine rates step down under staging category A", Body: "Wine entering under the CPTPP moves to free entry for qualifying origins.", Category: "fta", PublishedAt: date(2026, time.January, 12)},
	}
}
