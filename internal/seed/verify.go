package seed

import (
	"fmt"
	"io"

	"gorm.io/gorm"

	"github.com/opencustoms/tariff/internal/tariff/model"
)

// TableReport is the row count for one table plus any quality findings.
type TableReport struct {
	Table    string
	Count    int64
	Findings []string
}

// Verify gathers row counts and data-quality statistics across all tables.
func Verify(db *gorm.DB) ([]TableReport, error) {
	var reports []TableReport

	tables := []struct {
		name  string
		model any
	}{
		{"tariff_codes", &model.TariffCode{}},
		{"duty_rates", &model.DutyRate{}},
		{"trade_agreements", &model.TradeAgreement{}},
		{"fta_rates", &model.FtaRate{}},
		{"dumping_duties", &model.DumpingDuty{}},
		{"tcos", &model.Tco{}},
		{"gst_provisions", &model.GstProvision{}},
		{"export_codes", &model.ExportCode{}},
		{"news_articles", &model.NewsArticle{}},
	}

	for _, t := range tables {
		var count int64
		if err := db.Model(t.model).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", t.name, err)
		}
		reports = append(reports, TableReport{Table: t.name, Count: count})
	}

	// Duty-rate coverage: what share of leaf codes carry a general rate
	var leafCodes, ratedCodes int64
	if err := db.Model(&model.TariffCode{}).Where("level = ?", model.LevelStatistical).Count(&leafCodes).Error; err != nil {
		return nil, fmt.Errorf("failed to count leaf codes: %w", err)
	}
	if err := db.Model(&model.DutyRate{}).Count(&ratedCodes).Error; err != nil {
		return nil, fmt.Errorf("failed to count rated codes: %w", err)
	}
	if leafCodes > 0 {
		pct := float64(ratedCodes) / float64(leafCodes) * 100
		appendFinding(reports, "duty_rates", fmt.Sprintf("%.1f%% of statistical codes have a general rate", pct))
	}

	// Known data-quality gap: dumping rows must carry exactly one rate form
	var duties []model.DumpingDuty
	if err := db.Find(&duties).Error; err != nil {
		return nil, fmt.Errorf("failed to load dumping duties: %w", err)
	}
	inconsistent := 0
	for i := range duties {
		if !duties[i].HasSingleForm() {
			inconsistent++
		}
	}
	if len(duties) > 0 {
		pct := float64(len(duties)-inconsistent) / float64(len(duties)) * 100
		appendFinding(reports, "dumping_duties", fmt.Sprintf("%.1f%% of rows have exactly one rate form", pct))
	}

	// Stale TCO flags: is_current rows whose expiry has passed
	var staleTcos int64
	if err := db.Model(&model.Tco{}).
		Where("is_current = ? AND expiry_date IS NOT NULL AND expiry_date < CURRENT_DATE", true).
		Count(&staleTcos).Error; err != nil {
		return nil, fmt.Errorf("failed to count stale tcos: %w", err)
	}
	if staleTcos > 0 {
		appendFinding(reports, "tcos", fmt.Sprintf("%d rows still flagged current past expiry", staleTcos))
	}

	return reports, nil
}

// PrintReport writes the verification report in the tabular format used by
// the seed binary.
func PrintReport(w io.Writer, reports []TableReport) {
	fmt.Fprintf(w, "%-20s %8s\n", "TABLE", "ROWS")
	for _, r := range reports {
		fmt.Fprintf(w, "%-20s %8d\n", r.Table, r.Count)
		for _, f := range r.Findings {
			fmt.Fprintf(w, "    - %s\n", f)
		}
	}
}

func appendFinding(reports []TableReport, table, finding string) {
	for i := range reports {
		if reports[i].Table == table {
			reports[i].Findings = append(reports[i].Findings, finding)
			return
		}
	}
}
