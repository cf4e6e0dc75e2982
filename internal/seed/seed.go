package seed

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/opencustoms/tariff/internal/tariff/model"
)

// Load migrates the schema and inserts the sample dataset. It is a no-op when
// tariff codes already exist, so re-running the seeder is safe.
func Load(db *gorm.DB) error {
	if err := model.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	var existing int64
	if err := db.Model(&model.TariffCode{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to check existing data: %w", err)
	}
	if existing > 0 {
		slog.Info("database already seeded, skipping", "tariff_codes", existing)
		return nil
	}

	codes := sampleTariffCodes()
	for i := range codes {
		if err := codes[i].Validate(); err != nil {
			return fmt.Errorf("invalid sample tariff code: %w", err)
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			name string
			rows any
		}{
			{"tariff codes", codes},
			{"duty rates", sampleDutyRates()},
			{"trade agreements", sampleAgreements()},
			{"fta rates", sampleFtaRates()},
			{"dumping duties", sampleDumpingDuties()},
			{"tcos", sampleTcos()},
			{"gst provisions", sampleGstProvisions()},
			{"export codes", sampleExportCodes()},
			{"news articles", sampleNews()},
		}
		for _, step := range steps {
			if err := tx.Create(step.rows).Error; err != nil {
				return fmt.Errorf("failed to seed %s: %w", step.name, err)
			}
			slog.Info("seeded", "table", step.name)
		}
		return nil
	})
}
