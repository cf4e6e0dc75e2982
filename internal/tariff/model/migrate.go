package model

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for all tariff entities.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&TariffCode{},
		&DutyRate{},
		&TradeAgreement{},
		&FtaRate{},
		&DumpingDuty{},
		&Tco{},
		&GstProvision{},
		&ExportCode{},
		&NewsArticle{},
	)
}
