package store

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/opencustoms/tariff/internal/tariff/model"
	"github.com/opencustoms/tariff/utils"
)

// Store is the read-only query layer over the tariff schema. Rows are created
// and updated by the seed tooling only; the store never writes.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// GetTariffCode retrieves one tariff code by its HS code.
// Returns a NotFoundError when the code is absent from the hierarchy.
func (s *Store) GetTariffCode(ctx context.Context, hsCode string) (*model.TariffCode, error) {
	var code model.TariffCode
	err := s.db.WithContext(ctx).First(&code, "hs_code = ?", hsCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "tariff code", Key: hsCode}
		}
		return nil, &DataAccessError{Op: "get tariff code", Err: err}
	}
	return &code, nil
}

// GetTariffCodeChildren returns the direct children of a tariff code.
func (s *Store) GetTariffCodeChildren(ctx context.Context, hsCode string) ([]model.TariffCode, error) {
	var children []model.TariffCode
	err := s.db.WithContext(ctx).
		Where("parent_code = ?", hsCode).
		Order("hs_code").
		Find(&children).Error
	if err != nil {
		return nil, &DataAccessError{Op: "get tariff code children", Err: err}
	}
	return children, nil
}

// SearchTariffCodes returns active tariff codes matching the filter, paginated.
func (s *Store) SearchTariffCodes(ctx context.Context, filter model.TariffCodeFilter) (*model.TariffCodeListResult, error) {
	offset, limit := utils.PaginationBounds(filter.Offset, filter.Limit)

	query := s.db.WithContext(ctx).Model(&model.TariffCode{}).Where("is_active = ?", true)
	if filter.StartsWith != nil && *filter.StartsWith != "" {
		query = query.Where("hs_code LIKE ?", *filter.StartsWith+"%")
	}
	if filter.Level != nil {
		query = query.Where("level = ?", *filter.Level)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, &DataAccessError{Op: "count tariff codes", Err: err}
	}

	var codes []model.TariffCode
	if err := query.Order("hs_code").Offset(offset).Limit(limit).Find(&codes).Error; err != nil {
		return nil, &DataAccessError{Op: "search tariff codes", Err: err}
	}

	return &model.TariffCodeListResult{
		TotalCount:  total,
		TariffCodes: codes,
		Offset:      offset,
		Limit:       limit,
	}, nil
}

// GetDutyRate retrieves the general duty rate for an HS code.
// A (nil, nil) return means no rate data is known, which is distinct from an
// explicit zero ("Free") rate.
func (s *Store) GetDutyRate(ctx context.Context, hsCode string) (*model.DutyRate, error) {
	var rate model.DutyRate
	err := s.db.WithContext(ctx).First(&rate, "hs_code = ?", hsCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, &DataAccessError{Op: "get duty rate", Err: err}
	}
	return &rate, nil
}

// GetFtaRates returns all preferential rates covering an HS code and country,
// with the owning agreement preloaded. Effectiveness filtering is left to the
// caller, which needs eliminated rows as well as live ones.
func (s *Store) GetFtaRates(ctx context.Context, hsCode, countryCode string) ([]model.FtaRate, error) {
	var rates []model.FtaRate
	err := s.db.WithContext(ctx).
		Preload("Agreement").
		Where("hs_code = ? AND country_code = ?", hsCode, countryCode).
		Order("effective_date").
		Find(&rates).Error
	if err != nil {
		return nil, &DataAccessError{Op: "get fta rates", Err: err}
	}
	return rates, nil
}

// GetAllFtaRates returns every preferential rate row for an HS code across
// all agreements and countries, with agreements preloaded.
func (s *Store) GetAllFtaRates(ctx context.Context, hsCode string) ([]model.FtaRate, error) {
	var rates []model.FtaRate
	err := s.db.WithContext(ctx).
		Preload("Agreement").
		Where("hs_code = ?", hsCode).
		Order("fta_code, country_code, effective_date").
		Find(&rates).Error
	if err != nil {
		return nil, &DataAccessError{Op: "get all fta rates", Err: err}
	}
	return rates, nil
}

// GetDumpingDuties returns the anti-dumping and countervailing measures in
// effect for an HS code and country as of the given date.
func (s *Store) GetDumpingDuties(ctx context.Context, hsCode, countryCode string, asOf time.Time) ([]model.DumpingDuty, error) {
	var duties []model.DumpingDuty
	err := s.db.WithContext(ctx).
		Where("hs_code = ? AND country_code = ? AND is_active = ?", hsCode, countryCode, true).
		Where("effective_date <= ?", asOf).
		Where("expiry_date IS NULL OR expiry_date > ?", asOf).
		Order("case_number").
		Find(&duties).Error
	if err != nil {
		return nil, &DataAccessError{Op: "get dumping duties", Err: err}
	}
	for i := range duties {
		if !duties[i].HasSingleForm() {
			// Known data-quality gap: both or neither of duty_rate/duty_amount set
			slog.Warn("dumping duty row with inconsistent rate form",
				"case_number", duties[i].CaseNumber,
				"hs_code", duties[i].HSCode,
			)
		}
	}
	return duties, nil
}

// GetCurrentTco returns the current, unexpired tariff concession order for an
// HS code, or (nil, nil) when none exists.
func (s *Store) GetCurrentTco(ctx context.Context, hsCode string, asOf time.Time) (*model.Tco, error) {
	var tco model.Tco
	err := s.db.WithContext(ctx).
		Where("hs_code = ? AND is_current = ?", hsCode, true).
		Where("expiry_date IS NULL OR expiry_date >= ?", asOf).
		Order("effective_date").
		First(&tco).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, &DataAccessError{Op: "get current tco", Err: err}
	}
	return &tco, nil
}

// GetGstProvisions returns the active GST exemption provisions applicable to
// an HS code, including general provisions not tied to any code.
func (s *Store) GetGstProvisions(ctx context.Context, hsCode string) ([]model.GstProvision, error) {
	var provisions []model.GstProvision
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("hs_code = ? OR hs_code IS NULL", hsCode).
		Find(&provisions).Error
	if err != nil {
		return nil, &DataAccessError{Op: "get gst provisions", Err: err}
	}
	return provisions, nil
}

// ListAgreements returns all trade agreements.
func (s *Store) ListAgreements(ctx context.Context) ([]model.TradeAgreement, error) {
	var agreements []model.TradeAgreement
	err := s.db.WithContext(ctx).Order("fta_code").Find(&agreements).Error
	if err != nil {
		return nil, &DataAccessError{Op: "list agreements", Err: err}
	}
	return agreements, nil
}

// GetExportCode retrieves one AHECC export code.
func (s *Store) GetExportCode(ctx context.Context, aheccCode string) (*model.ExportCode, error) {
	var code model.ExportCode
	err := s.db.WithContext(ctx).First(&code, "ahecc_code = ?", aheccCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "export code", Key: aheccCode}
		}
		return nil, &DataAccessError{Op: "get export code", Err: err}
	}
	return &code, nil
}

// ListNews returns news articles, newest first, optionally filtered by category.
func (s *Store) ListNews(ctx context.Context, filter model.NewsFilter) ([]model.NewsArticle, error) {
	offset, limit := utils.PaginationBounds(filter.Offset, filter.Limit)

	query := s.db.WithContext(ctx).Model(&model.NewsArticle{})
	if filter.Category != nil && *filter.Category != "" {
		query = query.Where("category = ?", *filter.Category)
	}

	var articles []model.NewsArticle
	err := query.Order("published_at DESC").Offset(offset).Limit(limit).Find(&articles).Error
	if err != nil {
		return nil, &DataAccessError{Op: "list news", Err: err}
	}
	return articles, nil
}

// GetNews retrieves one news article by ID.
func (s *Store) GetNews(ctx context.Context, id uuid.UUID) (*model.NewsArticle, error) {
	var article model.NewsArticle
	err := s.db.WithContext(ctx).First(&article, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "news article", Key: id.String()}
		}
		return nil, &DataAccessError{Op: "get news article", Err: err}
	}
	return &article, nil
}
