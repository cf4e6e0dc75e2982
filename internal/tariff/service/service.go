package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/opencustoms/tariff/internal/config"
	"github.com/opencustoms/tariff/internal/tariff/duty"
	"github.com/opencustoms/tariff/internal/tariff/model"
)

// RateStore is the read-only query surface the service depends on.
type RateStore interface {
	GetTariffCode(ctx context.Context, hsCode string) (*model.TariffCode, error)
	GetTariffCodeChildren(ctx context.Context, hsCode string) ([]model.TariffCode, error)
	SearchTariffCodes(ctx context.Context, filter model.TariffCodeFilter) (*model.TariffCodeListResult, error)
	GetDutyRate(ctx context.Context, hsCode string) (*model.DutyRate, error)
	GetFtaRates(ctx context.Context, hsCode, countryCode string) ([]model.FtaRate, error)
	GetAllFtaRates(ctx context.Context, hsCode string) ([]model.FtaRate, error)
	GetDumpingDuties(ctx context.Context, hsCode, countryCode string, asOf time.Time) ([]model.DumpingDuty, error)
	GetCurrentTco(ctx context.Context, hsCode string, asOf time.Time) (*model.Tco, error)
	GetGstProvisions(ctx context.Context, hsCode string) ([]model.GstProvision, error)
	ListAgreements(ctx context.Context) ([]model.TradeAgreement, error)
	GetExportCode(ctx context.Context, aheccCode string) (*model.ExportCode, error)
	ListNews(ctx context.Context, filter model.NewsFilter) ([]model.NewsArticle, error)
	GetNews(ctx context.Context, id uuid.UUID) (*model.NewsArticle, error)
}

// DutyService orchestrates rate lookups and the calculation engine for one
// request. It is stateless; "today" is injected for testability.
type DutyService struct {
	store RateStore
	cfg   config.DutyConfig
	now   func() time.Time
}

func NewDutyService(store RateStore, cfg config.DutyConfig) *DutyService {
	return &DutyService{
		store: store,
		cfg:   cfg,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// RatesResult bundles the raw rate rows for one tariff code, no calculation.
type RatesResult struct {
	TariffCode *model.TariffCode `json:"tariffCode"`
	DutyRate   *model.DutyRate   `json:"dutyRate"`
	FtaRates   []model.FtaRate   `json:"ftaRates"`
}

// TariffCodeDetail is one tariff code with its direct children.
type TariffCodeDetail struct {
	TariffCode *model.TariffCode  `json:"tariffCode"`
	Children   []model.TariffCode `json:"children"`
}

// CalculateDuty validates the input, resolves the tariff code, fetches the
// relevant rate records and runs the calculation engine over them.
func (s *DutyService) CalculateDuty(ctx context.Context, in duty.Input) (*duty.Breakdown, error) {
	in.CountryCode = strings.ToUpper(in.CountryCode)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	// The code must exist in the hierarchy; empty rate tables are fine,
	// an unknown code is not.
	if _, err := s.store.GetTariffCode(ctx, in.HSCode); err != nil {
		return nil, err
	}

	asOf := s.now()

	dutyRate, err := s.store.GetDutyRate(ctx, in.HSCode)
	if err != nil {
		return nil, err
	}
	ftaRates, err := s.store.GetFtaRates(ctx, in.HSCode, in.CountryCode)
	if err != nil {
		return nil, err
	}
	dumpingDuties, err := s.store.GetDumpingDuties(ctx, in.HSCode, in.CountryCode, asOf)
	if err != nil {
		return nil, err
	}
	tco, err := s.store.GetCurrentTco(ctx, in.HSCode, asOf)
	if err != nil {
		return nil, err
	}
	provisions, err := s.store.GetGstProvisions(ctx, in.HSCode)
	if err != nil {
		return nil, err
	}

	snapshot := duty.RateSnapshot{
		DutyRate:      dutyRate,
		FtaRates:      ftaRates,
		DumpingDuties: dumpingDuties,
		Tco:           tco,
		GstProvisions: provisions,
	}

	return duty.Calculate(in, snapshot, s.cfg.GSTRatePercent, asOf)
}

// Rates returns the raw general rate and every preferential rate row for a
// tariff code.
func (s *DutyService) Rates(ctx context.Context, hsCode string) (*RatesResult, error) {
	code, err := s.store.GetTariffCode(ctx, hsCode)
	if err != nil {
		return nil, err
	}
	dutyRate, err := s.store.GetDutyRate(ctx, hsCode)
	if err != nil {
		return nil, err
	}
	ftaRates, err := s.store.GetAllFtaRates(ctx, hsCode)
	if err != nil {
		return nil, err
	}
	return &RatesResult{TariffCode: code, DutyRate: dutyRate, FtaRates: ftaRates}, nil
}

// FtaRates returns the preferential rates for a tariff code and country that
// are currently effective or eliminated, i.e. claimable today.
func (s *DutyService) FtaRates(ctx context.Context, hsCode, countryCode string) ([]model.FtaRate, error) {
	countryCode = strings.ToUpper(countryCode)
	if _, err := s.store.GetTariffCode(ctx, hsCode); err != nil {
		return nil, err
	}
	rows, err := s.store.GetFtaRates(ctx, hsCode, countryCode)
	if err != nil {
		return nil, err
	}
	asOf := s.now()
	filtered := make([]model.FtaRate, 0, len(rows))
	for _, r := range rows {
		if r.EffectiveDate.After(asOf) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered, nil
}

// TcoCheck returns the current tariff concession order for a code, or nil.
func (s *DutyService) TcoCheck(ctx context.Context, hsCode string) (*model.Tco, error) {
	if _, err := s.store.GetTariffCode(ctx, hsCode); err != nil {
		return nil, err
	}
	return s.store.GetCurrentTco(ctx, hsCode, s.now())
}

// SearchTariffCodes passes a paginated search through to the store.
func (s *DutyService) SearchTariffCodes(ctx context.Context, filter model.TariffCodeFilter) (*model.TariffCodeListResult, error) {
	return s.store.SearchTariffCodes(ctx, filter)
}

// TariffCode returns one code with its direct children.
func (s *DutyService) TariffCode(ctx context.Context, hsCode string) (*TariffCodeDetail, error) {
	code, err := s.store.GetTariffCode(ctx, hsCode)
	if err != nil {
		return nil, err
	}
	children, err := s.store.GetTariffCodeChildren(ctx, hsCode)
	if err != nil {
		return nil, err
	}
	return &TariffCodeDetail{TariffCode: code, Children: children}, nil
}

// Agreements returns all trade agreements.
func (s *DutyService) Agreements(ctx context.Context) ([]model.TradeAgreement, error) {
	return s.store.ListAgreements(ctx)
}

// ExportCode returns one AHECC export code.
func (s *DutyService) ExportCode(ctx context.Context, aheccCode string) (*model.ExportCode, error) {
	return s.store.GetExportCode(ctx, aheccCode)
}

// News returns news articles matching the filter.
func (s *DutyService) News(ctx context.Context, filter model.NewsFilter) ([]model.NewsArticle, error) {
	return s.store.ListNews(ctx, filter)
}

// NewsArticle returns one news article.
func (s *DutyService) NewsArticle(ctx context.Context, id uuid.UUID) (*model.NewsArticle, error) {
	return s.store.GetNews(ctx, id)
}
