package duty

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/opencustoms/tariff/internal/tariff/model"
)

// Input is one line item to assess.
type Input struct {
	HSCode       string           `json:"hsCode"`
	CountryCode  string           `json:"countryCode"`
	CustomsValue decimal.Decimal  `json:"customsValue"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
}

// Validate checks the input contract: a resolvable HS code of level 4 or
// deeper, an ISO alpha-3 country code, a positive customs value and, when
// given, a positive quantity.
func (in *Input) Validate() error {
	if err := validateHSCode(in.HSCode); err != nil {
		return err
	}
	if !isAlpha3(in.CountryCode) {
		return &ValidationError{
			Field:   "countryCode",
			Message: fmt.Sprintf("%q is not an ISO 3166-1 alpha-3 country code", in.CountryCode),
		}
	}
	if !in.CustomsValue.IsPositive() {
		return &ValidationError{Field: "customsValue", Message: "customs value must be greater than zero"}
	}
	if in.Quantity != nil && !in.Quantity.IsPositive() {
		return &ValidationError{Field: "quantity", Message: "quantity must be greater than zero"}
	}
	return nil
}

func validateHSCode(code string) error {
	for _, r := range code {
		if r < '0' || r > '9' {
			return &ValidationError{
				Field:   "hsCode",
				Message: fmt.Sprintf("%q contains non-digit characters", code),
			}
		}
	}
	switch len(code) {
	case model.LevelHeading, model.LevelSubheading, model.LevelItem, model.LevelStatistical:
		return nil
	case model.LevelChapter:
		// Chapter-level codes are too coarse for a duty assessment
		return &ValidationError{
			Field:   "hsCode",
			Message: fmt.Sprintf("%q is a 2-digit chapter; a heading-level code or deeper is required", code),
		}
	default:
		return &ValidationError{
			Field:   "hsCode",
			Message: fmt.Sprintf("%q must be 4, 6, 8 or 10 digits", code),
		}
	}
}

func isAlpha3(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
