package model

import (
	"fmt"
	"strings"
)

// Valid HS code lengths. The level of a code is exactly its digit count.
const (
	LevelChapter     = 2
	LevelHeading     = 4
	LevelSubheading  = 6
	LevelItem        = 8
	LevelStatistical = 10
)

// TariffCode represents one node of the Harmonized System classification hierarchy.
type TariffCode struct {
	BaseModel
	HSCode      string  `gorm:"type:varchar(10);column:hs_code;not null;uniqueIndex" json:"hsCode"`
	Description string  `gorm:"type:text;column:description" json:"description"`
	Level       int     `gorm:"column:level;not null" json:"level"` // 2, 4, 6, 8 or 10
	ParentCode  *string `gorm:"type:varchar(10);column:parent_code" json:"parentCode,omitempty"`
	IsActive    bool    `gorm:"column:is_active;not null;default:true" json:"isActive"`
}

func (c *TariffCode) TableName() string {
	return "tariff_codes"
}

// ValidLevel reports whether n is a recognised HS code level.
func ValidLevel(n int) bool {
	switch n {
	case LevelChapter, LevelHeading, LevelSubheading, LevelItem, LevelStatistical:
		return true
	}
	return false
}

// Validate checks the structural invariants of a tariff code: the level must
// match the code length and the parent, if set, must be a shorter prefix.
func (c *TariffCode) Validate() error {
	if !ValidLevel(len(c.HSCode)) {
		return fmt.Errorf("hs code %q has invalid length %d", c.HSCode, len(c.HSCode))
	}
	if c.Level != len(c.HSCode) {
		return fmt.Errorf("hs code %q: level %d does not match code length %d", c.HSCode, c.Level, len(c.HSCode))
	}
	for _, r := range c.HSCode {
		if r < '0' || r > '9' {
			return fmt.Errorf("hs code %q contains non-digit characters", c.HSCode)
		}
	}
	if c.ParentCode != nil {
		parent := *c.ParentCode
		if len(parent) >= len(c.HSCode) || !strings.HasPrefix(c.HSCode, parent) {
			return fmt.Errorf("hs code %q: parent %q is not a prefix-level ancestor", c.HSCode, parent)
		}
		if !ValidLevel(len(parent)) {
			return fmt.Errorf("hs code %q: parent %q has invalid length %d", c.HSCode, parent, len(parent))
		}
	}
	return nil
}

// TariffCodeFilter is used when querying tariff codes as a batch
type TariffCodeFilter struct {
	StartsWith *string `json:"startsWith,omitempty"`
	Level      *int    `json:"level,omitempty"`
	Offset     *int    `json:"offset,omitempty"`
	Limit      *int    `json:"limit,omitempty"`
}

// TariffCodeListResult represents the result of querying tariff codes with pagination
type TariffCodeListResult struct {
	TotalCount  int64        `json:"totalCount"`
	TariffCodes []TariffCode `json:"tariffCodes"`
	Offset      int          `json:"offset"`
	Limit       int          `json:"limit"`
}
