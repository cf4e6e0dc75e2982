package model

// ExportCode represents an AHECC export statistical code.
type ExportCode struct {
	BaseModel
	AheccCode   string `gorm:"type:varchar(10);column:ahecc_code;not null;uniqueIndex" json:"aheccCode"`
	Description string `gorm:"type:text;column:description" json:"description"`
	UnitType    string `gorm:"type:varchar(20);column:unit_type" json:"unitType,omitempty"`
	IsActive    bool   `gorm:"column:is_active;not null;default:true" json:"isActive"`
}

func (e *ExportCode) TableName() string {
	return "export_codes"
}
