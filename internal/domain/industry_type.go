package domain

import (
	"database/sql/driver"

	"go-jobboard-backend/pkg/validation"
)

type IndustryCategory int

const (
	IndustryTechnology IndustryCategory = iota + 1
	IndustryHealthcare
	IndustryFinance
	IndustryManufacturing
	IndustryOthers
)

var industryCategories = newEnumSet("IndustryCategory", map[IndustryCategory]string{
	IndustryTechnology:    "Technology",
	IndustryHealthcare:    "Healthcare",
	IndustryFinance:       "Finance",
	IndustryManufacturing: "Manufacturing",
	IndustryOthers:        "Others",
})

func (c IndustryCategory) String() string                { return industryCategories.name(c) }
func (c IndustryCategory) IsValid() bool                 { return industryCategories.valid(c) }
func (c IndustryCategory) MarshalJSON() ([]byte, error)  { return industryCategories.marshal(c), nil }
func (c *IndustryCategory) UnmarshalJSON(b []byte) error { return industryCategories.unmarshal(b, c) }
func (c IndustryCategory) Value() (driver.Value, error)  { return industryCategories.value(c) }
func (c *IndustryCategory) Scan(src any) error           { return industryCategories.scan(src, c) }

type IndustryType struct {
	ID               int64            `json:"Id" gorm:"primaryKey"`
	IndustryCategory IndustryCategory `json:"IndustryCategory" gorm:"not null"`
}

func (IndustryType) TableName() string { return "industry_types" }

type IndustryTypeModel struct {
	IndustryCategory IndustryCategory `json:"IndustryCategory"`
}

var IndustryTypeModelRules = []validation.Rule{
	{Field: "IndustryCategory", Tag: "required", Message: "Industry Category is required"},
	{Field: "IndustryCategory", Tag: "valid_enum", Message: "Industry Category must be one of Technology, Healthcare, Finance, Manufacturing, Others"},
}

func (m IndustryTypeModel) ToEntity() (*IndustryType, error) {
	return &IndustryType{IndustryCategory: m.IndustryCategory}, nil
}

type IndustryTypeRepository interface {
	Repository[IndustryType]
}
