package domain

import (
	"database/sql/driver"
	"strings"

	"go-jobboard-backend/pkg/validation"
)

type EmailCategory int

const (
	EmailPersonal EmailCategory = iota + 1
	EmailWork
	EmailOthers
)

var emailCategories = newEnumSet("EmailCategory", map[EmailCategory]string{
	EmailPersonal: "Personal",
	EmailWork:     "Work",
	EmailOthers:   "Others",
})

func (c EmailCategory) String() string                { return emailCategories.name(c) }
func (c EmailCategory) IsValid() bool                 { return emailCategories.valid(c) }
func (c EmailCategory) MarshalJSON() ([]byte, error)  { return emailCategories.marshal(c), nil }
func (c *EmailCategory) UnmarshalJSON(b []byte) error { return emailCategories.unmarshal(b, c) }
func (c EmailCategory) Value() (driver.Value, error)  { return emailCategories.value(c) }
func (c *EmailCategory) Scan(src any) error           { return emailCategories.scan(src, c) }

type Email struct {
	ID           int64         `json:"Id" gorm:"primaryKey"`
	EmailType    EmailCategory `json:"EmailType" gorm:"not null"`
	EmailAddress string        `json:"EmailAddress" gorm:"size:256;not null"`
}

func (Email) TableName() string { return "emails" }

type EmailModel struct {
	EmailType    EmailCategory `json:"EmailType"`
	EmailAddress string        `json:"EmailAddress"`
}

var EmailModelRules = []validation.Rule{
	{Field: "EmailType", Tag: "required", Message: "Email Type is required"},
	{Field: "EmailType", Tag: "valid_enum", Message: "Email Type must be one of Personal, Work, Others"},
	{Field: "EmailAddress", Tag: "notblank", Message: "Email Address is required"},
	{Field: "EmailAddress", Tag: "email", Message: "Invalid email address"},
	{Field: "EmailAddress", Tag: "max=256"},
}

func (m EmailModel) ToEntity() (*Email, error) {
	return &Email{
		EmailType:    m.EmailType,
		EmailAddress: strings.TrimSpace(m.EmailAddress),
	}, nil
}

type EmailRepository interface {
	Repository[Email]
}
