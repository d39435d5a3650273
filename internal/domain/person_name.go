package domain

import (
	"strings"

	"go-jobboard-backend/pkg/validation"
)

type PersonName struct {
	ID         int64  `json:"Id" gorm:"primaryKey"`
	FirstName  string `json:"FirstName" gorm:"size:50;not null"`
	MiddleName string `json:"MiddleName" gorm:"size:50"`
	LastName   string `json:"LastName" gorm:"size:50;not null"`
}

func (PersonName) TableName() string { return "person_names" }

type PersonNameModel struct {
	FirstName  string `json:"FirstName"`
	MiddleName string `json:"MiddleName"`
	LastName   string `json:"LastName"`
}

var PersonNameModelRules = []validation.Rule{
	{Field: "FirstName", Tag: "notblank", Message: "First Name is required"},
	{Field: "FirstName", Tag: "max=50"},
	{Field: "MiddleName", Tag: "omitempty"},
	{Field: "MiddleName", Tag: "max=50"},
	{Field: "LastName", Tag: "notblank", Message: "Last Name is required"},
	{Field: "LastName", Tag: "max=50"},
}

func (m PersonNameModel) ToEntity() (*PersonName, error) {
	return &PersonName{
		FirstName:  strings.TrimSpace(m.FirstName),
		MiddleName: strings.TrimSpace(m.MiddleName),
		LastName:   strings.TrimSpace(m.LastName),
	}, nil
}

type PersonNameRepository interface {
	Repository[PersonName]
}
