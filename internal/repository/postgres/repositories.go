package postgres

import (
	"go-jobboard-backend/internal/domain"

	"gorm.io/gorm"
)

func NewEmailRepository(db *gorm.DB) domain.EmailRepository {
	return newBaseRepo[domain.Email](db, "emails")
}

func NewIndustryTypeRepository(db *gorm.DB) domain.IndustryTypeRepository {
	return newBaseRepo[domain.IndustryType](db, "industry_types")
}

func NewStatusRepository(db *gorm.DB) domain.StatusRepository {
	return newBaseRepo[domain.Status](db, "statuses")
}

func NewPersonNameRepository(db *gorm.DB) domain.PersonNameRepository {
	return newBaseRepo[domain.PersonName](db, "person_names")
}
