package repositories

import (
	"errors"

	"marlink_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrExchangeRateNotFound = errors.New("exchange rate not found")

type ExchangeRateRepository interface {
	// Upsert saves the rate for a date, overwriting an existing record.
	Upsert(date string, rate float64) (*models.ExchangeRate, error)

	// FindByDate returns the record for the exact date.
	FindByDate(date string) (*models.ExchangeRate, error)

	// FindEffective returns the latest record with date <= the requested
	// date (the "floor" lookup behind effective-rate resolution).
	FindEffective(date string) (*models.ExchangeRate, error)

	// FindAll returns all records, newest date first.
	FindAll() ([]models.ExchangeRate, error)
}

type ExchangeRateRepositoryImpl struct {
	db *gorm.DB
}

func NewExchangeRateRepository(db *gorm.DB) ExchangeRateRepository {
	return &ExchangeRateRepositoryImpl{db: db}
}

func (r *ExchangeRateRepositoryImpl) Upsert(date string, rate float64) (*models.ExchangeRate, error) {
	record := models.ExchangeRate{Date: date, Rate: rate}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *ExchangeRateRepositoryImpl) FindByDate(date string) (*models.ExchangeRate, error) {
	var record models.ExchangeRate
	err := r.db.First(&record, "date = ?", date).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExchangeRateNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *ExchangeRateRepositoryImpl) FindEffective(date string) (*models.ExchangeRate, error) {
	var record models.ExchangeRate
	err := r.db.Where("date <= ?", date).Order("date DESC").First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExchangeRateNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *ExchangeRateRepositoryImpl) FindAll() ([]models.ExchangeRate, error) {
	var records []models.ExchangeRate
	err := r.db.Order("date DESC").Find(&records).Error
	return records, err
}
