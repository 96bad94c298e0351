package repositories

import (
	"errors"

	"marlink_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrTariffPageNotFound = errors.New("tariff page not found")

type TariffRepository interface {
	// Get returns the singleton row, or ErrTariffPageNotFound before the
	// first admin write.
	Get() (*models.TariffPage, error)

	// Save upserts the whole singleton document.
	Save(page *models.TariffPage) error

	// UpdateExchange upserts only the displayed exchange rate and date.
	UpdateExchange(date string, rate float64) error

	// SetHistoricalRatesFlag flips the public historical-rates feature flag.
	SetHistoricalRatesFlag(allowed bool) error
}

type TariffRepositoryImpl struct {
	db *gorm.DB
}

func NewTariffRepository(db *gorm.DB) TariffRepository {
	return &TariffRepositoryImpl{db: db}
}

func (r *TariffRepositoryImpl) Get() (*models.TariffPage, error) {
	var page models.TariffPage
	err := r.db.First(&page, "id = ?", models.TariffPageID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTariffPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

func (r *TariffRepositoryImpl) Save(page *models.TariffPage) error {
	page.ID = models.TariffPageID
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"exchange_rate", "exchange_date", "allow_user_historical_rates", "companies", "updated_at",
		}),
	}).Create(page).Error
}

func (r *TariffRepositoryImpl) UpdateExchange(date string, rate float64) error {
	page := models.TariffPage{
		ID:           models.TariffPageID,
		ExchangeRate: rate,
		ExchangeDate: date,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"exchange_rate", "exchange_date", "updated_at",
		}),
	}).Create(&page).Error
}

func (r *TariffRepositoryImpl) SetHistoricalRatesFlag(allowed bool) error {
	page := models.TariffPage{
		ID:                       models.TariffPageID,
		AllowUserHistoricalRates: allowed,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"allow_user_historical_rates", "updated_at",
		}),
	}).Create(&page).Error
}
