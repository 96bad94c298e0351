package services

import (
	"marlink_backend/internal/models"
	"marlink_backend/internal/repositories"
	"marlink_backend/internal/services/dto"
	"marlink_backend/internal/validator"
	"marlink_backend/pkg/apperrors"
)

type ExchangeRateService interface {
	Upsert(req *dto.RateUpsertRequest) (*models.ExchangeRate, error)
	List() ([]models.ExchangeRate, error)
	GetByDate(date string) (*models.ExchangeRate, error)

	// GetEffective resolves the latest saved rate on or before the
	// requested date (admin tier).
	GetEffective(date string) (*dto.EffectiveRateResponse, error)

	// GetEffectivePublic is the same lookup gated by the
	// allowUserHistoricalRates flag on the tariff page.
	GetEffectivePublic(date string) (*dto.EffectiveRateResponse, error)
}

type ExchangeRateServiceImpl struct {
	rateRepo   repositories.ExchangeRateRepository
	tariffRepo repositories.TariffRepository
}

func NewExchangeRateService(
	rateRepo repositories.ExchangeRateRepository,
	tariffRepo repositories.TariffRepository,
) ExchangeRateService {
	return &ExchangeRateServiceImpl{
		rateRepo:   rateRepo,
		tariffRepo: tariffRepo,
	}
}

func (s *ExchangeRateServiceImpl) Upsert(req *dto.RateUpsertRequest) (*models.ExchangeRate, error) {
	record, err := s.rateRepo.Upsert(req.Date, req.Rate)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return record, nil
}

func (s *ExchangeRateServiceImpl) List() ([]models.ExchangeRate, error) {
	records, err := s.rateRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return records, nil
}

func (s *ExchangeRateServiceImpl) GetByDate(date string) (*models.ExchangeRate, error) {
	if !validator.IsISODate(date) {
		return nil, apperrors.ValidationError(map[string]string{"date": "Must be a date in YYYY-MM-DD format"})
	}

	record, err := s.rateRepo.FindByDate(date)
	if err != nil {
		if apperrors.Is(err, repositories.ErrExchangeRateNotFound) {
			return nil, apperrors.NewNotFoundError("exchange-rates", "No exchange rate saved for "+date)
		}
		return nil, apperrors.InternalError(err)
	}
	return record, nil
}

func (s *ExchangeRateServiceImpl) GetEffective(date string) (*dto.EffectiveRateResponse, error) {
	if !validator.IsISODate(date) {
		return nil, apperrors.ValidationError(map[string]string{"date": "Must be a date in YYYY-MM-DD format"})
	}

	record, err := s.rateRepo.FindEffective(date)
	if err != nil {
		if apperrors.Is(err, repositories.ErrExchangeRateNotFound) {
			return nil, apperrors.NewNotFoundError("exchange-rates", "No exchange rate saved on or before "+date)
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.EffectiveRateResponse{
		RequestedDate: date,
		SourceDate:    record.Date,
		Rate:          record.Rate,
	}, nil
}

func (s *ExchangeRateServiceImpl) GetEffectivePublic(date string) (*dto.EffectiveRateResponse, error) {
	// The flag gate comes first: a disabled flag wins over date validity.
	allowed, err := s.historicalRatesAllowed()
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.NewForbiddenError("Historical rates are not publicly available")
	}

	return s.GetEffective(date)
}

func (s *ExchangeRateServiceImpl) historicalRatesAllowed() (bool, error) {
	page, err := s.tariffRepo.Get()
	if err != nil {
		if apperrors.Is(err, repositories.ErrTariffPageNotFound) {
			// No tariff page yet means the flag was never enabled.
			return false, nil
		}
		return false, apperrors.InternalError(err)
	}
	return page.AllowUserHistoricalRates, nil
}
