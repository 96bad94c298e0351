package services

import (
	"marlink_backend/internal/models"
	"marlink_backend/internal/repositories"
	"marlink_backend/internal/services/dto"
	"marlink_backend/internal/tariff"
	"marlink_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type TariffService interface {
	GetPage() (*dto.TariffPageResponse, error)
	ReplacePage(req *dto.TariffPageUpdateRequest) (*dto.TariffPageResponse, error)

	// UpdateExchange sets the displayed rate+date on the page and records
	// the pair into the dated rate history.
	UpdateExchange(req *dto.ExchangeUpdateRequest) error

	SetHistoricalRatesFlag(allowed bool) error

	// Structural editing of the companies/tables document.
	AddCompany(name string) (*dto.TariffPageResponse, error)
	RenameCompany(companyIdx int, name string) (*dto.TariffPageResponse, error)
	DeleteCompany(companyIdx int) (*dto.TariffPageResponse, error)
	AddTable(companyIdx int, title string) (*dto.TariffPageResponse, error)
	DeleteTable(companyIdx, tableIdx int) (*dto.TariffPageResponse, error)
	AddRow(companyIdx, tableIdx int) (*dto.TariffPageResponse, error)
	DeleteRow(companyIdx, tableIdx, rowIdx int) (*dto.TariffPageResponse, error)
	AddColumn(companyIdx, tableIdx int, header string) (*dto.TariffPageResponse, error)
	DeleteColumn(companyIdx, tableIdx, colIdx int) (*dto.TariffPageResponse, error)
	ResizeTable(companyIdx, tableIdx, rows, cols int) (*dto.TariffPageResponse, error)
}

type TariffServiceImpl struct {
	tariffRepo repositories.TariffRepository
	rateRepo   repositories.ExchangeRateRepository
}

func NewTariffService(
	tariffRepo repositories.TariffRepository,
	rateRepo repositories.ExchangeRateRepository,
) TariffService {
	return &TariffServiceImpl{
		tariffRepo: tariffRepo,
		rateRepo:   rateRepo,
	}
}

func (s *TariffServiceImpl) GetPage() (*dto.TariffPageResponse, error) {
	page, err := s.loadOrDefault()
	if err != nil {
		return nil, err
	}
	return toPageResponse(page), nil
}

func (s *TariffServiceImpl) ReplacePage(req *dto.TariffPageUpdateRequest) (*dto.TariffPageResponse, error) {
	if problems := tariff.Validate(req.Companies); problems != nil {
		return nil, apperrors.ValidationError(problems)
	}

	page := &models.TariffPage{
		ExchangeRate:             req.ExchangeRate,
		ExchangeDate:             req.ExchangeDate,
		AllowUserHistoricalRates: req.AllowUserHistoricalRates,
		Companies:                datatypes.NewJSONType(req.Companies),
	}
	if err := s.tariffRepo.Save(page); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toPageResponse(page), nil
}

// UpdateExchange performs two writes: the singleton first, then the dated
// history record. The pair is intentionally not transactional; this mirrors
// the original behavior of the endpoint, so a failure after the first write
// can leave the page ahead of the history.
func (s *TariffServiceImpl) UpdateExchange(req *dto.ExchangeUpdateRequest) error {
	if err := s.tariffRepo.UpdateExchange(req.ExchangeDate, req.ExchangeRate); err != nil {
		return apperrors.InternalError(err)
	}
	if _, err := s.rateRepo.Upsert(req.ExchangeDate, req.ExchangeRate); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *TariffServiceImpl) SetHistoricalRatesFlag(allowed bool) error {
	if err := s.tariffRepo.SetHistoricalRatesFlag(allowed); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *TariffServiceImpl) AddCompany(name string) (*dto.TariffPageResponse, error) {
	return s.editCompanies(func(companies []tariff.Company) ([]tariff.Company, error) {
		return tariff.AddCompany(companies, name), nil
	})
}

func (s *TariffServiceImpl) RenameCompany(companyIdx int, name string) (*dto.TariffPageResponse, error) {
	return s.editCompanies(func(companies []tariff.Company) ([]tariff.Company, error) {
		if err := tariff.RenameCompany(companies, companyIdx, name); err != nil {
			return nil, err
		}
		return companies, nil
	})
}

func (s *TariffServiceImpl) DeleteCompany(companyIdx int) (*dto.TariffPageResponse, error) {
	return s.editCompanies(func(companies []tariff.Company) ([]tariff.Company, error) {
		return tariff.DeleteCompany(companies, companyIdx)
	})
}

func (s *TariffServiceImpl) AddTable(companyIdx int, title string) (*dto.TariffPageResponse, error) {
	return s.editCompanies(func(companies []tariff.Company) ([]tariff.Company, error) {
		if companyIdx < 0 || companyIdx >= len(companies) {
			return nil, tariff.ErrCompanyOutOfRange
		}
		tariff.AddTable(&companies[companyIdx], title)
		return companies, nil
	})
}

func (s *TariffServiceImpl) DeleteTable(companyIdx, tableIdx int) (*dto.TariffPageResponse, error) {
	return s.editCompanies(func(companies []tariff.Company) ([]tariff.Company, error) {
		if companyIdx < 0 || companyIdx >= len(companies) {
			return nil, tariff.ErrCompanyOutOfRange
		}
		if err := tariff.DeleteTable(&companies[companyIdx], tableIdx); err != nil {
			return nil, err
		}
		return companies, nil
	})
}

func (s *TariffServiceImpl) AddRow(companyIdx, tableIdx int) (*dto.TariffPageResponse, error) {
	return s.editTable(companyIdx, tableIdx, tariff.AddRow)
}

func (s *TariffServiceImpl) DeleteRow(companyIdx, tableIdx, rowIdx int) (*dto.TariffPageResponse, error) {
	return s.editTable(companyIdx, tableIdx, func(t *tariff.Table) error {
		return tariff.DeleteRow(t, rowIdx)
	})
}

func (s *TariffServiceImpl) AddColumn(companyIdx, tableIdx int, header string) (*dto.TariffPageResponse, error) {
	return s.editTable(companyIdx, tableIdx, func(t *tariff.Table) error {
		return tariff.AddColumn(t, header)
	})
}

func (s *TariffServiceImpl) DeleteColumn(companyIdx, tableIdx, colIdx int) (*dto.TariffPageResponse, error) {
	return s.editTable(companyIdx, tableIdx, func(t *tariff.Table) error {
		return tariff.DeleteColumn(t, colIdx)
	})
}

func (s *TariffServiceImpl) ResizeTable(companyIdx, tableIdx, rows, cols int) (*dto.TariffPageResponse, error) {
	return s.editTable(companyIdx, tableIdx, func(t *tariff.Table) error {
		return tariff.Resize(t, rows, cols)
	})
}

// --- helpers ---

// loadOrDefault returns the stored singleton or an empty page; the empty
// page is not persisted until the first write.
func (s *TariffServiceImpl) loadOrDefault() (*models.TariffPage, error) {
	page, err := s.tariffRepo.Get()
	if err != nil {
		if apperrors.Is(err, repositories.ErrTariffPageNotFound) {
			return &models.TariffPage{
				ID:        models.TariffPageID,
				Companies: datatypes.NewJSONType([]tariff.Company{}),
			}, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return page, nil
}

func (s *TariffServiceImpl) editCompanies(edit func([]tariff.Company) ([]tariff.Company, error)) (*dto.TariffPageResponse, error) {
	page, err := s.loadOrDefault()
	if err != nil {
		return nil, err
	}

	companies, err := edit(page.Companies.Data())
	if err != nil {
		return nil, mapEditorError(err)
	}

	page.Companies = datatypes.NewJSONType(companies)
	if err := s.tariffRepo.Save(page); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toPageResponse(page), nil
}

func (s *TariffServiceImpl) editTable(companyIdx, tableIdx int, edit func(*tariff.Table) error) (*dto.TariffPageResponse, error) {
	return s.editCompanies(func(companies []tariff.Company) ([]tariff.Company, error) {
		if companyIdx < 0 || companyIdx >= len(companies) {
			return nil, tariff.ErrCompanyOutOfRange
		}
		tables := companies[companyIdx].Tables
		if tableIdx < 0 || tableIdx >= len(tables) {
			return nil, tariff.ErrTableOutOfRange
		}
		if err := edit(&tables[tableIdx]); err != nil {
			return nil, err
		}
		return companies, nil
	})
}

func mapEditorError(err error) error {
	switch {
	case apperrors.Is(err, tariff.ErrCompanyOutOfRange),
		apperrors.Is(err, tariff.ErrTableOutOfRange),
		apperrors.Is(err, tariff.ErrRowOutOfRange),
		apperrors.Is(err, tariff.ErrColOutOfRange):
		return apperrors.NewNotFoundError("tariff", err.Error())
	default:
		return apperrors.NewBadRequestError(err.Error())
	}
}

func toPageResponse(page *models.TariffPage) *dto.TariffPageResponse {
	companies := page.Companies.Data()
	if companies == nil {
		companies = []tariff.Company{}
	}
	return &dto.TariffPageResponse{
		ExchangeRate:             page.ExchangeRate,
		ExchangeDate:             page.ExchangeDate,
		AllowUserHistoricalRates: page.AllowUserHistoricalRates,
		Companies:                companies,
	}
}
