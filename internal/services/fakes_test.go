package services

import (
	"sort"

	"marlink_backend/internal/models"
	"marlink_backend/internal/repositories"
)

// In-memory repository doubles used by the service tests.

type fakeRateRepo struct {
	rates map[string]float64
	// forced error for failure-path tests
	upsertErr error
}

func newFakeRateRepo() *fakeRateRepo {
	return &fakeRateRepo{rates: make(map[string]float64)}
}

func (f *fakeRateRepo) Upsert(date string, rate float64) (*models.ExchangeRate, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	f.rates[date] = rate
	return &models.ExchangeRate{Date: date, Rate: rate}, nil
}

func (f *fakeRateRepo) FindByDate(date string) (*models.ExchangeRate, error) {
	rate, ok := f.rates[date]
	if !ok {
		return nil, repositories.ErrExchangeRateNotFound
	}
	return &models.ExchangeRate{Date: date, Rate: rate}, nil
}

func (f *fakeRateRepo) FindEffective(date string) (*models.ExchangeRate, error) {
	best := ""
	for d := range f.rates {
		if d <= date && d > best {
			best = d
		}
	}
	if best == "" {
		return nil, repositories.ErrExchangeRateNotFound
	}
	return &models.ExchangeRate{Date: best, Rate: f.rates[best]}, nil
}

func (f *fakeRateRepo) FindAll() ([]models.ExchangeRate, error) {
	dates := make([]string, 0, len(f.rates))
	for d := range f.rates {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	records := make([]models.ExchangeRate, 0, len(dates))
	for _, d := range dates {
		records = append(records, models.ExchangeRate{Date: d, Rate: f.rates[d]})
	}
	return records, nil
}

type fakeTariffRepo struct {
	page *models.TariffPage
}

func (f *fakeTariffRepo) Get() (*models.TariffPage, error) {
	if f.page == nil {
		return nil, repositories.ErrTariffPageNotFound
	}
	copied := *f.page
	return &copied, nil
}

func (f *fakeTariffRepo) Save(page *models.TariffPage) error {
	copied := *page
	copied.ID = models.TariffPageID
	f.page = &copied
	return nil
}

func (f *fakeTariffRepo) UpdateExchange(date string, rate float64) error {
	if f.page == nil {
		f.page = &models.TariffPage{ID: models.TariffPageID}
	}
	f.page.ExchangeDate = date
	f.page.ExchangeRate = rate
	return nil
}

func (f *fakeTariffRepo) SetHistoricalRatesFlag(allowed bool) error {
	if f.page == nil {
		f.page = &models.TariffPage{ID: models.TariffPageID}
	}
	f.page.AllowUserHistoricalRates = allowed
	return nil
}
