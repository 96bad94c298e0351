package services

import (
	"net/http"
	"testing"

	"marlink_backend/internal/services/dto"
	"marlink_backend/internal/tariff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTariffService_GetPageDefaultsWhenEmpty(t *testing.T) {
	tariffRepo := &fakeTariffRepo{}
	svc := NewTariffService(tariffRepo, newFakeRateRepo())

	page, err := svc.GetPage()
	require.NoError(t, err)

	assert.Zero(t, page.ExchangeRate)
	assert.Empty(t, page.ExchangeDate)
	assert.False(t, page.AllowUserHistoricalRates)
	assert.NotNil(t, page.Companies)
	assert.Empty(t, page.Companies)

	// The lazy default is not persisted by a read.
	assert.Nil(t, tariffRepo.page)
}

func TestTariffService_ReplacePageValidates(t *testing.T) {
	tariffRepo := &fakeTariffRepo{}
	svc := NewTariffService(tariffRepo, newFakeRateRepo())

	req := &dto.TariffPageUpdateRequest{
		Companies: []tariff.Company{{
			Name: "Marlink Shipping",
			Tables: []tariff.Table{{
				Title:   "Ragged",
				Columns: []string{"A", "B"},
				Rows:    [][]any{{"only one"}},
			}},
		}},
	}

	_, err := svc.ReplacePage(req)
	assertHTTPCode(t, err, http.StatusBadRequest)
	assert.Nil(t, tariffRepo.page, "invalid document must not be saved")
}

func TestTariffService_ReplacePageRoundTrip(t *testing.T) {
	tariffRepo := &fakeTariffRepo{}
	svc := NewTariffService(tariffRepo, newFakeRateRepo())

	req := &dto.TariffPageUpdateRequest{
		ExchangeRate: 285.50,
		ExchangeDate: "2024-01-20",
		Companies: []tariff.Company{{
			Name: "Marlink Shipping",
			Tables: []tariff.Table{{
				Title:   "Import",
				Columns: []string{"Container", "Rate"},
				Rows:    [][]any{{"20ft", 100.0}},
			}},
		}},
	}

	saved, err := svc.ReplacePage(req)
	require.NoError(t, err)
	assert.Equal(t, 285.50, saved.ExchangeRate)

	got, err := svc.GetPage()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-20", got.ExchangeDate)
	require.Len(t, got.Companies, 1)
	assert.Equal(t, "Marlink Shipping", got.Companies[0].Name)
}

func TestTariffService_UpdateExchangeDualWrite(t *testing.T) {
	tariffRepo := &fakeTariffRepo{}
	rateRepo := newFakeRateRepo()
	svc := NewTariffService(tariffRepo, rateRepo)

	err := svc.UpdateExchange(&dto.ExchangeUpdateRequest{
		ExchangeDate: "2024-01-20",
		ExchangeRate: 285.50,
	})
	require.NoError(t, err)

	// Singleton updated
	page, err := svc.GetPage()
	require.NoError(t, err)
	assert.Equal(t, 285.50, page.ExchangeRate)
	assert.Equal(t, "2024-01-20", page.ExchangeDate)

	// History record written
	record, err := rateRepo.FindByDate("2024-01-20")
	require.NoError(t, err)
	assert.Equal(t, 285.50, record.Rate)
}

func TestTariffService_UpdateExchangeIdempotent(t *testing.T) {
	tariffRepo := &fakeTariffRepo{}
	rateRepo := newFakeRateRepo()
	svc := NewTariffService(tariffRepo, rateRepo)

	req := &dto.ExchangeUpdateRequest{ExchangeDate: "2024-01-20", ExchangeRate: 285.50}
	require.NoError(t, svc.UpdateExchange(req))
	require.NoError(t, svc.UpdateExchange(req))

	records, err := rateRepo.FindAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestTariffService_UpdateExchangeHistoryWriteMayFail(t *testing.T) {
	tariffRepo := &fakeTariffRepo{}
	rateRepo := newFakeRateRepo()
	rateRepo.upsertErr = assert.AnError
	svc := NewTariffService(tariffRepo, rateRepo)

	err := svc.UpdateExchange(&dto.ExchangeUpdateRequest{
		ExchangeDate: "2024-01-20",
		ExchangeRate: 285.50,
	})
	require.Error(t, err)

	// First write is not rolled back; the page is ahead of the history.
	assert.Equal(t, "2024-01-20", tariffRepo.page.ExchangeDate)
	_, findErr := rateRepo.FindByDate("2024-01-20")
	assert.Error(t, findErr)
}

func TestTariffService_EditorFlow(t *testing.T) {
	svc := NewTariffService(&fakeTariffRepo{}, newFakeRateRepo())

	page, err := svc.AddCompany("Marlink Shipping")
	require.NoError(t, err)
	require.Len(t, page.Companies, 1)

	page, err = svc.AddTable(0, "Import rates")
	require.NoError(t, err)
	require.Len(t, page.Companies[0].Tables, 1)
	table := page.Companies[0].Tables[0]
	assert.Len(t, table.Rows, 1)
	assert.Len(t, table.Columns, 1)

	page, err = svc.AddColumn(0, 0, "Rate")
	require.NoError(t, err)
	page, err = svc.AddRow(0, 0)
	require.NoError(t, err)
	table = page.Companies[0].Tables[0]
	assert.Len(t, table.Columns, 2)
	assert.Len(t, table.Rows, 2)
	for _, row := range table.Rows {
		assert.Len(t, row, 2)
	}

	page, err = svc.ResizeTable(0, 0, 4, 3)
	require.NoError(t, err)
	table = page.Companies[0].Tables[0]
	assert.Len(t, table.Rows, 4)
	assert.Len(t, table.Columns, 3)

	page, err = svc.RenameCompany(0, "Marlink Freight")
	require.NoError(t, err)
	assert.Equal(t, "Marlink Freight", page.Companies[0].Name)
}

func TestTariffService_EditorErrorsMapped(t *testing.T) {
	svc := NewTariffService(&fakeTariffRepo{}, newFakeRateRepo())

	_, err := svc.AddCompany("Marlink Shipping")
	require.NoError(t, err)
	_, err = svc.AddTable(0, "Import rates")
	require.NoError(t, err)

	// Out-of-range coordinates are 404s.
	_, err = svc.AddRow(5, 0)
	assertHTTPCode(t, err, http.StatusNotFound)
	_, err = svc.AddRow(0, 3)
	assertHTTPCode(t, err, http.StatusNotFound)
	_, err = svc.DeleteRow(0, 0, 7)
	assertHTTPCode(t, err, http.StatusNotFound)

	// Structural refusals are 400s.
	_, err = svc.DeleteRow(0, 0, 0)
	assertHTTPCode(t, err, http.StatusBadRequest)
	_, err = svc.DeleteColumn(0, 0, 0)
	assertHTTPCode(t, err, http.StatusBadRequest)
	_, err = svc.ResizeTable(0, 0, tariff.MaxRows+1, 1)
	assertHTTPCode(t, err, http.StatusBadRequest)
}

func TestTariffService_SetHistoricalRatesFlag(t *testing.T) {
	tariffRepo := &fakeTariffRepo{}
	svc := NewTariffService(tariffRepo, newFakeRateRepo())

	require.NoError(t, svc.SetHistoricalRatesFlag(true))
	page, err := svc.GetPage()
	require.NoError(t, err)
	assert.True(t, page.AllowUserHistoricalRates)

	require.NoError(t, svc.SetHistoricalRatesFlag(false))
	page, err = svc.GetPage()
	require.NoError(t, err)
	assert.False(t, page.AllowUserHistoricalRates)
}
