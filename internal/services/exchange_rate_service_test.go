package services

import (
	"net/http"
	"testing"

	"marlink_backend/internal/services/dto"
	"marlink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertHTTPCode(t *testing.T, err error, want int) {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected *apperrors.AppError, got %v", err)
	assert.Equal(t, want, appErr.HTTPCode)
}

func TestExchangeRateService_EffectiveFloorLookup(t *testing.T) {
	rateRepo := newFakeRateRepo()
	svc := NewExchangeRateService(rateRepo, &fakeTariffRepo{})

	_, err := svc.Upsert(&dto.RateUpsertRequest{Date: "2024-01-10", Rate: 280.00})
	require.NoError(t, err)
	_, err = svc.Upsert(&dto.RateUpsertRequest{Date: "2024-01-20", Rate: 285.50})
	require.NoError(t, err)

	// Exact hit
	result, err := svc.GetEffective("2024-01-20")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-20", result.SourceDate)
	assert.Equal(t, 285.50, result.Rate)

	// Between two records: floor to the earlier one
	result, err = svc.GetEffective("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", result.RequestedDate)
	assert.Equal(t, "2024-01-10", result.SourceDate)
	assert.Equal(t, 280.00, result.Rate)

	// After the newest record: floor to the newest
	result, err = svc.GetEffective("2024-02-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-20", result.SourceDate)
}

func TestExchangeRateService_EffectiveBeforeEarliest(t *testing.T) {
	rateRepo := newFakeRateRepo()
	svc := NewExchangeRateService(rateRepo, &fakeTariffRepo{})

	_, err := svc.Upsert(&dto.RateUpsertRequest{Date: "2024-01-10", Rate: 280.00})
	require.NoError(t, err)

	_, err = svc.GetEffective("2024-01-05")
	assertHTTPCode(t, err, http.StatusNotFound)
}

func TestExchangeRateService_EffectiveMalformedDate(t *testing.T) {
	svc := NewExchangeRateService(newFakeRateRepo(), &fakeTariffRepo{})

	for _, bad := range []string{"2024-13-40", "20240110", "not-a-date", "2024-1-1"} {
		_, err := svc.GetEffective(bad)
		assertHTTPCode(t, err, http.StatusBadRequest)
	}
}

func TestExchangeRateService_UpsertIsIdempotent(t *testing.T) {
	rateRepo := newFakeRateRepo()
	svc := NewExchangeRateService(rateRepo, &fakeTariffRepo{})

	_, err := svc.Upsert(&dto.RateUpsertRequest{Date: "2024-01-10", Rate: 280.00})
	require.NoError(t, err)
	_, err = svc.Upsert(&dto.RateUpsertRequest{Date: "2024-01-10", Rate: 290.00})
	require.NoError(t, err)

	records, err := svc.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 290.00, records[0].Rate)
}

func TestExchangeRateService_ListNewestFirst(t *testing.T) {
	rateRepo := newFakeRateRepo()
	svc := NewExchangeRateService(rateRepo, &fakeTariffRepo{})

	for _, d := range []string{"2024-01-10", "2024-03-01", "2024-02-15"} {
		_, err := svc.Upsert(&dto.RateUpsertRequest{Date: d, Rate: 280.00})
		require.NoError(t, err)
	}

	records, err := svc.List()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2024-03-01", records[0].Date)
	assert.Equal(t, "2024-01-10", records[2].Date)
}

func TestExchangeRateService_PublicGatedByFlag(t *testing.T) {
	rateRepo := newFakeRateRepo()
	tariffRepo := &fakeTariffRepo{}
	svc := NewExchangeRateService(rateRepo, tariffRepo)

	_, err := svc.Upsert(&dto.RateUpsertRequest{Date: "2024-01-10", Rate: 280.00})
	require.NoError(t, err)

	// No tariff page at all: flag counts as disabled.
	_, err = svc.GetEffectivePublic("2024-01-15")
	assertHTTPCode(t, err, http.StatusForbidden)

	require.NoError(t, tariffRepo.SetHistoricalRatesFlag(false))
	_, err = svc.GetEffectivePublic("2024-01-15")
	assertHTTPCode(t, err, http.StatusForbidden)

	require.NoError(t, tariffRepo.SetHistoricalRatesFlag(true))
	result, err := svc.GetEffectivePublic("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", result.SourceDate)
}

func TestExchangeRateService_PublicFlagWinsOverBadDate(t *testing.T) {
	svc := NewExchangeRateService(newFakeRateRepo(), &fakeTariffRepo{})

	// Disabled flag answers 403 even for a malformed date.
	_, err := svc.GetEffectivePublic("garbage")
	assertHTTPCode(t, err, http.StatusForbidden)
}
