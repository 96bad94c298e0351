package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"marlink_backend/internal/models"
	"marlink_backend/internal/services"
	"marlink_backend/internal/services/dto"
	"marlink_backend/internal/validator"
	"marlink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubRateService struct {
	publicAllowed bool
}

func (s *stubRateService) Upsert(req *dto.RateUpsertRequest) (*models.ExchangeRate, error) {
	return &models.ExchangeRate{Date: req.Date, Rate: req.Rate}, nil
}

func (s *stubRateService) List() ([]models.ExchangeRate, error) {
	return []models.ExchangeRate{}, nil
}

func (s *stubRateService) GetByDate(date string) (*models.ExchangeRate, error) {
	return nil, apperrors.NewNotFoundError("exchange-rates", "No exchange rate saved for "+date)
}

func (s *stubRateService) GetEffective(date string) (*dto.EffectiveRateResponse, error) {
	return &dto.EffectiveRateResponse{RequestedDate: date, SourceDate: "2024-01-10", Rate: 280}, nil
}

func (s *stubRateService) GetEffectivePublic(date string) (*dto.EffectiveRateResponse, error) {
	if !s.publicAllowed {
		return nil, apperrors.NewForbiddenError("Historical rates are not publicly available")
	}
	return s.GetEffective(date)
}

var _ services.ExchangeRateService = (*stubRateService)(nil)

func newRateRouter(svc services.ExchangeRateService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewExchangeRateHandler(NewBaseHandler(validator.New()), svc)
	handler.RegisterRoutes(router.Group("/api"))
	return router
}

func TestExchangeRateHandler_PublicForbiddenByFlag(t *testing.T) {
	router := newRateRouter(&stubRateService{publicAllowed: false})

	req := httptest.NewRequest("GET", "/api/exchange-rates/effective-public/2024-01-15", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "not publicly available")
}

func TestExchangeRateHandler_PublicAllowed(t *testing.T) {
	router := newRateRouter(&stubRateService{publicAllowed: true})

	req := httptest.NewRequest("GET", "/api/exchange-rates/effective-public/2024-01-15", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sourceDate":"2024-01-10"`)
}

func TestExchangeRateHandler_AdminRoutesRequireToken(t *testing.T) {
	router := newRateRouter(&stubRateService{})

	req := httptest.NewRequest("GET", "/api/exchange-rates", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
