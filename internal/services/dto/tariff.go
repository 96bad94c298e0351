package dto

import "marlink_backend/internal/tariff"

// TariffPageResponse is the whole tariff document as the client sees it.
type TariffPageResponse struct {
	ExchangeRate             float64          `json:"exchangeRate"`
	ExchangeDate             string           `json:"exchangeDate"`
	AllowUserHistoricalRates bool             `json:"allowUserHistoricalRates"`
	Companies                []tariff.Company `json:"companies"`
}

// TariffPageUpdateRequest replaces the whole document on PUT.
type TariffPageUpdateRequest struct {
	ExchangeRate             float64          `json:"exchangeRate"`
	ExchangeDate             string           `json:"exchangeDate" validate:"omitempty,dateformat"`
	AllowUserHistoricalRates bool             `json:"allowUserHistoricalRates"`
	Companies                []tariff.Company `json:"companies"`
}

// ExchangeUpdateRequest is the unified "current rate + date" update.
type ExchangeUpdateRequest struct {
	ExchangeDate string  `json:"exchangeDate" validate:"required,dateformat"`
	ExchangeRate float64 `json:"exchangeRate" validate:"required,gt=0"`
}

type AddCompanyRequest struct {
	Name string `json:"name" validate:"required"`
}

type RenameCompanyRequest struct {
	Name string `json:"name" validate:"required"`
}

type AddTableRequest struct {
	Title string `json:"title" validate:"required"`
}

type AddColumnRequest struct {
	Header string `json:"header"`
}

// HistoricalRatesFlagRequest toggles public access to historical rates.
// Pointer so an explicit false survives required-validation.
type HistoricalRatesFlagRequest struct {
	Allowed *bool `json:"allowed" validate:"required"`
}

type ResizeTableRequest struct {
	Rows    int `json:"rows" validate:"required,min=1"`
	Columns int `json:"columns" validate:"required,min=1"`
}
