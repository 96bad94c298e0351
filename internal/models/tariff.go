package models

import (
	"time"

	"marlink_backend/internal/tariff"

	"gorm.io/datatypes"
)

// TariffPageID is the fixed primary key of the tariff page singleton row.
const TariffPageID = "main"

// TariffPage is the singleton document behind the public tariffs page.
// Created lazily on first admin write, never deleted. Company blocks and
// their tables are stored as one JSON column; the tariff package owns
// their shape and editing rules.
type TariffPage struct {
	ID                       string                               `gorm:"primaryKey" json:"-"`
	ExchangeRate             float64                              `json:"exchangeRate"`
	ExchangeDate             string                               `gorm:"type:varchar(10)" json:"exchangeDate"`
	AllowUserHistoricalRates bool                                 `json:"allowUserHistoricalRates"`
	Companies                datatypes.JSONType[[]tariff.Company] `json:"-"`
	CreatedAt                time.Time                            `gorm:"default:now()" json:"createdAt"`
	UpdatedAt                time.Time                            `gorm:"autoUpdateTime" json:"updatedAt"`
}
