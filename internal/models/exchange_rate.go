package models

// ExchangeRate is one saved rate per calendar date. Dates are stored as
// ISO YYYY-MM-DD strings, which sort correctly both as text and as an index,
// so the effective ("floor") lookup is a single ordered range query.
type ExchangeRate struct {
	BaseModel
	Date string  `gorm:"type:varchar(10);uniqueIndex;not null" json:"date"`
	Rate float64 `gorm:"not null" json:"rate"`
}
