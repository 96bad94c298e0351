package dto

// RateUpsertRequest saves (or overwrites) the rate for one calendar date.
type RateUpsertRequest struct {
	Date string  `json:"date" validate:"required,dateformat"`
	Rate float64 `json:"rate" validate:"required,gt=0"`
}

// EffectiveRateResponse distinguishes the requested date from the date the
// returned rate was actually saved under.
type EffectiveRateResponse struct {
	RequestedDate string  `json:"requestedDate"`
	SourceDate    string  `json:"sourceDate"`
	Rate          float64 `json:"rate"`
}
