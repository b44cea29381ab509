package models

// Requests for HTTP endpoints. Defined in domain for consistency and reuse.

type ForecastRequest struct {
	Ticker string `query:"ticker" json:"ticker" validate:"required,min=1,max=12"`
	Days   int    `query:"days" json:"days" default:"7" validate:"gte=1,lte=365"`
}

type TrainRequest struct {
	Ticker string `json:"ticker" validate:"required,min=1,max=12"`
	Start  string `json:"start,omitempty" validate:"omitempty,datetime=2006-01-02"`
	End    string `json:"end,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// ForecastResponse is the payload served for a forecast request.
type ForecastResponse struct {
	Ticker   string        `json:"ticker"`
	Days     int           `json:"days"`
	Forecast *DateValueMap `json:"forecast"`
}

// TrainResponse is the payload served after a training run.
type TrainResponse struct {
	Ticker    string `json:"ticker"`
	TrainedAt string `json:"trained_at"`
}
