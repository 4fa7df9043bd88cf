package models

// PredictionQuery carries the fixture context of a prediction request.
type PredictionQuery struct {
	Opponent string `json:"opponent" validate:"required"`
	IsHome   bool   `json:"is_home"`
	Position string `json:"position" validate:"required"`
}

type ConvertDataResponse struct {
	Status           string `json:"status"`
	Player           string `json:"player"`
	ConvertedMatches int    `json:"converted_matches"`
	Message          string `json:"message"`
}

type SeasonComparison struct {
	Player  string                         `json:"player"`
	Seasons map[string]*PerformanceMetrics `json:"seasons"`
}
