package response

import "github.com/user/seo-monitor/internal/entity"

type NormalizedURL struct {
	Original   string `json:"original"`
	Normalized string `json:"normalized"`
}

type NormalizeResponse struct {
	Results []NormalizedURL `json:"results"`
}

type AnalyzeResponse struct {
	Results []entity.URLAnalysis `json:"results"`
}

type ReportListResponse struct {
	Reports []*entity.StoredReport `json:"reports"`
}

// TrendResponse mirrors a dashboard metric card. PercentChange is omitted
// when both periods are zero.
type TrendResponse struct {
	Current       float64      `json:"current"`
	Previous      float64      `json:"previous"`
	PercentChange *float64     `json:"percent_change,omitempty"`
	Display       string       `json:"display"`
	Trend         entity.Trend `json:"trend"`
}

type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
