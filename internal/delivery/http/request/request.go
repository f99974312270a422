package request

import "github.com/user/seo-monitor/internal/entity"

type URLsRequest struct {
	URLs []string `json:"urls"`
	// Force bypasses the analysis cache.
	Force bool `json:"force,omitempty"`
}

type GroupRequest struct {
	Records []entity.URLRecord `json:"records"`
}

type CannibalizationRequest struct {
	Queries []entity.QueryRecord `json:"queries"`
}

type AuditRequest struct {
	URL   string                 `json:"url"`
	Slugs *entity.LocalizedSlugs `json:"slugs,omitempty"`
}

type TrendRequest struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
}
