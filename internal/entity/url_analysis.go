package entity

// VariantType classifies how an observed URL deviates from its canonical form.
type VariantType string

const (
	VariantProtocol      VariantType = "protocol_variant"
	VariantWWW           VariantType = "www_variant"
	VariantCase          VariantType = "case_variant"
	VariantQueryParam    VariantType = "query_param"
	VariantFragment      VariantType = "fragment"
	VariantIndexHTML     VariantType = "index_html"
	VariantTrailingSlash VariantType = "trailing_slash"
	VariantLegacyCMS     VariantType = "legacy_cms"
	// VariantCanonical is only ever the single entry of a variant list.
	VariantCanonical VariantType = "canonical"
)

// VariantTypes lists every variant type in detection order, canonical last.
var VariantTypes = []VariantType{
	VariantProtocol,
	VariantWWW,
	VariantCase,
	VariantQueryParam,
	VariantFragment,
	VariantIndexHTML,
	VariantTrailingSlash,
	VariantLegacyCMS,
	VariantCanonical,
}

// URLAnalysis is the result of analyzing a single URL.
//
// An empty VariantTypes list means the URL could not be parsed and was not
// classified at all. It is not the same as a canonical URL.
type URLAnalysis struct {
	Original     string        `json:"original"`
	Normalized   string        `json:"normalized"`
	Path         string        `json:"path"`
	Language     Language      `json:"language,omitempty"`
	IsCanonical  bool          `json:"is_canonical"`
	VariantTypes []VariantType `json:"variant_types"`
	CanonicalURL string        `json:"canonical_url"`
	Issues       []string      `json:"issues"`
}

// URLRecord is an observed URL with optional search metrics.
type URLRecord struct {
	URL         string `json:"url"`
	Clicks      *int   `json:"clicks,omitempty"`
	Impressions *int   `json:"impressions,omitempty"`
}

// URLVariant is a non-canonical URL mapped into a group.
type URLVariant struct {
	URL         string      `json:"url"`
	Type        VariantType `json:"type"`
	Clicks      *int        `json:"clicks,omitempty"`
	Impressions *int        `json:"impressions,omitempty"`
}

// URLVariantGroup collects every observed URL sharing one canonical URL.
type URLVariantGroup struct {
	CanonicalURL     string       `json:"canonical_url"`
	CanonicalPath    string       `json:"canonical_path"`
	Language         Language     `json:"language,omitempty"`
	Variants         []URLVariant `json:"variants"`
	TotalClicks      int          `json:"total_clicks"`
	TotalImpressions int          `json:"total_impressions"`
}
