package models

// Sort criteria accepted by the ranker.
const (
	SortByPrice  = "price"
	SortByTime   = "time"
	SortByRating = "rating"
)

// Source tags identifying which vendor family produced a quote.
const (
	SourceTiedUp    = "TIED_UP"
	SourceAvailable = "AVAILABLE"
	SourceFTL       = "FTL_PARTNER"
	SourcePostal    = "POSTAL"
)

// ChargeBreakdown itemizes a zone-rate vendor's price. Line items are listed
// in evaluation order; Total is the unrounded authoritative sum used for
// ranking, display rounding happens separately.
type ChargeBreakdown struct {
	BaseFreight          float64 `json:"base_freight"`
	EffectiveBaseFreight float64 `json:"effective_base_freight"`
	Docket               float64 `json:"docket"`
	GreenTax             float64 `json:"green_tax"`
	DACC                 float64 `json:"dacc"`
	Misc                 float64 `json:"misc"`
	Fuel                 float64 `json:"fuel"`
	ROV                  float64 `json:"rov"`
	Insurance            float64 `json:"insurance"`
	FirstMile            float64 `json:"first_mile"`
	Appointment          float64 `json:"appointment"`
	Handling             float64 `json:"handling"`
	ODA                  float64 `json:"oda"`
	InvoiceCharge        float64 `json:"invoice_charge"`
	Total                float64 `json:"total"`
}

// VendorRating is display/ranking metadata from the rating provider. It
// never participates in pricing.
type VendorRating struct {
	Average    float64        `json:"average"`
	TotalCount int            `json:"total_count"`
	ByCategory map[string]int `json:"by_category,omitempty"`
}

// Quote is one vendor's priced offer for a calculation. Created once per
// vendor per request and never mutated afterwards except for display
// rounding; its lifetime is a single comparison response.
type Quote struct {
	ID          string `json:"id"`
	VendorKey   string `json:"vendor_key"`
	CompanyName string `json:"company_name"`
	SourceTag   string `json:"source_tag"`

	TotalCharges      float64 `json:"total_charges"`
	EstimatedTimeDays int     `json:"estimated_time_days"`
	Rating            float64 `json:"rating,omitempty"`

	IsTiedUp        bool `json:"is_tied_up"`
	IsSpecialVendor bool `json:"is_special_vendor"`
	// IsEstimated marks heuristic fallback prices substituted when precise
	// pricing failed; they are ranked like any other quote.
	IsEstimated bool `json:"is_estimated,omitempty"`
	// Unserviceable marks an explicit "service not available" entry from a
	// vendor source; the ranker drops these.
	Unserviceable bool `json:"-"`

	Breakdown *ChargeBreakdown `json:"breakdown,omitempty"`
}

// RankingCriteria is the user's sort choice plus ceilings. A zero ceiling
// disables that filter.
type RankingCriteria struct {
	SortBy      string  `json:"sort_by" validate:"omitempty,oneof=price time rating"`
	MaxPrice    float64 `json:"max_price" validate:"omitempty,gte=0"`
	MaxTimeDays int     `json:"max_time_days" validate:"omitempty,gte=0"`
	MinRating   float64 `json:"min_rating" validate:"omitempty,gte=0"`
}

// RankedResult is the ordered, deduplicated comparison output. An empty
// result (no coverage) is valid and carries no error.
type RankedResult struct {
	TiedUp    []Quote `json:"tied_up"`
	Available []Quote `json:"available"`
	// Fastest is the globally quickest quote across both sections, nil when
	// every surviving quote hides its delivery time.
	Fastest *Quote `json:"fastest,omitempty"`
	// BestValue lists every quote tied (within a small epsilon) for the
	// lowest total price.
	BestValue []Quote `json:"best_value,omitempty"`
}

// Empty reports whether the result carries no quotes at all; callers surface
// this as a "no coverage" state, never as an error.
func (r RankedResult) Empty() bool {
	return len(r.TiedUp) == 0 && len(r.Available) == 0
}
