package models

// Transport mode constants. The mode decides which volumetric divisor
// applies; the weight resolver itself receives the divisor as an input.
const (
	ModeAir  = "AIR"
	ModeRoad = "ROAD"
	ModeRail = "RAIL"
	ModeShip = "SHIP"
)

// DivisorForMode returns the conventional volumetric divisor (cm³ per kg)
// for a transport mode. Unknown modes fall back to the road divisor.
func DivisorForMode(mode string) float64 {
	switch mode {
	case ModeAir:
		return 5000
	case ModeRail:
		return 4000
	case ModeShip:
		return 6000
	default:
		return 3500
	}
}

// ShipmentBox is one line of a shipment: a count of identical boxes with
// dimensions in centimeters and per-box weight in kilograms. Dimensions may
// be zero when the shipment profile does not require them.
type ShipmentBox struct {
	Count    int     `json:"count" validate:"required,gt=0"`
	LengthCm float64 `json:"length_cm,omitempty"`
	WidthCm  float64 `json:"width_cm,omitempty"`
	HeightCm float64 `json:"height_cm,omitempty"`
	WeightKg float64 `json:"weight_kg" validate:"required,gt=0"`
}

// WeightProfile is the derived weight triple for a shipment. It is computed
// once per calculation and never mutated; ChargeableKg is always the greater
// of the other two.
type WeightProfile struct {
	ActualKg     float64 `json:"actual_kg"`
	VolumetricKg float64 `json:"volumetric_kg"`
	ChargeableKg float64 `json:"chargeable_kg"`
}

// QuoteRequest is the input for a freight comparison. Box dimensions arrive
// in DimensionUnit ("cm" or "in"); the handler normalizes inches to
// centimeters before any weight math runs.
type QuoteRequest struct {
	CustomerID         string          `json:"customer_id"`
	OriginPincode      string          `json:"origin_pincode" validate:"required,len=6,numeric"`
	DestinationPincode string          `json:"destination_pincode" validate:"required,len=6,numeric"`
	Mode               string          `json:"mode" validate:"omitempty,oneof=AIR ROAD RAIL SHIP"`
	DimensionUnit      string          `json:"dimension_unit" validate:"omitempty,oneof=cm in"`
	Boxes              []ShipmentBox   `json:"boxes" validate:"required,min=1,dive"`
	InvoiceValue       float64         `json:"invoice_value" validate:"omitempty,gte=0"`
	Criteria           RankingCriteria `json:"criteria"`
}

// ErrorResponse is the JSON error envelope returned by all handlers.
type ErrorResponse struct {
	Message string `json:"message"`
}
