package models

// VariableOrFixed is a surcharge charged as the greater of a percentage of
// base freight and a fixed amount. Used by ROV, insurance, first-mile and
// appointment charges.
type VariableOrFixed struct {
	VariablePct float64 `json:"variable_pct"`
	FixedAmount float64 `json:"fixed_amount"`
}

// HandlingCharge is a fixed amount plus a per-kg rate on the weight above
// a threshold.
type HandlingCharge struct {
	FixedAmount float64 `json:"fixed_amount"`
	VariablePct float64 `json:"variable_pct"`
	ThresholdKg float64 `json:"threshold_kg"`
}

// InvoiceCharge is an optional ad-valorem surcharge on the declared invoice
// value, with a floor.
type InvoiceCharge struct {
	Enabled       bool    `json:"enabled"`
	Percentage    float64 `json:"percentage"`
	MinimumAmount float64 `json:"minimum_amount"`
}

// OdaRule is the out-of-delivery-area surcharge for a vendor. The three
// modes in the source tariff schema overload the same "variable" column as
// either a percentage or a ₹/kg rate, so each mode is its own type carrying
// only the fields its formula uses.
type OdaRule interface {
	// Charge returns the ODA surcharge for a chargeable weight. Callers
	// apply it only when the destination is an ODA zone.
	Charge(chargeableKg float64) float64
	// Validate reports ErrInvalidTariff-compatible problems (negative
	// coefficients or thresholds).
	Validate() error
}

// OdaLegacy charges a fixed amount plus a percentage-of-weight term:
// fixed + weight × pct/100.
type OdaLegacy struct {
	Fixed float64 `json:"fixed"`
	Pct   float64 `json:"pct"`
}

// OdaSwitch charges a flat amount up to and including the threshold, and a
// pure per-kg rate on the whole weight above it. The per-kg rate on the
// full weight (not just the excess) is the vendor's contract term, not a bug.
type OdaSwitch struct {
	Fixed       float64 `json:"fixed"`
	RatePerKg   float64 `json:"rate_per_kg"`
	ThresholdKg float64 `json:"threshold_kg"`
}

// OdaExcess charges a fixed amount plus a per-kg rate on only the weight
// strictly above the threshold.
type OdaExcess struct {
	Fixed       float64 `json:"fixed"`
	RatePerKg   float64 `json:"rate_per_kg"`
	ThresholdKg float64 `json:"threshold_kg"`
}

func (r OdaLegacy) Charge(kg float64) float64 {
	return r.Fixed + kg*(r.Pct/100)
}

func (r OdaSwitch) Charge(kg float64) float64 {
	// Boundary is inclusive on the flat branch: weight == threshold pays
	// the fixed charge.
	if kg <= r.ThresholdKg {
		return r.Fixed
	}
	return r.RatePerKg * kg
}

func (r OdaExcess) Charge(kg float64) float64 {
	excess := kg - r.ThresholdKg
	if excess < 0 {
		excess = 0
	}
	return r.Fixed + excess*r.RatePerKg
}

func (r OdaLegacy) Validate() error {
	if r.Fixed < 0 || r.Pct < 0 {
		return ErrInvalidTariff
	}
	return nil
}

func (r OdaSwitch) Validate() error {
	if r.Fixed < 0 || r.RatePerKg < 0 || r.ThresholdKg < 0 {
		return ErrInvalidTariff
	}
	return nil
}

func (r OdaExcess) Validate() error {
	if r.Fixed < 0 || r.RatePerKg < 0 || r.ThresholdKg < 0 {
		return ErrInvalidTariff
	}
	return nil
}

// TariffDefinition is a vendor's rate card as read from the vendor master.
// It is read-only input to the surcharge engine; the admin subsystem owns
// and versions it.
type TariffDefinition struct {
	MinCharges float64 `json:"min_charges"`
	Docket     float64 `json:"docket"`
	GreenTax   float64 `json:"green_tax"`
	DACC       float64 `json:"dacc"`
	Misc       float64 `json:"misc"`

	FuelPct float64 `json:"fuel_pct"`
	// FuelMax caps the fuel surcharge when positive; zero means uncapped.
	FuelMax float64 `json:"fuel_max"`

	ROV         VariableOrFixed `json:"rov"`
	Insurance   VariableOrFixed `json:"insurance"`
	FirstMile   VariableOrFixed `json:"first_mile"`
	Appointment VariableOrFixed `json:"appointment"`

	Handling HandlingCharge `json:"handling"`
	ODA      OdaRule        `json:"-"`
	Invoice  InvoiceCharge  `json:"invoice"`
}

// PriceBand is one distance band of a slab's price table.
type PriceBand struct {
	MinKm float64 `json:"min_km"`
	MaxKm float64 `json:"max_km"`
	Price float64 `json:"price"`
}

// VehicleSlab is one discrete full-truck-load capacity tier. Price varies by
// distance band once a slab is chosen, never by weight.
type VehicleSlab struct {
	Label       string      `json:"label"`
	LengthFt    float64     `json:"length_ft"`
	MinWeightKg float64     `json:"min_weight_kg"`
	MaxWeightKg float64     `json:"max_weight_kg"`
	MinKm       float64     `json:"min_km"`
	MaxKm       float64     `json:"max_km"`
	PriceTable  []PriceBand `json:"price_table"`
}
