// Package tariff evaluates a vendor's rate card against a chargeable weight
// to produce an itemized charge breakdown and total. It is a pure
// calculation; vendor data retrieval lives in the quotes module.
package tariff

import (
	"fmt"
	"math"

	"freight-compare/internal/models"
)

// PriceInput carries everything the engine needs for one vendor price.
type PriceInput struct {
	Tariff       models.TariffDefinition
	ChargeableKg float64
	// UnitPrice is the vendor's zone rate in ₹/kg for the route.
	UnitPrice    float64
	DistanceKm   float64
	InvoiceValue float64
	IsODAZone    bool
}

// Price evaluates the tariff in fixed order and returns the breakdown. The
// returned Total is unrounded; RoundTo5 exists for display only.
//
// The minimum charge acts as a floor on base freight, not an additive line;
// every surcharge is computed off the raw (unfloored) base freight.
func Price(in PriceInput) (models.ChargeBreakdown, error) {
	if err := validate(in.Tariff); err != nil {
		return models.ChargeBreakdown{}, err
	}

	t := in.Tariff
	bd := models.ChargeBreakdown{
		Docket:   t.Docket,
		GreenTax: t.GreenTax,
		DACC:     t.DACC,
		Misc:     t.Misc,
	}

	bd.BaseFreight = in.UnitPrice * in.ChargeableKg
	bd.EffectiveBaseFreight = math.Max(bd.BaseFreight, t.MinCharges)

	bd.Fuel = (t.FuelPct / 100) * bd.BaseFreight
	if t.FuelMax > 0 && bd.Fuel > t.FuelMax {
		bd.Fuel = t.FuelMax
	}

	bd.ROV = variableOrFixed(t.ROV, bd.BaseFreight)
	bd.Insurance = variableOrFixed(t.Insurance, bd.BaseFreight)
	bd.FirstMile = variableOrFixed(t.FirstMile, bd.BaseFreight)
	bd.Appointment = variableOrFixed(t.Appointment, bd.BaseFreight)

	bd.Handling = t.Handling.FixedAmount +
		math.Max(0, in.ChargeableKg-t.Handling.ThresholdKg)*(t.Handling.VariablePct/100)

	if in.IsODAZone && t.ODA != nil {
		bd.ODA = t.ODA.Charge(in.ChargeableKg)
	}

	if t.Invoice.Enabled {
		bd.InvoiceCharge = math.Max((t.Invoice.Percentage/100)*in.InvoiceValue, t.Invoice.MinimumAmount)
	}

	bd.Total = bd.EffectiveBaseFreight + bd.Docket + bd.GreenTax + bd.DACC + bd.Misc +
		bd.Fuel + bd.ROV + bd.Insurance + bd.FirstMile + bd.Appointment +
		bd.Handling + bd.ODA + bd.InvoiceCharge

	return bd, nil
}

// variableOrFixed charges the greater of pct-of-base-freight and the fixed
// amount.
func variableOrFixed(vf models.VariableOrFixed, baseFreight float64) float64 {
	return math.Max((vf.VariablePct/100)*baseFreight, vf.FixedAmount)
}

// validate rejects negative percentages and thresholds. Business
// plausibility is not checked: an all-zero tariff is legal and prices at the
// minimum charge.
func validate(t models.TariffDefinition) error {
	pcts := []float64{
		t.FuelPct,
		t.ROV.VariablePct, t.Insurance.VariablePct,
		t.FirstMile.VariablePct, t.Appointment.VariablePct,
		t.Handling.VariablePct, t.Invoice.Percentage,
	}
	for _, p := range pcts {
		if p < 0 {
			return fmt.Errorf("tariff: negative percentage %v: %w", p, models.ErrInvalidTariff)
		}
	}
	if t.Handling.ThresholdKg < 0 {
		return fmt.Errorf("tariff: negative handling threshold: %w", models.ErrInvalidTariff)
	}
	if t.ODA != nil {
		if err := t.ODA.Validate(); err != nil {
			return fmt.Errorf("tariff: oda rule: %w", err)
		}
	}
	return nil
}

// RoundTo5 rounds a money amount to the nearest ₹5 for display. Ranking
// always uses the unrounded total.
func RoundTo5(amount float64) float64 {
	return math.Round(amount/5) * 5
}
