// Package weights derives the actual, volumetric and chargeable weight of a
// shipment. Chargeable weight is the basis for every downstream tariff
// calculation, so this is the first step of every comparison.
package weights

import (
	"fmt"

	"freight-compare/internal/models"
)

// Resolve computes the weight profile for a box list. Dimensions must
// already be in centimeters (the request layer converts inches); divisor is
// the transport mode's volumetric divisor in cm³ per kg.
//
// When requireDims is true every box must carry positive dimensions; when
// false, boxes without dimensions simply contribute no volumetric weight.
// Pure function: no side effects, same inputs always give the same profile.
func Resolve(boxes []models.ShipmentBox, divisor float64, requireDims bool) (models.WeightProfile, error) {
	if len(boxes) == 0 {
		return models.WeightProfile{}, fmt.Errorf("resolve weights: empty box list: %w", models.ErrInvalidShipment)
	}
	if divisor <= 0 {
		return models.WeightProfile{}, fmt.Errorf("resolve weights: divisor %v: %w", divisor, models.ErrInvalidShipment)
	}

	var actual, volumetric float64
	for i, b := range boxes {
		if b.Count <= 0 {
			return models.WeightProfile{}, fmt.Errorf("resolve weights: box %d count %d: %w", i, b.Count, models.ErrInvalidShipment)
		}
		if b.WeightKg <= 0 {
			return models.WeightProfile{}, fmt.Errorf("resolve weights: box %d weight %v: %w", i, b.WeightKg, models.ErrInvalidShipment)
		}
		hasDims := b.LengthCm > 0 && b.WidthCm > 0 && b.HeightCm > 0
		if requireDims && !hasDims {
			return models.WeightProfile{}, fmt.Errorf("resolve weights: box %d missing dimensions: %w", i, models.ErrInvalidShipment)
		}

		n := float64(b.Count)
		actual += b.WeightKg * n
		if hasDims {
			volumetric += (b.LengthCm * b.WidthCm * b.HeightCm * n) / divisor
		}
	}

	chargeable := actual
	if volumetric > chargeable {
		chargeable = volumetric
	}
	return models.WeightProfile{
		ActualKg:     actual,
		VolumetricKg: volumetric,
		ChargeableKg: chargeable,
	}, nil
}
