package weights

import (
	"errors"
	"math"
	"testing"

	"freight-compare/internal/models"
)

const eps = 1e-6

func TestResolveChargeableIsMax(t *testing.T) {
	cases := []struct {
		name       string
		boxes      []models.ShipmentBox
		divisor    float64
		wantActual float64
		wantVol    float64
		wantCharge float64
	}{
		{
			// Two 500kg boxes of 1m³ each on road: actual wins.
			name:       "heavy boxes actual wins",
			boxes:      []models.ShipmentBox{{Count: 2, WeightKg: 500, LengthCm: 100, WidthCm: 100, HeightCm: 100}},
			divisor:    3500,
			wantActual: 1000,
			wantVol:    2 * 1000000 / 3500.0,
			wantCharge: 1000,
		},
		{
			// Light bulky box on air: volumetric wins.
			name:       "bulky box volumetric wins",
			boxes:      []models.ShipmentBox{{Count: 1, WeightKg: 10, LengthCm: 100, WidthCm: 100, HeightCm: 100}},
			divisor:    5000,
			wantActual: 10,
			wantVol:    200,
			wantCharge: 200,
		},
		{
			name: "mixed boxes sum per line",
			boxes: []models.ShipmentBox{
				{Count: 3, WeightKg: 20},
				{Count: 1, WeightKg: 5, LengthCm: 50, WidthCm: 40, HeightCm: 30},
			},
			divisor:    3500,
			wantActual: 65,
			wantVol:    50 * 40 * 30 / 3500.0,
			wantCharge: 65,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Resolve(tc.boxes, tc.divisor, false)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if math.Abs(got.ActualKg-tc.wantActual) > eps {
				t.Errorf("actual = %v, want %v", got.ActualKg, tc.wantActual)
			}
			if math.Abs(got.VolumetricKg-tc.wantVol) > eps {
				t.Errorf("volumetric = %v, want %v", got.VolumetricKg, tc.wantVol)
			}
			if math.Abs(got.ChargeableKg-tc.wantCharge) > eps {
				t.Errorf("chargeable = %v, want %v", got.ChargeableKg, tc.wantCharge)
			}
			if got.ChargeableKg < got.ActualKg || got.ChargeableKg < got.VolumetricKg {
				t.Errorf("chargeable %v below actual %v or volumetric %v", got.ChargeableKg, got.ActualKg, got.VolumetricKg)
			}
		})
	}
}

func TestResolveRejectsBadBoxes(t *testing.T) {
	cases := []struct {
		name        string
		boxes       []models.ShipmentBox
		divisor     float64
		requireDims bool
	}{
		{"zero count", []models.ShipmentBox{{Count: 0, WeightKg: 10}}, 3500, false},
		{"negative count", []models.ShipmentBox{{Count: -2, WeightKg: 10}}, 3500, false},
		{"zero weight", []models.ShipmentBox{{Count: 1, WeightKg: 0}}, 3500, false},
		{"negative weight", []models.ShipmentBox{{Count: 1, WeightKg: -4}}, 3500, false},
		{"empty list", nil, 3500, false},
		{"zero divisor", []models.ShipmentBox{{Count: 1, WeightKg: 10}}, 0, false},
		{"missing dims when required", []models.ShipmentBox{{Count: 1, WeightKg: 10}}, 3500, true},
		{"partial dims when required", []models.ShipmentBox{{Count: 1, WeightKg: 10, LengthCm: 30, WidthCm: 20}}, 3500, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Resolve(tc.boxes, tc.divisor, tc.requireDims); !errors.Is(err, models.ErrInvalidShipment) {
				t.Errorf("err = %v, want ErrInvalidShipment", err)
			}
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	boxes := []models.ShipmentBox{
		{Count: 2, WeightKg: 12.5, LengthCm: 60, WidthCm: 45, HeightCm: 35},
		{Count: 7, WeightKg: 3.2},
	}
	a, err := Resolve(boxes, 5000, false)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	b, _ := Resolve(boxes, 5000, false)
	if a != b {
		t.Errorf("same input gave %+v then %+v", a, b)
	}
}
