package fleet

import (
	"errors"
	"math"
	"testing"

	"freight-compare/internal/models"
)

const eps = 1e-6

func testSlabs() []models.VehicleSlab {
	return []models.VehicleSlab{
		{
			Label: "small", MaxWeightKg: 1000, MinKm: 0, MaxKm: 500,
			PriceTable: []models.PriceBand{{MinKm: 0, MaxKm: 500, Price: 3000}},
		},
		{
			Label: "medium", MaxWeightKg: 4000, MinKm: 0, MaxKm: 1000,
			PriceTable: []models.PriceBand{{MinKm: 0, MaxKm: 500, Price: 9000}, {MinKm: 500, MaxKm: 1000, Price: 15000}},
		},
		{
			Label: "large", MaxWeightKg: 10000, MinKm: 0, MaxKm: 2000,
			PriceTable: []models.PriceBand{{MinKm: 0, MaxKm: 1000, Price: 20000}, {MinKm: 1000, MaxKm: 2000, Price: 34000}},
		},
	}
}

func countFor(t *testing.T, sel Selection, label string) int {
	t.Helper()
	for _, v := range sel.Vehicles {
		if v.Slab.Label == label {
			return v.Count
		}
	}
	return 0
}

func TestSelectSmallestFittingSlab(t *testing.T) {
	sel, err := SelectVehicles(800, 100, testSlabs())
	if err != nil {
		t.Fatalf("SelectVehicles: %v", err)
	}
	if got := countFor(t, sel, "small"); got != 1 {
		t.Errorf("small count = %d, want 1", got)
	}
	if len(sel.Vehicles) != 1 {
		t.Errorf("selected %d slab kinds, want 1", len(sel.Vehicles))
	}
	if math.Abs(sel.TotalPrice-3000) > eps {
		t.Errorf("total = %v, want 3000", sel.TotalPrice)
	}
}

func TestSelectExactCapacityNoOverAllocation(t *testing.T) {
	// Weight exactly at a slab's max: exactly one vehicle of that slab.
	sel, err := SelectVehicles(4000, 100, testSlabs())
	if err != nil {
		t.Fatalf("SelectVehicles: %v", err)
	}
	if got := countFor(t, sel, "medium"); got != 1 {
		t.Errorf("medium count = %d, want 1", got)
	}
	if len(sel.Vehicles) != 1 {
		t.Errorf("selected %d slab kinds, want 1: %+v", len(sel.Vehicles), sel.Vehicles)
	}
}

func TestSelectSplitsAcrossSlabs(t *testing.T) {
	// 11000kg: one large (10000) then one small for the 1000 remainder.
	sel, err := SelectVehicles(11000, 100, testSlabs())
	if err != nil {
		t.Fatalf("SelectVehicles: %v", err)
	}
	if got := countFor(t, sel, "large"); got != 1 {
		t.Errorf("large count = %d, want 1", got)
	}
	if got := countFor(t, sel, "small"); got != 1 {
		t.Errorf("small count = %d, want 1", got)
	}
	if math.Abs(sel.TotalPrice-23000) > eps {
		t.Errorf("total = %v, want 23000", sel.TotalPrice)
	}
}

func TestSelectUnboundedLargestSlab(t *testing.T) {
	// 33000kg needs three large (30000) plus a medium for the rest; no
	// ceiling on vehicle count.
	sel, err := SelectVehicles(33000, 100, testSlabs())
	if err != nil {
		t.Fatalf("SelectVehicles: %v", err)
	}
	if got := countFor(t, sel, "large"); got != 3 {
		t.Errorf("large count = %d, want 3", got)
	}
	if got := countFor(t, sel, "medium"); got != 1 {
		t.Errorf("medium count = %d, want 1", got)
	}
}

func TestSelectPriceVariesByDistanceBand(t *testing.T) {
	sel, err := SelectVehicles(3000, 700, testSlabs())
	if err != nil {
		t.Fatalf("SelectVehicles: %v", err)
	}
	if got := countFor(t, sel, "medium"); got != 1 {
		t.Fatalf("medium count = %d, want 1", got)
	}
	if math.Abs(sel.TotalPrice-15000) > eps {
		t.Errorf("total = %v, want far-band 15000", sel.TotalPrice)
	}
}

func TestSelectNoServiceableSlab(t *testing.T) {
	if _, err := SelectVehicles(3000, 5000, testSlabs()); !errors.Is(err, models.ErrNoServiceableSlab) {
		t.Errorf("err = %v, want ErrNoServiceableSlab", err)
	}
}

func TestSelectDistanceFiltersCandidates(t *testing.T) {
	// At 1500km only the large slab serves; even a tiny load goes on it.
	sel, err := SelectVehicles(200, 1500, testSlabs())
	if err != nil {
		t.Fatalf("SelectVehicles: %v", err)
	}
	if got := countFor(t, sel, "large"); got != 1 {
		t.Errorf("large count = %d, want 1: %+v", got, sel.Vehicles)
	}
	if math.Abs(sel.TotalPrice-34000) > eps {
		t.Errorf("total = %v, want 34000", sel.TotalPrice)
	}
}

func TestDefaultSlabsCoverCommonRoutes(t *testing.T) {
	for _, km := range []float64{40, 250, 900, 1800} {
		if _, err := SelectVehicles(6000, km, DefaultSlabs()); err != nil {
			t.Errorf("DefaultSlabs cannot serve 6000kg at %vkm: %v", km, err)
		}
	}
}

func TestPartnerPriceIsPureMarkup(t *testing.T) {
	sel := Selection{TotalPrice: 10000}
	if got := PartnerPrice(sel); math.Abs(got-12000) > eps {
		t.Errorf("PartnerPrice = %v, want 12000", got)
	}
}

func TestPostalPrice(t *testing.T) {
	if got := PostalPrice(100, 300); math.Abs(got-(50+100*18)) > eps {
		t.Errorf("near postal price = %v", got)
	}
	if got := PostalPrice(100, 900); math.Abs(got-(50+100*28)) > eps {
		t.Errorf("far postal price = %v", got)
	}
}

func TestHeuristicPriceFloor(t *testing.T) {
	if got := HeuristicPrice(10, 10); math.Abs(got-2000) > eps {
		t.Errorf("heuristic floor = %v, want 2000", got)
	}
	if got := HeuristicPrice(5000, 1000); got <= 2000 {
		t.Errorf("heuristic price %v should exceed the floor for heavy long hauls", got)
	}
}

func TestTransitDaysNeverBelowOne(t *testing.T) {
	if got := TransitDays(0); got < 1 {
		t.Errorf("TransitDays(0) = %d", got)
	}
	if got := PostalDays(0); got < 1 {
		t.Errorf("PostalDays(0) = %d", got)
	}
	if TransitDays(900) >= TransitDays(2500) {
		t.Errorf("longer routes should take longer")
	}
}
