// Package fleet prices full-truck-load movements. An FTL carrier has no
// per-kg zone rate; its price is the sum of discrete vehicle slabs whose
// combined capacity covers the chargeable weight.
package fleet

import (
	"fmt"
	"sort"

	"freight-compare/internal/models"
)

// VehiclePick is one selected slab with its multiplicity.
type VehiclePick struct {
	Slab      models.VehicleSlab `json:"slab"`
	Count     int                `json:"count"`
	SlabPrice float64            `json:"slab_price"`
}

// Selection is the full vehicle allocation for one shipment.
type Selection struct {
	Vehicles   []VehiclePick `json:"vehicles"`
	TotalPrice float64       `json:"total_price"`
}

// SelectVehicles covers chargeable weight with vehicle slabs whose distance
// band contains distanceKm.
//
// Allocation is greedy: while a single remaining load fits some slab, the
// smallest such slab is chosen; otherwise the largest slab is dispatched and
// the remainder reallocated. There is no ceiling on vehicle count. Each
// chosen slab's price comes from its own distance-banded table.
func SelectVehicles(chargeableKg, distanceKm float64, slabs []models.VehicleSlab) (Selection, error) {
	candidates := make([]models.VehicleSlab, 0, len(slabs))
	for _, s := range slabs {
		if distanceKm >= s.MinKm && distanceKm <= s.MaxKm {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return Selection{}, fmt.Errorf("select vehicles: %.0fkm: %w", distanceKm, models.ErrNoServiceableSlab)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].MaxWeightKg < candidates[j].MaxWeightKg
	})
	largest := candidates[len(candidates)-1]
	if largest.MaxWeightKg <= 0 {
		return Selection{}, fmt.Errorf("select vehicles: slab %s has no capacity: %w", largest.Label, models.ErrNoServiceableSlab)
	}

	counts := make(map[string]int)
	bySlab := make(map[string]models.VehicleSlab)
	remaining := chargeableKg
	for remaining > 0 {
		pick := largest
		for _, s := range candidates {
			if s.MaxWeightKg >= remaining {
				pick = s
				break
			}
		}
		counts[pick.Label]++
		bySlab[pick.Label] = pick
		remaining -= pick.MaxWeightKg
	}

	sel := Selection{}
	for label, n := range counts {
		slab := bySlab[label]
		price, err := priceForDistance(slab, distanceKm)
		if err != nil {
			return Selection{}, err
		}
		sel.Vehicles = append(sel.Vehicles, VehiclePick{Slab: slab, Count: n, SlabPrice: price})
		sel.TotalPrice += price * float64(n)
	}
	// Stable output order: small vehicles first.
	sort.Slice(sel.Vehicles, func(i, j int) bool {
		return sel.Vehicles[i].Slab.MaxWeightKg < sel.Vehicles[j].Slab.MaxWeightKg
	})
	return sel, nil
}

// priceForDistance looks distanceKm up in a slab's own price table. Price
// varies by distance band only; weight never changes a chosen slab's price.
func priceForDistance(slab models.VehicleSlab, distanceKm float64) (float64, error) {
	for _, band := range slab.PriceTable {
		if distanceKm >= band.MinKm && distanceKm <= band.MaxKm {
			return band.Price, nil
		}
	}
	return 0, fmt.Errorf("select vehicles: %s has no price band for %.0fkm: %w", slab.Label, distanceKm, models.ErrNoServiceableSlab)
}
