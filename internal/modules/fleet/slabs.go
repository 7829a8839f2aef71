package fleet

import "freight-compare/internal/models"

// DefaultSlabs is the static vehicle reference table. It is versioned with
// the binary and needs no network access at calculation time.
//
// Capacities follow the common Indian FTL fleet mix; prices are per trip by
// distance band.
func DefaultSlabs() []models.VehicleSlab {
	return []models.VehicleSlab{
		{
			Label: "Tata Ace", LengthFt: 7,
			MinWeightKg: 0, MaxWeightKg: 850,
			MinKm: 0, MaxKm: 500,
			PriceTable: []models.PriceBand{
				{MinKm: 0, MaxKm: 50, Price: 1800},
				{MinKm: 50, MaxKm: 150, Price: 3500},
				{MinKm: 150, MaxKm: 300, Price: 6500},
				{MinKm: 300, MaxKm: 500, Price: 10500},
			},
		},
		{
			Label: "Bolero Pickup", LengthFt: 8,
			MinWeightKg: 850, MaxWeightKg: 1500,
			MinKm: 0, MaxKm: 800,
			PriceTable: []models.PriceBand{
				{MinKm: 0, MaxKm: 50, Price: 2400},
				{MinKm: 50, MaxKm: 150, Price: 4600},
				{MinKm: 150, MaxKm: 300, Price: 8200},
				{MinKm: 300, MaxKm: 500, Price: 13000},
				{MinKm: 500, MaxKm: 800, Price: 19500},
			},
		},
		{
			Label: "Eicher 14ft", LengthFt: 14,
			MinWeightKg: 1500, MaxWeightKg: 4000,
			MinKm: 0, MaxKm: 2000,
			PriceTable: []models.PriceBand{
				{MinKm: 0, MaxKm: 100, Price: 5500},
				{MinKm: 100, MaxKm: 300, Price: 11000},
				{MinKm: 300, MaxKm: 700, Price: 21000},
				{MinKm: 700, MaxKm: 1200, Price: 33000},
				{MinKm: 1200, MaxKm: 2000, Price: 48000},
			},
		},
		{
			Label: "Eicher 19ft", LengthFt: 19,
			MinWeightKg: 4000, MaxWeightKg: 7000,
			MinKm: 0, MaxKm: 2500,
			PriceTable: []models.PriceBand{
				{MinKm: 0, MaxKm: 100, Price: 7500},
				{MinKm: 100, MaxKm: 300, Price: 14500},
				{MinKm: 300, MaxKm: 700, Price: 27000},
				{MinKm: 700, MaxKm: 1200, Price: 42000},
				{MinKm: 1200, MaxKm: 2500, Price: 64000},
			},
		},
		{
			Label: "Tata 22ft", LengthFt: 22,
			MinWeightKg: 7000, MaxWeightKg: 10000,
			MinKm: 0, MaxKm: 3000,
			PriceTable: []models.PriceBand{
				{MinKm: 0, MaxKm: 100, Price: 9500},
				{MinKm: 100, MaxKm: 300, Price: 18500},
				{MinKm: 300, MaxKm: 700, Price: 34000},
				{MinKm: 700, MaxKm: 1200, Price: 52000},
				{MinKm: 1200, MaxKm: 3000, Price: 82000},
			},
		},
		{
			Label: "Container 32ft MXL", LengthFt: 32,
			MinWeightKg: 10000, MaxWeightKg: 18000,
			MinKm: 0, MaxKm: 3000,
			PriceTable: []models.PriceBand{
				{MinKm: 0, MaxKm: 100, Price: 14000},
				{MinKm: 100, MaxKm: 300, Price: 26000},
				{MinKm: 300, MaxKm: 700, Price: 46000},
				{MinKm: 700, MaxKm: 1200, Price: 70000},
				{MinKm: 1200, MaxKm: 3000, Price: 110000},
			},
		},
	}
}
