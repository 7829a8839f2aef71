package fleet

import "math"

// FTL partner and postal carrier parameters. Both carriers are always-on:
// their prices are derived locally, never fetched from the vendor master.
const (
	// partnerMarkup is the partner's margin over the raw slab total.
	partnerMarkup = 0.20

	postalBaseCharge = 50.0
	postalNearRate   = 18.0 // ₹/kg up to postalNearKm
	postalFarRate    = 28.0 // ₹/kg beyond
	postalNearKm     = 500.0

	// Heuristic fallback coefficients, used only when precise FTL pricing
	// is unavailable.
	heuristicPerKmKg = 0.0042
	heuristicFloor   = 2000.0
)

// PartnerPrice derives the FTL partner's customer price from a completed
// selection. Pure function of the selection total; it never re-runs the
// selector.
func PartnerPrice(sel Selection) float64 {
	return sel.TotalPrice * (1 + partnerMarkup)
}

// PostalPrice derives the postal carrier's price locally from weight and
// distance.
func PostalPrice(chargeableKg, distanceKm float64) float64 {
	rate := postalNearRate
	if distanceKm > postalNearKm {
		rate = postalFarRate
	}
	return postalBaseCharge + chargeableKg*rate
}

// PostalDays estimates postal delivery time from distance. Never below one
// day.
func PostalDays(distanceKm float64) int {
	days := int(math.Ceil(distanceKm/400)) + 1
	if days < 1 {
		days = 1
	}
	return days
}

// HeuristicPrice is the last-resort linear estimate substituted when slab
// selection fails for a reason other than distance coverage. Quotes built
// from it must be flagged as estimated.
func HeuristicPrice(chargeableKg, distanceKm float64) float64 {
	return math.Max(heuristicFloor, chargeableKg*distanceKm*heuristicPerKmKg)
}

// TransitDays estimates FTL transit time from distance at a nominal 450km
// per day plus a day for loading.
func TransitDays(distanceKm float64) int {
	days := int(math.Ceil(distanceKm/450)) + 1
	if days < 1 {
		days = 1
	}
	return days
}
