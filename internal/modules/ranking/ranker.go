// Package ranking merges quotes from heterogeneous vendor sources into one
// ordered, deduplicated comparison. It is a pure synchronous join step: it
// runs after every source has resolved and never errors — an empty result is
// a valid outcome.
package ranking

import (
	"math"
	"sort"

	"freight-compare/internal/models"
)

// bestValueEpsilon bounds the price difference within which two quotes count
// as tied for best value.
const bestValueEpsilon = 0.01

// Rank flattens the per-source quote lists, drops invalid entries, splits by
// the classification policy, applies the criteria ceilings, sorts each
// section, deduplicates across sections, and tags the fastest and
// best-value quotes.
//
// Output order is fully deterministic for a given quote set: the sort is
// stable with an explicit natural-order tie-break, so source arrival order
// never shows through.
func Rank(quotesBySource [][]models.Quote, criteria models.RankingCriteria, policy ClassificationPolicy) models.RankedResult {
	if policy == nil {
		policy = SourcePolicy{}
	}

	var all []models.Quote
	for _, src := range quotesBySource {
		for _, q := range src {
			if !validQuote(q) {
				continue
			}
			all = append(all, q)
		}
	}

	var tiedUp, available []models.Quote
	for _, q := range all {
		q.IsTiedUp = policy.IsTiedUp(q)
		if !passesCeilings(q, criteria) {
			continue
		}
		if q.IsTiedUp {
			tiedUp = append(tiedUp, q)
		} else {
			available = append(available, q)
		}
	}

	sortQuotes(tiedUp, criteria.SortBy)
	sortQuotes(available, criteria.SortBy)

	// Dedup across the section boundary: one pass over both sections in
	// their sorted order, first occurrence of a vendor identity wins. A
	// vendor reclassified by the policy can otherwise appear twice.
	seen := make(map[string]struct{}, len(tiedUp)+len(available))
	tiedUp = dedup(tiedUp, seen)
	available = dedup(available, seen)

	res := models.RankedResult{TiedUp: tiedUp, Available: available}
	tag(&res)
	return res
}

// validQuote drops unserviceable markers and anything without a finite
// positive price; such entries must never surface as ₹0 quotes.
func validQuote(q models.Quote) bool {
	if q.Unserviceable {
		return false
	}
	return q.TotalCharges > 0 && !math.IsInf(q.TotalCharges, 0) && !math.IsNaN(q.TotalCharges)
}

func passesCeilings(q models.Quote, c models.RankingCriteria) bool {
	if c.MaxPrice > 0 && q.TotalCharges > c.MaxPrice {
		return false
	}
	if c.MaxTimeDays > 0 && q.EstimatedTimeDays > c.MaxTimeDays {
		return false
	}
	if c.MinRating > 0 && q.Rating < c.MinRating {
		return false
	}
	return true
}

func sortQuotes(qs []models.Quote, sortBy string) {
	var less func(a, b models.Quote) bool
	switch sortBy {
	case models.SortByTime:
		less = func(a, b models.Quote) bool {
			// Unknown time (<= 0) sorts after every known time.
			aKnown, bKnown := a.EstimatedTimeDays > 0, b.EstimatedTimeDays > 0
			if aKnown != bKnown {
				return aKnown
			}
			if aKnown && a.EstimatedTimeDays != b.EstimatedTimeDays {
				return a.EstimatedTimeDays < b.EstimatedTimeDays
			}
			return naturalLess(a.CompanyName, b.CompanyName)
		}
	case models.SortByRating:
		less = func(a, b models.Quote) bool {
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			return naturalLess(a.CompanyName, b.CompanyName)
		}
	default: // price
		less = func(a, b models.Quote) bool {
			if a.TotalCharges != b.TotalCharges {
				return a.TotalCharges < b.TotalCharges
			}
			return naturalLess(a.CompanyName, b.CompanyName)
		}
	}
	sort.SliceStable(qs, func(i, j int) bool { return less(qs[i], qs[j]) })
}

// identity prefers the internal vendor key and falls back to the normalized
// company name.
func identity(q models.Quote) string {
	if q.VendorKey != "" {
		return q.VendorKey
	}
	return normalizeName(q.CompanyName)
}

func dedup(qs []models.Quote, seen map[string]struct{}) []models.Quote {
	out := qs[:0]
	for _, q := range qs {
		key := identity(q)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, q)
	}
	return out
}

// tag marks the globally fastest quote and every quote tied for the minimum
// price across both sections.
func tag(res *models.RankedResult) {
	var fastest *models.Quote
	minPrice := math.Inf(1)
	sections := [][]models.Quote{res.TiedUp, res.Available}
	for _, sec := range sections {
		for i := range sec {
			q := &sec[i]
			if q.EstimatedTimeDays > 0 &&
				(fastest == nil || q.EstimatedTimeDays < fastest.EstimatedTimeDays) {
				fastest = q
			}
			if q.TotalCharges < minPrice {
				minPrice = q.TotalCharges
			}
		}
	}
	if fastest != nil {
		f := *fastest
		res.Fastest = &f
	}
	if !math.IsInf(minPrice, 1) {
		for _, sec := range sections {
			for _, q := range sec {
				if math.Abs(q.TotalCharges-minPrice) <= bestValueEpsilon {
					res.BestValue = append(res.BestValue, q)
				}
			}
		}
	}
}
