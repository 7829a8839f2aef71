package quotes

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log"
	"sync"
	"time"

	"freight-compare/internal/models"
	"freight-compare/internal/modules/fleet"
	"freight-compare/internal/modules/ranking"
	"freight-compare/internal/modules/tariff"
	"freight-compare/internal/modules/weights"
	"freight-compare/pkg/distance"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// ServiceInterface is what the handler depends on.
type ServiceInterface interface {
	// CompareQuotes runs the full pipeline: weight → per-family pricing →
	// ranked result. Only shipment validation errors fail the request;
	// individual source failures degrade to a partial result.
	CompareQuotes(ctx context.Context, req models.QuoteRequest) (models.RankedResult, error)
	// RankQuotes re-ranks an existing quote set under new criteria without
	// refetching anything.
	RankQuotes(quotesBySource [][]models.Quote, criteria models.RankingCriteria, customerID string) models.RankedResult
}

// PolicyResolver maps a customer identity to its vendor classification
// policy. Accounts without contractual exceptions get the source policy.
type PolicyResolver func(customerID string) ranking.ClassificationPolicy

type cachedResult struct {
	result    models.RankedResult
	expiresAt time.Time
}

// service orchestrates the quote pipeline. All per-request state lives on
// the stack of one CompareQuotes call; the only shared state is the
// read-through result cache.
type service struct {
	repo      RepositoryInterface
	distance  distance.ProviderInterface
	slabs     []models.VehicleSlab
	policyFor PolicyResolver

	// Identical concurrent requests share one computation; finished
	// results stay cached for cacheTTL.
	flight   singleflight.Group
	cacheMu  sync.RWMutex
	cache    map[string]cachedResult
	cacheTTL time.Duration
	clock    func() time.Time
}

func NewService(repo RepositoryInterface, dist distance.ProviderInterface, policyFor PolicyResolver, cacheTTL time.Duration) ServiceInterface {
	if policyFor == nil {
		policyFor = func(string) ranking.ClassificationPolicy { return ranking.SourcePolicy{} }
	}
	return &service{
		repo:      repo,
		distance:  dist,
		slabs:     fleet.DefaultSlabs(),
		policyFor: policyFor,
		cache:     make(map[string]cachedResult),
		cacheTTL:  cacheTTL,
		clock:     time.Now,
	}
}

func (s *service) CompareQuotes(ctx context.Context, req models.QuoteRequest) (models.RankedResult, error) {
	// Weight resolution is the request-fatal validation step; everything
	// after it degrades per source.
	requireDims := req.Mode == models.ModeAir
	profile, err := weights.Resolve(req.Boxes, models.DivisorForMode(req.Mode), requireDims)
	if err != nil {
		return models.RankedResult{}, fmt.Errorf("compare quotes: %w", err)
	}

	fp := fingerprint(req)
	if cached, ok := s.lookupCache(fp); ok {
		return cached, nil
	}

	v, err, _ := s.flight.Do(fp, func() (interface{}, error) {
		res := s.compute(ctx, req, profile)
		// A canceled computation degrades every source to a failure; that
		// empty result must not be cached and served to live callers.
		if err := ctx.Err(); err != nil {
			return models.RankedResult{}, err
		}
		s.storeCache(fp, res)
		return res, nil
	})
	if err != nil {
		return models.RankedResult{}, fmt.Errorf("compare quotes: %w", err)
	}
	return v.(models.RankedResult), nil
}

func (s *service) RankQuotes(quotesBySource [][]models.Quote, criteria models.RankingCriteria, customerID string) models.RankedResult {
	return ranking.Rank(quotesBySource, criteria, s.policyFor(customerID))
}

// compute prices every vendor family concurrently and joins through the
// ranker. It returns a result, never an error: a source that cannot price
// contributes nothing, and an empty result is the "no coverage" state.
func (s *service) compute(ctx context.Context, req models.QuoteRequest, profile models.WeightProfile) models.RankedResult {
	distKm, distErr := retryOnce(ctx, func(ctx context.Context) (float64, error) {
		return s.distance.DistanceKm(ctx, req.OriginPincode, req.DestinationPincode)
	})
	if distErr != nil {
		// Zone-rate vendors price off the pincode pair, not distance, so
		// only the computed carriers (FTL, postal) drop out.
		log.Printf("quotes: distance %s→%s unavailable: %v", req.OriginPincode, req.DestinationPincode, distErr)
	}

	isODA, odaErr := retryOnce(ctx, func(ctx context.Context) (bool, error) {
		return s.repo.IsODA(ctx, req.DestinationPincode)
	})
	if odaErr != nil {
		log.Printf("quotes: oda lookup for %s failed, assuming serviceable zone: %v", req.DestinationPincode, odaErr)
		isODA = false
	}

	type sourced struct {
		tag    string
		quotes []models.Quote
		err    error
	}
	results := make(chan sourced, 4)
	var wg sync.WaitGroup
	run := func(tag string, fn func(context.Context) ([]models.Quote, error)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			qs, err := retryOnce(ctx, fn)
			results <- sourced{tag: tag, quotes: qs, err: err}
		}()
	}

	run(models.SourceTiedUp, func(ctx context.Context) ([]models.Quote, error) {
		vendors, err := s.repo.ListTiedUpVendors(ctx, req.CustomerID)
		if err != nil {
			return nil, err
		}
		return s.zoneQuotes(ctx, vendors, models.SourceTiedUp, true, req, profile, distKm, isODA), nil
	})
	run(models.SourceAvailable, func(ctx context.Context) ([]models.Quote, error) {
		vendors, err := s.repo.ListAvailableVendors(ctx)
		if err != nil {
			return nil, err
		}
		return s.zoneQuotes(ctx, vendors, models.SourceAvailable, false, req, profile, distKm, isODA), nil
	})
	// The computed carriers are pure functions of weight and distance, so
	// nothing behind them is worth retrying; a distance failure excludes
	// them outright.
	runLocal := func(tag string, fn func() []models.Quote) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if distErr != nil {
				results <- sourced{tag: tag, err: distErr}
				return
			}
			results <- sourced{tag: tag, quotes: fn()}
		}()
	}

	runLocal(models.SourceFTL, func() []models.Quote {
		return s.ftlQuotes(profile.ChargeableKg, distKm)
	})
	runLocal(models.SourcePostal, func() []models.Quote {
		return []models.Quote{postalQuote(profile.ChargeableKg, distKm)}
	})

	wg.Wait()
	close(results)

	// allSettled join: collect successes, log failures, never abort.
	var bySource [][]models.Quote
	for r := range results {
		if r.err != nil {
			log.Printf("quotes: source %s excluded: %v", r.tag, r.err)
			continue
		}
		bySource = append(bySource, r.quotes)
	}

	return ranking.Rank(bySource, req.Criteria, s.policyFor(req.CustomerID))
}

// zoneQuotes prices one vendor family. A vendor that cannot be priced (no
// zone rate, bad tariff) is skipped; it never takes down the family.
func (s *service) zoneQuotes(ctx context.Context, vendors []VendorRecord, tag string, tiedUp bool, req models.QuoteRequest, profile models.WeightProfile, distKm float64, isODA bool) []models.Quote {
	out := make([]models.Quote, 0, len(vendors))
	for _, v := range vendors {
		unitPrice, err := s.repo.ZoneUnitPrice(ctx, v.ID, req.OriginPincode, req.DestinationPincode)
		if err != nil {
			if !errors.Is(err, models.ErrNotFound) {
				log.Printf("quotes: zone rate for %s: %v", v.CompanyName, err)
			}
			continue
		}
		bd, err := tariff.Price(tariff.PriceInput{
			Tariff:       v.Tariff,
			ChargeableKg: profile.ChargeableKg,
			UnitPrice:    unitPrice,
			DistanceKm:   distKm,
			InvoiceValue: req.InvoiceValue,
			IsODAZone:    isODA,
		})
		if err != nil {
			log.Printf("quotes: tariff for %s rejected: %v", v.CompanyName, err)
			continue
		}
		q := models.Quote{
			ID:                uuid.NewString(),
			VendorKey:         v.ID,
			CompanyName:       v.CompanyName,
			SourceTag:         tag,
			TotalCharges:      bd.Total,
			EstimatedTimeDays: v.EstimatedTimeDays,
			IsTiedUp:          tiedUp,
			IsSpecialVendor:   v.IsSpecial,
			Breakdown:         &bd,
		}
		if rating, err := s.repo.RatingFor(ctx, v.ID); err == nil {
			q.Rating = rating.Average
		}
		out = append(out, q)
	}
	return out
}

// ftlQuotes prices the full-truck-load partner. When no slab can serve the
// load, the carrier still answers with the flagged heuristic estimate so
// the user sees a number instead of a silent gap.
func (s *service) ftlQuotes(chargeableKg, distKm float64) []models.Quote {
	sel, err := fleet.SelectVehicles(chargeableKg, distKm, s.slabs)
	if err != nil {
		log.Printf("quotes: ftl selection failed, using heuristic: %v", err)
		return []models.Quote{{
			ID:                uuid.NewString(),
			VendorKey:         "ftl-partner",
			CompanyName:       "FreightLine FTL",
			SourceTag:         models.SourceFTL,
			TotalCharges:      fleet.HeuristicPrice(chargeableKg, distKm),
			EstimatedTimeDays: fleet.TransitDays(distKm),
			IsSpecialVendor:   true,
			IsEstimated:       true,
		}}
	}
	return []models.Quote{{
		ID:                uuid.NewString(),
		VendorKey:         "ftl-partner",
		CompanyName:       "FreightLine FTL",
		SourceTag:         models.SourceFTL,
		TotalCharges:      fleet.PartnerPrice(sel),
		EstimatedTimeDays: fleet.TransitDays(distKm),
		IsSpecialVendor:   true,
	}}
}

func postalQuote(chargeableKg, distKm float64) models.Quote {
	return models.Quote{
		ID:                uuid.NewString(),
		VendorKey:         "india-post",
		CompanyName:       "India Post Parcel",
		SourceTag:         models.SourcePostal,
		TotalCharges:      fleet.PostalPrice(chargeableKg, distKm),
		EstimatedTimeDays: fleet.PostalDays(distKm),
	}
}

// retryOnce runs fn, retrying a single time only for transient provider
// failures.
func retryOnce[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	v, err := fn(ctx)
	if err != nil && errors.Is(err, models.ErrProviderUnavailable) && ctx.Err() == nil {
		v, err = fn(ctx)
	}
	return v, err
}

// fingerprint keys the result cache by everything that can change the
// ranked output: route, shipment, mode, invoice value and criteria.
func fingerprint(req models.QuoteRequest) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s|%s|%v|%+v|", req.CustomerID, req.OriginPincode, req.DestinationPincode, req.Mode, req.InvoiceValue, req.Criteria)
	for _, b := range req.Boxes {
		fmt.Fprintf(h, "%d:%v:%v:%v:%v|", b.Count, b.LengthCm, b.WidthCm, b.HeightCm, b.WeightKg)
	}
	return fmt.Sprintf("%x", h.Sum64())
}

func (s *service) lookupCache(fp string) (models.RankedResult, bool) {
	if s.cacheTTL <= 0 {
		return models.RankedResult{}, false
	}
	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()
	c, ok := s.cache[fp]
	if !ok || s.clock().After(c.expiresAt) {
		return models.RankedResult{}, false
	}
	return c.result, true
}

func (s *service) storeCache(fp string, res models.RankedResult) {
	if s.cacheTTL <= 0 {
		return
	}
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	// Evict whatever has expired; the cache only ever holds recent
	// fingerprints, so a sweep on write is enough.
	now := s.clock()
	for k, c := range s.cache {
		if now.After(c.expiresAt) {
			delete(s.cache, k)
		}
	}
	s.cache[fp] = cachedResult{result: res, expiresAt: now.Add(s.cacheTTL)}
}
