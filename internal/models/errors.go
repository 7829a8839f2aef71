package models

import "errors"

// ErrInvalidShipment indicates bad box data (non-positive count, weight or
// dimension). This is the only error fatal to a whole comparison request.
var ErrInvalidShipment = errors.New("shipment has invalid box data")

// ErrInvalidTariff indicates a malformed vendor tariff (negative percentage
// or threshold). Only that vendor's quote is dropped; the comparison continues.
var ErrInvalidTariff = errors.New("vendor tariff is invalid")

// ErrNoServiceableSlab indicates that no vehicle slab's distance band covers
// the requested route. Disables full-truck-load pricing only.
var ErrNoServiceableSlab = errors.New("no vehicle slab serves this distance")

// ErrRouteNotFound indicates the distance provider found no road route
// between the two pincodes.
var ErrRouteNotFound = errors.New("no road route between pincodes")

// ErrProviderUnavailable indicates a transient fetch failure from a vendor
// data source. Callers retry once, then continue without that source.
var ErrProviderUnavailable = errors.New("provider temporarily unavailable")

var ErrNotFound = errors.New("requested resource not found")
