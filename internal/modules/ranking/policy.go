package ranking

import (
	"strings"

	"freight-compare/internal/models"
)

// ClassificationPolicy decides which quotes count as tied-up for the
// requesting customer. It is resolved once per request from the customer
// identity and injected into Rank, keeping account-specific exceptions out
// of the ranking code itself.
type ClassificationPolicy interface {
	IsTiedUp(q models.Quote) bool
}

// SourcePolicy trusts the quote's own classification, i.e. whatever the
// vendor source reported.
type SourcePolicy struct{}

func (SourcePolicy) IsTiedUp(q models.Quote) bool { return q.IsTiedUp }

// AllowListPolicy treats only the named vendors as tied-up, regardless of
// what the source reported. Used for customer accounts with contractual
// exceptions.
type AllowListPolicy struct {
	names map[string]struct{}
}

func NewAllowListPolicy(vendorNames ...string) AllowListPolicy {
	p := AllowListPolicy{names: make(map[string]struct{}, len(vendorNames))}
	for _, n := range vendorNames {
		p.names[normalizeName(n)] = struct{}{}
	}
	return p
}

func (p AllowListPolicy) IsTiedUp(q models.Quote) bool {
	_, ok := p.names[normalizeName(q.CompanyName)]
	return ok
}

// normalizeName is the fallback vendor identity when no internal vendor key
// exists: lowercase, surrounding space stripped.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
