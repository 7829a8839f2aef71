package quotes

import (
	"context"
	"fmt"

	"freight-compare/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// VendorRecord is one row of the vendor master as the engine sees it:
// identity, display name, delivery estimate and the full rate card. The
// admin subsystem owns writes; this module only ever reads.
type VendorRecord struct {
	ID                string
	CompanyName       string
	IsSpecial         bool
	EstimatedTimeDays int
	Tariff            models.TariffDefinition
}

// RepositoryInterface defines the vendor-master reads the quote engine
// needs. All of it is reference data, immutable for the duration of a
// calculation.
type RepositoryInterface interface {
	// ListTiedUpVendors returns the vendors contracted to a customer.
	ListTiedUpVendors(ctx context.Context, customerID string) ([]VendorRecord, error)
	// ListAvailableVendors returns the public/network vendors.
	ListAvailableVendors(ctx context.Context) ([]VendorRecord, error)
	// ZoneUnitPrice returns a vendor's ₹/kg rate for a pincode pair.
	// models.ErrNotFound means the vendor does not serve the route.
	ZoneUnitPrice(ctx context.Context, vendorID, originPin, destPin string) (float64, error)
	// IsODA reports whether a pincode is out-of-delivery-area.
	IsODA(ctx context.Context, pincode string) (bool, error)
	// RatingFor returns display/ranking rating data for a vendor.
	RatingFor(ctx context.Context, vendorID string) (models.VendorRating, error)
}

// Repository implements RepositoryInterface against PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

const vendorColumns = `
	v.id, v.company_name, v.is_special, v.estimated_time_days,
	t.min_charges, t.docket, t.green_tax, t.dacc, t.misc,
	t.fuel_pct, t.fuel_max,
	t.rov_pct, t.rov_fixed,
	t.insurance_pct, t.insurance_fixed,
	t.first_mile_pct, t.first_mile_fixed,
	t.appointment_pct, t.appointment_fixed,
	t.handling_fixed, t.handling_pct, t.handling_threshold_kg,
	t.oda_mode, t.oda_fixed, t.oda_variable, t.oda_threshold_kg,
	t.invoice_enabled, t.invoice_pct, t.invoice_min`

func (r *Repository) ListTiedUpVendors(ctx context.Context, customerID string) ([]VendorRecord, error) {
	query := `
		SELECT ` + vendorColumns + `
		FROM vendors v
		JOIN tariffs t ON t.vendor_id = v.id AND t.is_current
		JOIN customer_vendors cv ON cv.vendor_id = v.id
		WHERE cv.customer_id = $1
		ORDER BY v.company_name`
	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("ListTiedUpVendors query: %w", err)
	}
	defer rows.Close()
	return scanVendors(rows)
}

func (r *Repository) ListAvailableVendors(ctx context.Context) ([]VendorRecord, error) {
	query := `
		SELECT ` + vendorColumns + `
		FROM vendors v
		JOIN tariffs t ON t.vendor_id = v.id AND t.is_current
		WHERE v.is_public
		ORDER BY v.company_name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListAvailableVendors query: %w", err)
	}
	defer rows.Close()
	return scanVendors(rows)
}

func scanVendors(rows pgx.Rows) ([]VendorRecord, error) {
	var out []VendorRecord
	for rows.Next() {
		var (
			v                                   VendorRecord
			odaMode                             string
			odaFixed, odaVariable, odaThreshold float64
		)
		if err := rows.Scan(
			&v.ID, &v.CompanyName, &v.IsSpecial, &v.EstimatedTimeDays,
			&v.Tariff.MinCharges, &v.Tariff.Docket, &v.Tariff.GreenTax, &v.Tariff.DACC, &v.Tariff.Misc,
			&v.Tariff.FuelPct, &v.Tariff.FuelMax,
			&v.Tariff.ROV.VariablePct, &v.Tariff.ROV.FixedAmount,
			&v.Tariff.Insurance.VariablePct, &v.Tariff.Insurance.FixedAmount,
			&v.Tariff.FirstMile.VariablePct, &v.Tariff.FirstMile.FixedAmount,
			&v.Tariff.Appointment.VariablePct, &v.Tariff.Appointment.FixedAmount,
			&v.Tariff.Handling.FixedAmount, &v.Tariff.Handling.VariablePct, &v.Tariff.Handling.ThresholdKg,
			&odaMode, &odaFixed, &odaVariable, &odaThreshold,
			&v.Tariff.Invoice.Enabled, &v.Tariff.Invoice.Percentage, &v.Tariff.Invoice.MinimumAmount,
		); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		v.Tariff.ODA = odaRuleFromRow(odaMode, odaFixed, odaVariable, odaThreshold)
		out = append(out, v)
	}
	return out, rows.Err()
}

// odaRuleFromRow turns the stored (mode, fixed, variable, threshold) columns
// into the typed rule. The legacy column meaning of "variable" is a
// percentage; the switch and excess modes store a ₹/kg rate in the same
// column — that overload lives only here.
func odaRuleFromRow(mode string, fixed, variable, threshold float64) models.OdaRule {
	switch mode {
	case "switch":
		return models.OdaSwitch{Fixed: fixed, RatePerKg: variable, ThresholdKg: threshold}
	case "excess":
		return models.OdaExcess{Fixed: fixed, RatePerKg: variable, ThresholdKg: threshold}
	default:
		return models.OdaLegacy{Fixed: fixed, Pct: variable}
	}
}

func (r *Repository) ZoneUnitPrice(ctx context.Context, vendorID, originPin, destPin string) (float64, error) {
	const query = `
		SELECT zr.unit_price
		FROM zone_rates zr
		JOIN pincode_zones po ON po.zone = zr.origin_zone
		JOIN pincode_zones pd ON pd.zone = zr.dest_zone
		WHERE zr.vendor_id = $1 AND po.pincode = $2 AND pd.pincode = $3`
	var price float64
	if err := r.db.QueryRow(ctx, query, vendorID, originPin, destPin).Scan(&price); err != nil {
		if err == pgx.ErrNoRows {
			return 0, models.ErrNotFound
		}
		return 0, fmt.Errorf("ZoneUnitPrice failed: %w", err)
	}
	return price, nil
}

func (r *Repository) IsODA(ctx context.Context, pincode string) (bool, error) {
	const query = `SELECT is_oda FROM pincode_zones WHERE pincode = $1`
	var oda bool
	if err := r.db.QueryRow(ctx, query, pincode).Scan(&oda); err != nil {
		if err == pgx.ErrNoRows {
			// Unknown pincodes are not ODA; the vendor's zone rate lookup
			// already decides serviceability.
			return false, nil
		}
		return false, fmt.Errorf("IsODA failed: %w", err)
	}
	return oda, nil
}

func (r *Repository) RatingFor(ctx context.Context, vendorID string) (models.VendorRating, error) {
	const query = `
		SELECT COALESCE(AVG(stars), 0), COUNT(*)
		FROM vendor_ratings
		WHERE vendor_id = $1`
	var rating models.VendorRating
	if err := r.db.QueryRow(ctx, query, vendorID).Scan(&rating.Average, &rating.TotalCount); err != nil {
		return models.VendorRating{}, fmt.Errorf("RatingFor failed: %w", err)
	}

	const byCategory = `
		SELECT category, COUNT(*)
		FROM vendor_ratings
		WHERE vendor_id = $1
		GROUP BY category`
	rows, err := r.db.Query(ctx, byCategory, vendorID)
	if err != nil {
		return models.VendorRating{}, fmt.Errorf("RatingFor categories: %w", err)
	}
	defer rows.Close()
	rating.ByCategory = make(map[string]int)
	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return models.VendorRating{}, fmt.Errorf("RatingFor scan category: %w", err)
		}
		rating.ByCategory[category] = n
	}
	return rating, rows.Err()
}
