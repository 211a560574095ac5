package stores

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"cabdesk/models"
	"cabdesk/pricing"
)

// EligibleOffers returns active offers for the tenant whose category matches
// the service type or "All", each annotated with the customer's prior usage
// count. Usage is read-only here; rows are written only at booking commit.
func (s *Store) EligibleOffers(ctx context.Context, adminID, customerID, serviceType string) ([]models.Offer, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT o."offerId", o."adminId", o."offerName", o.category, o.type, o.value, o."limit",
		        o.status, o."startDate", o."endDate", o."createdAt",
		        COUNT(u.id) AS "usageCount"
		 FROM offers o
		 LEFT JOIN offer_usage u ON u."offerId" = o."offerId" AND u."customerId" = $2
		 WHERE o."adminId"=$1 AND o.status=TRUE AND o.category IN ($3, 'All')
		 GROUP BY o."offerId"`,
		adminID, customerID, serviceType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []models.Offer
	for rows.Next() {
		var o models.Offer
		if err := rows.Scan(&o.OfferID, &o.AdminID, &o.OfferName, &o.Category, &o.Type, &o.Value, &o.Limit,
			&o.Status, &o.StartDate, &o.EndDate, &o.CreatedAt, &o.UsageCount); err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

// UsableOffers lists offers a customer can still redeem: active, inside the
// validity window, usage below limit. Backs the customer offers listing.
func (s *Store) UsableOffers(ctx context.Context, adminID, customerID string) ([]models.Offer, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT o."offerId", o."adminId", o."offerName", o.category, o.type, o.value, o."limit",
		        o.status, o."startDate", o."endDate", o."createdAt",
		        COUNT(u.id) AS "usageCount"
		 FROM offers o
		 LEFT JOIN offer_usage u ON u."offerId" = o."offerId" AND u."customerId" = $2
		 WHERE o."adminId"=$1 AND o.status=TRUE AND o."startDate" <= NOW() AND o."endDate" > NOW()
		 GROUP BY o."offerId"
		 HAVING COUNT(u.id) < o."limit"`,
		adminID, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []models.Offer
	for rows.Next() {
		var o models.Offer
		if err := rows.Scan(&o.OfferID, &o.AdminID, &o.OfferName, &o.Category, &o.Type, &o.Value, &o.Limit,
			&o.Status, &o.StartDate, &o.EndDate, &o.CreatedAt, &o.UsageCount); err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

// OfferByID fetches one offer regardless of window; eligibility rules are
// applied by the discount engine.
func (s *Store) OfferByID(ctx context.Context, offerID string) (*models.Offer, error) {
	var o models.Offer
	err := s.pool.QueryRow(ctx,
		`SELECT "offerId", "adminId", "offerName", category, type, value, "limit",
		        status, "startDate", "endDate", "createdAt"
		 FROM offers WHERE "offerId"=$1`,
		offerID).
		Scan(&o.OfferID, &o.AdminID, &o.OfferName, &o.Category, &o.Type, &o.Value, &o.Limit,
			&o.Status, &o.StartDate, &o.EndDate, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pricing.ErrOfferNotFound
		}
		return nil, err
	}
	return &o, nil
}

// PromoByCode matches a promo by exact code string scoped to the tenant.
func (s *Store) PromoByCode(ctx context.Context, adminID, code string) (*models.PromoCode, error) {
	var p models.PromoCode
	err := s.pool.QueryRow(ctx,
		`SELECT "codeId", "adminId", code, COALESCE("promoName", ''), category, type, value,
		        "minAmount", "maxDiscount", "limit", status, "startDate", "endDate", "createdAt"
		 FROM promo_codes WHERE "adminId"=$1 AND code=$2`,
		adminID, code).
		Scan(&p.CodeID, &p.AdminID, &p.Code, &p.PromoName, &p.Category, &p.Type, &p.Value,
			&p.MinAmount, &p.MaxDiscount, &p.Limit, &p.Status, &p.StartDate, &p.EndDate, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pricing.ErrPromoNotFound
		}
		return nil, err
	}
	return &p, nil
}

// PromoUsageCount counts the customer's prior redemptions of a promo code.
func (s *Store) PromoUsageCount(ctx context.Context, codeID, customerID string) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM promo_code_usage WHERE "codeId"=$1 AND "customerId"=$2`,
		codeID, customerID).Scan(&count)
	return count, err
}

// UsablePromos lists promo codes a customer can still redeem.
func (s *Store) UsablePromos(ctx context.Context, adminID, customerID string) ([]models.PromoCode, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT p."codeId", p."adminId", p.code, COALESCE(p."promoName", ''), p.category, p.type, p.value,
		        p."minAmount", p."maxDiscount", p."limit", p.status, p."startDate", p."endDate", p."createdAt"
		 FROM promo_codes p
		 LEFT JOIN promo_code_usage u ON u."codeId" = p."codeId" AND u."customerId" = $2
		 WHERE p."adminId"=$1 AND p.status=TRUE AND p."startDate" <= NOW() AND p."endDate" > NOW()
		 GROUP BY p."codeId"
		 HAVING COUNT(u.id) < p."limit"`,
		adminID, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var promos []models.PromoCode
	for rows.Next() {
		var p models.PromoCode
		if err := rows.Scan(&p.CodeID, &p.AdminID, &p.Code, &p.PromoName, &p.Category, &p.Type, &p.Value,
			&p.MinAmount, &p.MaxDiscount, &p.Limit, &p.Status, &p.StartDate, &p.EndDate, &p.CreatedAt); err != nil {
			return nil, err
		}
		promos = append(promos, p)
	}
	return promos, rows.Err()
}

// RecordBookingDiscounts writes redemption rows when a booking commits,
// both in one transaction. This is the only place usage is ever written;
// the pricing and validation paths only count.
func (s *Store) RecordBookingDiscounts(ctx context.Context, bookingID, customerID, offerID, codeID string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	if offerID != "" {
		if _, err := tx.Exec(ctx,
			`INSERT INTO offer_usage (id, "offerId", "customerId", "bookingId", "createdAt")
			 VALUES (gen_random_uuid()::text, $1, $2, $3, $4)`,
			offerID, customerID, bookingID, now); err != nil {
			return err
		}
	}
	if codeID != "" {
		if _, err := tx.Exec(ctx,
			`INSERT INTO promo_code_usage (id, "codeId", "customerId", "bookingId", "createdAt")
			 VALUES (gen_random_uuid()::text, $1, $2, $3, $4)`,
			codeID, customerID, bookingID, now); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
