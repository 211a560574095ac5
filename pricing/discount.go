package pricing

import (
	"context"
	"math"
	"strings"
	"time"

	"cabdesk/models"
)

// SelectOffer picks the offer auto-applied during estimation. Candidates
// must be active with remaining redemptions; among those, a service-specific
// offer always beats a wildcard one. Ties within a tier resolve to the first
// candidate in store order. Returns nil when nothing applies.
func SelectOffer(offers []models.Offer, serviceType string) *models.Offer {
	byCategory := func(category string) *models.Offer {
		for i := range offers {
			o := &offers[i]
			if o.Category == category && o.UsageCount < o.Limit {
				return o
			}
		}
		return nil
	}
	if o := byCategory(serviceType); o != nil {
		return o
	}
	return byCategory(models.CategoryAll)
}

// PromoRequest reconciles discounts against a quote the customer already
// holds. ActionType is "applyPromo" or "removePromo".
type PromoRequest struct {
	AdminID         string  `json:"-"`
	CustomerID      string  `json:"-"`
	EstimatedAmount float64 `json:"estimatedAmount"`
	TaxAmount       float64 `json:"taxAmount"`
	DriverBeta      float64 `json:"driverBeta"`
	PromoCode       string  `json:"promoCode"`
	OfferID         string  `json:"offerId"`
	ServiceType     string  `json:"serviceType"`
	ActionType      string  `json:"actionType"`
}

// AppliedDiscount names the discount that won, echoed back for display.
type AppliedDiscount struct {
	Source string  `json:"source"` // "Promo" or "Offer"
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Value  float64 `json:"value"`
}

// PromoResult is the reconciled quote. Money fields are rounded up to whole
// currency units before they leave the engine.
type PromoResult struct {
	EstimatedAmount float64          `json:"estimatedAmount"`
	OfferDiscount   float64          `json:"offerDiscount"`
	PromoDiscount   float64          `json:"promoDiscount"`
	FinalAmount     float64          `json:"finalAmount"`
	TaxAmount       float64          `json:"taxAmount"`
	DriverBeta      float64          `json:"driverBeta"`
	DiscountDetails *AppliedDiscount `json:"discountDetails"`
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// offerDiscountOn computes an offer's discount against the quote total.
// Percentage offers cut the total including tax and driver allowance; the
// percentage promos below cut the pre-tax estimate. The asymmetry is
// long-standing billing behavior and deliberately preserved.
func offerDiscountOn(offer *models.Offer, quoteTotal float64) float64 {
	if offer.Type == models.DiscountPercentage {
		return quoteTotal * offer.Value / 100
	}
	return offer.Value
}

// ValidatePromo applies or removes a promo code against a held quote,
// enforcing mutual exclusion with the auto-applied offer. Usage counts are
// only read here; the redemption row is written when the booking commits.
func (e *Engine) ValidatePromo(ctx context.Context, req PromoRequest) (*PromoResult, error) {
	quoteTotal := req.EstimatedAmount + req.TaxAmount + req.DriverBeta
	today := dayOf(time.Now())

	var promoDiscount, offerDiscount float64
	var applied *AppliedDiscount

	var offer *models.Offer
	if req.OfferID != "" {
		var err error
		offer, err = e.Store.OfferByID(ctx, req.OfferID)
		if err != nil {
			return nil, err
		}
		if offer.Category != req.ServiceType && offer.Category != models.CategoryAll {
			return nil, ErrOfferCategory
		}
		offerDiscount = offerDiscountOn(offer, quoteTotal)
		applied = &AppliedDiscount{
			Source: "Offer",
			ID:     offer.OfferID,
			Name:   offer.OfferName,
			Type:   offer.Type,
			Value:  offer.Value,
		}
	}

	switch req.ActionType {
	case "applyPromo":
		code := strings.TrimSpace(req.PromoCode)
		if code == "" {
			return nil, ErrPromoRequired
		}
		promo, err := e.Store.PromoByCode(ctx, req.AdminID, code)
		if err != nil {
			return nil, err
		}

		used, err := e.Store.PromoUsageCount(ctx, promo.CodeID, req.CustomerID)
		if err != nil {
			return nil, err
		}
		if used >= promo.Limit {
			return nil, ErrPromoUsedUp
		}

		// Window checks are date-granular: a code is live for the whole of
		// its end date.
		if dayOf(promo.StartDate).After(today) {
			return nil, ErrPromoNotActive
		}
		if dayOf(promo.EndDate).Before(today) {
			return nil, ErrPromoExpired
		}
		if promo.Category != models.CategoryAll && promo.Category != req.ServiceType {
			return nil, ErrPromoCategory
		}

		if promo.Type == models.DiscountPercentage {
			promoDiscount = math.Ceil(req.EstimatedAmount * promo.Value / 100)
			if promo.MinAmount > 0 && promoDiscount < promo.MinAmount {
				return nil, ErrPromoBelowMin
			}
			if promo.MaxDiscount > 0 && promoDiscount > promo.MaxDiscount {
				promoDiscount = promo.MaxDiscount
			}
		} else {
			promoDiscount = promo.Value
		}

		// Promo and offer never stack; the promo wins.
		offerDiscount = 0
		applied = &AppliedDiscount{
			Source: "Promo",
			ID:     promo.CodeID,
			Name:   promo.PromoName,
			Type:   promo.Type,
			Value:  promo.Value,
		}

	case "removePromo":
		// Dropping the promo reinstates whatever offer discount still holds,
		// recomputed from scratch above.
		promoDiscount = 0
	}

	// Same zero floor as the fare and package paths: a discount can wipe
	// out the estimate but never owe the customer money.
	discounted := math.Max(0, req.EstimatedAmount-(offerDiscount+promoDiscount))
	final := discounted + req.TaxAmount + req.DriverBeta

	return &PromoResult{
		EstimatedAmount: math.Ceil(req.EstimatedAmount),
		OfferDiscount:   math.Ceil(offerDiscount),
		PromoDiscount:   math.Ceil(promoDiscount),
		FinalAmount:     math.Ceil(final),
		TaxAmount:       math.Ceil(req.TaxAmount),
		DriverBeta:      math.Ceil(req.DriverBeta),
		DiscountDetails: applied,
	}, nil
}
