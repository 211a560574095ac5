package pricing

import (
	"fmt"
	"math"
	"time"

	"cabdesk/models"
)

// FormatDuration renders total travel seconds for display.
func FormatDuration(secs int) string {
	hours := secs / 3600
	minutes := (secs % 3600) / 60
	if hours == 0 {
		return fmt.Sprintf("%d Minutes", minutes)
	}
	return fmt.Sprintf("%d Hours %d Minutes", hours, minutes)
}

// TripDays counts chargeable days between pickup and drop. Both ends are
// normalized to midnight so a late pickup and an early drop still count
// every calendar day touched. Same-day trips count as one day.
func TripDays(pickup, drop time.Time) int {
	p := time.Date(pickup.Year(), pickup.Month(), pickup.Day(), 0, 0, 0, 0, pickup.Location())
	d := time.Date(drop.Year(), drop.Month(), drop.Day(), 0, 0, 0, 0, drop.Location())
	days := int(d.Sub(p).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// quoteInput carries everything the fare math needs for one tariff.
type quoteInput struct {
	Tariff      models.Tariff
	Service     models.Service
	ServiceType string
	DistanceKm  float64
	Duration    string
	Days        int
	HasStops    bool
	Stops       []string
	Offer       *models.Offer
}

// calculateFare prices one (tariff, route) pair. Offer discounts subtract
// from the base price before surcharges; tax is computed on the gross base
// and rounded up, as is the discount. Surcharges never apply to airport
// transfers.
func calculateFare(in quoteInput) (Fare, error) {
	t := in.Tariff
	var basePrice, driverBeta, chargeableKm float64
	toll, hill, permit := t.Toll, t.Hill, t.PermitCharge

	switch in.ServiceType {
	case models.ServiceOneWay:
		basePrice = math.Max(t.Price*in.DistanceKm, in.Service.MinKm*t.Price)
		driverBeta = t.DriverBeta
		chargeableKm = in.DistanceKm

	case models.ServiceRoundTrip:
		days := float64(in.Days)
		if in.HasStops {
			// Stops already put the return leg into the resolved distance.
			chargeableKm = in.DistanceKm
		} else {
			chargeableKm = math.Max(in.DistanceKm*2, in.Service.MinKm*days)
		}
		basePrice = chargeableKm * t.Price
		driverBeta = t.DriverBeta * days

	case models.ServiceAirportPickup, models.ServiceAirportDrop:
		basePrice = t.Price * in.DistanceKm
		driverBeta = t.DriverBeta
		chargeableKm = in.DistanceKm
		toll, hill, permit = 0, 0, 0

	default:
		return Fare{}, fmt.Errorf("unsupported service type %q", in.ServiceType)
	}

	taxAmount := basePrice * in.Service.TaxGST / 100

	var discount, offerAmount float64
	var offerID, offerName, offerType string
	if in.Offer != nil {
		offerID = in.Offer.OfferID
		offerName = in.Offer.OfferName
		offerType = in.Offer.Type
		if in.Offer.Type == models.DiscountPercentage {
			offerAmount = basePrice * in.Offer.Value / 100
		} else {
			offerAmount = in.Offer.Value
		}
		discount = offerAmount
	}

	discounted := basePrice - math.Ceil(discount)
	if discounted < 0 {
		discounted = 0
	}
	finalPrice := discounted + toll + hill + permit + math.Ceil(taxAmount) + driverBeta

	displayKm := in.DistanceKm
	if in.HasStops && in.ServiceType == models.ServiceRoundTrip {
		displayKm = chargeableKm
	}

	return Fare{
		TariffID:            t.TariffID,
		BaseFare:            basePrice,
		PricePerKm:          t.Price,
		MinKm:               in.Service.MinKm,
		EstimatedPrice:      basePrice,
		DiscountApplyPrice:  discount,
		BeforeDiscountPrice: math.Ceil(basePrice + taxAmount + driverBeta),
		FinalPrice:          finalPrice,
		Distance:            displayKm,
		Duration:            in.Duration,
		DriverBeta:          driverBeta,
		TaxAmount:           taxAmount,
		TaxPercentage:       in.Service.TaxGST,
		Toll:                toll,
		Hill:                hill,
		PermitCharge:        permit,
		OfferAmount:         offerAmount,
		OfferType:           offerType,
		OfferID:             offerID,
		OfferName:           offerName,
		Stops:               in.Stops,
		Description:         t.Description,
		Days:                in.Days,
	}, nil
}
