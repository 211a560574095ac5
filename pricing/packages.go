package pricing

import (
	"fmt"
	"math"

	"cabdesk/models"
)

func packageUnitWord(serviceType string, units int) string {
	word := "Hour"
	if serviceType == models.ServiceDayPackages {
		word = "Day"
	}
	if units > 1 {
		word += "s"
	}
	return word
}

func PackageLabel(serviceType string, units int, km float64) string {
	return fmt.Sprintf("%d %s %g Km", units, packageUnitWord(serviceType, units), km)
}

// GroupPackages buckets flat-rate packages by their (duration, distance
// allowance) pair and prices every vehicle inside each bucket. Each package
// is one vehicle's rate card, so two sedans and a van with a "4 hour, 40 km"
// plan land in the same group. Input order is preserved; the store already
// sorts by duration then allowance.
func GroupPackages(pkgs []models.FlatPackage, service models.Service, serviceType string, offers []models.Offer) []PackageGroup {
	offer := SelectOffer(offers, serviceType)

	type key struct {
		units int
		km    float64
	}
	index := make(map[key]int)
	var groups []PackageGroup

	for _, pkg := range pkgs {
		k := key{units: pkg.Units, km: pkg.DistanceLimit}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, PackageGroup{
				DisplayName:     PackageLabel(serviceType, pkg.Units, pkg.DistanceLimit),
				Units:           pkg.Units,
				Kilometers:      pkg.DistanceLimit,
				ExtraPricePerKm: pkg.ExtraPrice,
			})
		}
		groups[i].Vehicles = append(groups[i].Vehicles, pricePackageVehicle(pkg, service, offer))
		groups[i].TotalVehicles = len(groups[i].Vehicles)
	}
	return groups
}

// pricePackageVehicle prices one vehicle's flat rate. Flat packages have no
// per-km component: the discount comes straight off the package price, the
// floor is zero, tax applies to the gross price.
func pricePackageVehicle(pkg models.FlatPackage, service models.Service, offer *models.Offer) PackageVehicle {
	base := pkg.Price
	beta := pkg.DriverBeta
	tax := base * service.TaxGST / 100

	var offerAmount float64
	var offerID, offerName, offerType string
	if offer != nil {
		offerID = offer.OfferID
		offerName = offer.OfferName
		offerType = offer.Type
		if offer.Type == models.DiscountPercentage {
			offerAmount = base * offer.Value / 100
		} else {
			offerAmount = offer.Value
		}
	}

	discounted := math.Max(0, base-offerAmount)
	final := discounted + tax + beta

	v := PackageVehicle{
		PackageID:           pkg.PackageID,
		BaseFare:            math.Ceil(base),
		EstimatedPrice:      math.Ceil(base),
		DiscountApplyPrice:  math.Ceil(offerAmount),
		BeforeDiscountPrice: math.Ceil(base + beta + tax),
		FinalPrice:          math.Ceil(final),
		TaxAmount:           math.Ceil(tax),
		TaxPercentage:       service.TaxGST,
		DriverBeta:          beta,
		OfferAmount:         math.Ceil(offerAmount),
		OfferType:           offerType,
		OfferID:             offerID,
		OfferName:           offerName,
	}
	if pkg.Vehicle != nil {
		v.VehicleID = pkg.Vehicle.VehicleID
		v.Name = pkg.Vehicle.Name
		v.VehicleType = pkg.Vehicle.Type
		v.ImageURL = pkg.Vehicle.ImageURL
		v.Seats = pkg.Vehicle.Seats
		v.Bags = pkg.Vehicle.Bags
	}
	return v
}
