package pricing

import (
	"context"
	"strings"
	"sync"
	"time"

	"cabdesk/models"
)

// Accepted request timestamp layouts, tried in order.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseRequestTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsPackageService reports whether a service type is priced by flat-rate
// packages instead of resolved distance.
func IsPackageService(serviceType string) bool {
	return serviceType == models.ServiceHourlyPackages || serviceType == models.ServiceDayPackages
}

func knownServiceType(serviceType string) bool {
	switch serviceType {
	case models.ServiceOneWay, models.ServiceRoundTrip,
		models.ServiceAirportPickup, models.ServiceAirportDrop,
		models.ServiceHourlyPackages, models.ServiceDayPackages:
		return true
	}
	return false
}

// ValidateTrip checks the request shape before any I/O happens. All field
// problems are reported together so the caller fixes them in one round.
func ValidateTrip(req TripRequest) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(req.PickUp) == "" {
		errs = append(errs, FieldError{Field: "pickUp", Message: "pickup location is required"})
	}
	if req.ServiceType == "" {
		errs = append(errs, FieldError{Field: "serviceType", Message: "service type is required"})
	} else if !knownServiceType(req.ServiceType) {
		errs = append(errs, FieldError{Field: "serviceType", Message: "unsupported service type"})
	}

	pickupAt, pickupOK := parseRequestTime(req.PickupDateTime)
	if !pickupOK {
		errs = append(errs, FieldError{Field: "pickupDateTime", Message: "pickup date/time is missing or invalid"})
	}

	if !IsPackageService(req.ServiceType) && strings.TrimSpace(req.Drop) == "" {
		errs = append(errs, FieldError{Field: "drop", Message: "drop location is required"})
	}

	if req.ServiceType == models.ServiceRoundTrip {
		dropAt, dropOK := parseRequestTime(req.DropDate)
		if !dropOK {
			errs = append(errs, FieldError{Field: "dropDate", Message: "drop date is missing or invalid"})
		} else if pickupOK && dayOf(dropAt).Before(dayOf(pickupAt)) {
			errs = append(errs, FieldError{Field: "dropDate", Message: "drop date must not be before the pickup date"})
		}
	}
	return errs
}

func trimmedStops(stops []string) []string {
	var out []string
	for _, s := range stops {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// EstimateTrip prices a distance-based trip: resolve the route, load the
// tenant's fleet, tariffs and offers, then fan out one fare per (vehicle,
// tariff) pair. Loads that don't depend on each other run concurrently.
func (e *Engine) EstimateTrip(ctx context.Context, req TripRequest) (*Estimate, error) {
	service, err := e.Store.ServiceByName(ctx, req.AdminID, req.ServiceType)
	if err != nil {
		return nil, err
	}

	var (
		wg       sync.WaitGroup
		route    *Route
		vehicles []models.Vehicle
		tariffs  []models.Tariff
		offers   []models.Offer

		routeErr, vehicleErr, tariffErr, offerErr error
	)
	wg.Add(4)
	go func() {
		defer wg.Done()
		route, routeErr = e.ResolveRoute(ctx, req)
	}()
	go func() {
		defer wg.Done()
		vehicles, vehicleErr = e.Store.ActiveVehicles(ctx, req.AdminID)
	}()
	go func() {
		defer wg.Done()
		tariffs, tariffErr = e.Store.Tariffs(ctx, req.AdminID, service.ServiceID)
	}()
	go func() {
		defer wg.Done()
		offers, offerErr = e.Store.EligibleOffers(ctx, req.AdminID, req.CustomerID, req.ServiceType)
	}()
	wg.Wait()

	for _, err := range []error{routeErr, vehicleErr, tariffErr, offerErr} {
		if err != nil {
			return nil, err
		}
	}
	if len(vehicles) == 0 {
		return nil, ErrNoVehicles
	}
	if len(tariffs) == 0 {
		return nil, ErrNoTariffs
	}

	days := 1
	if req.ServiceType == models.ServiceRoundTrip {
		pickupAt, _ := parseRequestTime(req.PickupDateTime)
		dropAt, _ := parseRequestTime(req.DropDate)
		days = TripDays(pickupAt, dropAt)
	}

	stops := trimmedStops(req.Stops)
	offer := SelectOffer(offers, req.ServiceType)
	duration := FormatDuration(route.TotalSecs)

	byVehicle := make(map[string][]models.Tariff, len(tariffs))
	for _, t := range tariffs {
		byVehicle[t.VehicleID] = append(byVehicle[t.VehicleID], t)
	}

	estimate := &Estimate{
		ServiceID:       service.ServiceID,
		TotalDistanceKm: float64(route.TotalKm),
		Locations:       route.Legs,
	}
	for _, v := range vehicles {
		var fares []Fare
		for _, t := range byVehicle[v.VehicleID] {
			fare, err := calculateFare(quoteInput{
				Tariff:      t,
				Service:     *service,
				ServiceType: req.ServiceType,
				DistanceKm:  float64(route.TotalKm),
				Duration:    duration,
				Days:        days,
				HasStops:    len(stops) > 0,
				Stops:       stops,
				Offer:       offer,
			})
			if err != nil {
				return nil, err
			}
			if fare.FinalPrice <= 0 {
				continue
			}
			fares = append(fares, fare)
		}
		if len(fares) == 0 {
			continue
		}
		estimate.Vehicles = append(estimate.Vehicles, VehicleFares{
			VehicleID:    v.VehicleID,
			VehicleName:  v.Name,
			VehicleType:  v.Type,
			VehicleImage: v.ImageURL,
			Seats:        v.Seats,
			Bags:         v.Bags,
			Fares:        fares,
		})
	}
	if len(estimate.Vehicles) == 0 {
		return nil, ErrNoQuotes
	}
	return estimate, nil
}

// EstimatePackages prices a flat-rate request: no route resolution, just the
// tenant's package catalog grouped by plan and priced per vehicle.
func (e *Engine) EstimatePackages(ctx context.Context, req TripRequest) (*PackageEstimate, error) {
	service, err := e.Store.ServiceByName(ctx, req.AdminID, req.ServiceType)
	if err != nil {
		return nil, err
	}

	var (
		wg       sync.WaitGroup
		pkgs     []models.FlatPackage
		offers   []models.Offer
		pkgErr   error
		offerErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		pkgs, pkgErr = e.Store.FlatPackages(ctx, req.AdminID, service.ServiceID)
	}()
	go func() {
		defer wg.Done()
		offers, offerErr = e.Store.EligibleOffers(ctx, req.AdminID, req.CustomerID, req.ServiceType)
	}()
	wg.Wait()

	if pkgErr != nil {
		return nil, pkgErr
	}
	if offerErr != nil {
		return nil, offerErr
	}
	if len(pkgs) == 0 {
		return nil, ErrNoPackages
	}

	groups := GroupPackages(pkgs, *service, req.ServiceType, offers)
	return &PackageEstimate{
		ServiceID:     service.ServiceID,
		Packages:      groups,
		TotalPackages: len(groups),
	}, nil
}
