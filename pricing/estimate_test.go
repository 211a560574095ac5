package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cabdesk/models"
)

func fieldNames(errs []FieldError) []string {
	var names []string
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func TestValidateTripRequiredFields(t *testing.T) {
	errs := ValidateTrip(TripRequest{})
	assert.ElementsMatch(t, []string{"pickUp", "serviceType", "pickupDateTime", "drop"}, fieldNames(errs))
}

func TestValidateTripRoundTripNeedsDropDate(t *testing.T) {
	errs := ValidateTrip(TripRequest{
		PickUp:         "Chennai",
		Drop:           "Madurai",
		PickupDateTime: "2026-03-10 09:00",
		ServiceType:    models.ServiceRoundTrip,
	})
	assert.Equal(t, []string{"dropDate"}, fieldNames(errs))
}

func TestValidateTripDropDateBeforePickupRejected(t *testing.T) {
	errs := ValidateTrip(TripRequest{
		PickUp:         "Chennai",
		Drop:           "Madurai",
		PickupDateTime: "2026-03-10 09:00",
		DropDate:       "2026-03-08",
		ServiceType:    models.ServiceRoundTrip,
	})
	assert.Equal(t, []string{"dropDate"}, fieldNames(errs))
}

func TestValidateTripPackageServiceNeedsNoDrop(t *testing.T) {
	errs := ValidateTrip(TripRequest{
		PickUp:         "Chennai",
		PickupDateTime: "2026-03-10T09:00",
		ServiceType:    models.ServiceHourlyPackages,
	})
	assert.Empty(t, errs)
}

func TestValidateTripUnknownServiceType(t *testing.T) {
	errs := ValidateTrip(TripRequest{
		PickUp:         "Chennai",
		Drop:           "Madurai",
		PickupDateTime: "2026-03-10 09:00",
		ServiceType:    "Rental",
	})
	assert.Equal(t, []string{"serviceType"}, fieldNames(errs))
}

func estimationFixture() (*fakeStore, *fakeRoutes) {
	store := &fakeStore{
		service: &models.Service{ServiceID: "svc1", Name: models.ServiceOneWay, TaxGST: 5, MinKm: 0, IsActive: true},
		vehicles: []models.Vehicle{
			{VehicleID: "v1", Name: "Swift Dzire", Type: "Sedan", Seats: 4, Bags: 2},
			{VehicleID: "v2", Name: "Innova", Type: "SUV", Seats: 7, Bags: 4},
		},
		tariffs: []models.Tariff{
			{TariffID: "t1", VehicleID: "v1", Price: 14, DriverBeta: 300},
			{TariffID: "t2", VehicleID: "v2", Price: 19, DriverBeta: 400},
		},
	}
	routes := &fakeRoutes{segments: map[string]Leg{
		routeKey("Chennai", "Madurai"): {DistanceKm: 460, DurationSecs: 8 * 3600},
	}}
	return store, routes
}

func oneWayRequest() TripRequest {
	return TripRequest{
		AdminID:        "admin",
		CustomerID:     "cust",
		PickUp:         "Chennai",
		Drop:           "Madurai",
		PickupDateTime: "2026-03-10 09:00",
		ServiceType:    models.ServiceOneWay,
	}
}

func TestEstimateTripPricesEveryVehicle(t *testing.T) {
	store, routes := estimationFixture()
	eng := NewEngine(store, routes)

	est, err := eng.EstimateTrip(context.Background(), oneWayRequest())
	require.NoError(t, err)

	assert.Equal(t, "svc1", est.ServiceID)
	assert.Equal(t, float64(460), est.TotalDistanceKm)
	require.Len(t, est.Vehicles, 2)

	sedan := est.Vehicles[0]
	assert.Equal(t, "v1", sedan.VehicleID)
	require.Len(t, sedan.Fares, 1)
	fare := sedan.Fares[0]
	assert.Equal(t, float64(460*14), fare.BaseFare)
	assert.Equal(t, "8 Hours 0 Minutes", fare.Duration)
	assert.Equal(t, 1, fare.Days)
}

func TestEstimateTripAppliesBestOffer(t *testing.T) {
	store, routes := estimationFixture()
	store.offers = []models.Offer{
		{OfferID: "all", OfferName: "Everyone", Category: models.CategoryAll, Type: models.DiscountFlat, Value: 50, Limit: 5},
		{OfferID: "oneway", OfferName: "One Way Special", Category: models.ServiceOneWay, Type: models.DiscountFlat, Value: 100, Limit: 5},
	}
	eng := NewEngine(store, routes)

	est, err := eng.EstimateTrip(context.Background(), oneWayRequest())
	require.NoError(t, err)

	fare := est.Vehicles[0].Fares[0]
	assert.Equal(t, "oneway", fare.OfferID)
	assert.Equal(t, float64(100), fare.DiscountApplyPrice)
}

func TestEstimateTripUnknownService(t *testing.T) {
	store, routes := estimationFixture()
	eng := NewEngine(store, routes)

	req := oneWayRequest()
	req.ServiceType = models.ServiceAirportDrop
	_, err := eng.EstimateTrip(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestEstimateTripNoVehicles(t *testing.T) {
	store, routes := estimationFixture()
	store.vehicles = nil
	eng := NewEngine(store, routes)

	_, err := eng.EstimateTrip(context.Background(), oneWayRequest())
	assert.ErrorIs(t, err, ErrNoVehicles)
}

func TestEstimateTripNoTariffs(t *testing.T) {
	store, routes := estimationFixture()
	store.tariffs = nil
	eng := NewEngine(store, routes)

	_, err := eng.EstimateTrip(context.Background(), oneWayRequest())
	assert.ErrorIs(t, err, ErrNoTariffs)
}

func TestEstimateTripFailsEntirelyOnUnresolvableLeg(t *testing.T) {
	store, routes := estimationFixture()
	eng := NewEngine(store, routes)

	req := oneWayRequest()
	req.Stops = []string{"Atlantis"}
	est, err := eng.EstimateTrip(context.Background(), req)

	assert.ErrorIs(t, err, ErrRouteUnavailable)
	assert.Nil(t, est)
}

func TestEstimateTripSkipsVehiclesWithoutQuotableFares(t *testing.T) {
	store, routes := estimationFixture()
	// SUV tariff prices to zero; the sedan still quotes.
	store.tariffs[1].Price = 0
	store.tariffs[1].DriverBeta = 0
	store.service.TaxGST = 0
	eng := NewEngine(store, routes)

	est, err := eng.EstimateTrip(context.Background(), oneWayRequest())
	require.NoError(t, err)
	require.Len(t, est.Vehicles, 1)
	assert.Equal(t, "v1", est.Vehicles[0].VehicleID)
}

func TestEstimateTripNoQuotesAtAll(t *testing.T) {
	store, routes := estimationFixture()
	store.service.TaxGST = 0
	for i := range store.tariffs {
		store.tariffs[i].Price = 0
		store.tariffs[i].DriverBeta = 0
	}
	eng := NewEngine(store, routes)

	_, err := eng.EstimateTrip(context.Background(), oneWayRequest())
	assert.ErrorIs(t, err, ErrNoQuotes)
}

func TestEstimateTripRoundTripUsesDayCount(t *testing.T) {
	store, routes := estimationFixture()
	store.service.Name = models.ServiceRoundTrip
	store.service.MinKm = 250
	eng := NewEngine(store, routes)

	req := oneWayRequest()
	req.ServiceType = models.ServiceRoundTrip
	req.DropDate = "2026-03-12"
	est, err := eng.EstimateTrip(context.Background(), req)
	require.NoError(t, err)

	fare := est.Vehicles[0].Fares[0]
	assert.Equal(t, 3, fare.Days)
	// max(460*2, 250*3) = 920 km at 14/km, beta 300 a day.
	assert.Equal(t, float64(920*14), fare.BaseFare)
	assert.Equal(t, float64(900), fare.DriverBeta)
}

func TestEstimatePackages(t *testing.T) {
	sedan := &models.Vehicle{VehicleID: "v1", Name: "Swift Dzire", Type: "Sedan", Seats: 4, Bags: 2}
	suv := &models.Vehicle{VehicleID: "v2", Name: "Innova", Type: "SUV", Seats: 7, Bags: 4}
	store := &fakeStore{
		service: &models.Service{ServiceID: "svc2", Name: models.ServiceHourlyPackages, TaxGST: 5, IsActive: true},
		packages: []models.FlatPackage{
			{PackageID: "p1", Units: 4, DistanceLimit: 40, Price: 1200, DriverBeta: 100, Vehicle: sedan},
			{PackageID: "p2", Units: 4, DistanceLimit: 40, Price: 1800, DriverBeta: 150, Vehicle: suv},
			{PackageID: "p3", Units: 8, DistanceLimit: 80, Price: 2200, DriverBeta: 200, Vehicle: sedan},
		},
	}
	eng := NewEngine(store, &fakeRoutes{})

	req := oneWayRequest()
	req.Drop = ""
	req.ServiceType = models.ServiceHourlyPackages
	est, err := eng.EstimatePackages(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, 2, est.TotalPackages)
	first := est.Packages[0]
	assert.Equal(t, "4 Hours 40 Km", first.DisplayName)
	assert.Equal(t, 2, first.TotalVehicles)
	assert.Equal(t, "8 Hours 80 Km", est.Packages[1].DisplayName)
}

func TestEstimatePackagesEmptyCatalog(t *testing.T) {
	store := &fakeStore{
		service: &models.Service{ServiceID: "svc2", Name: models.ServiceDayPackages, IsActive: true},
	}
	eng := NewEngine(store, &fakeRoutes{})

	req := oneWayRequest()
	req.ServiceType = models.ServiceDayPackages
	_, err := eng.EstimatePackages(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoPackages)
}
