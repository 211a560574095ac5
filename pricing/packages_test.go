package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cabdesk/models"
)

func TestPackageLabels(t *testing.T) {
	assert.Equal(t, "1 Hour 10 Km", PackageLabel(models.ServiceHourlyPackages, 1, 10))
	assert.Equal(t, "4 Hours 40 Km", PackageLabel(models.ServiceHourlyPackages, 4, 40))
	assert.Equal(t, "1 Day 150 Km", PackageLabel(models.ServiceDayPackages, 1, 150))
	assert.Equal(t, "2 Days 250 Km", PackageLabel(models.ServiceDayPackages, 2, 250))
}

func TestGroupPackagesBucketsByPlan(t *testing.T) {
	sedan := &models.Vehicle{VehicleID: "v1", Name: "Swift Dzire", Type: "Sedan", Seats: 4, Bags: 2}
	van := &models.Vehicle{VehicleID: "v2", Name: "Tempo", Type: "Van", Seats: 12, Bags: 8}
	svc := models.Service{ServiceID: "svc", TaxGST: 5}

	groups := GroupPackages([]models.FlatPackage{
		{PackageID: "p1", Units: 4, DistanceLimit: 40, Price: 1000, DriverBeta: 100, ExtraPrice: 12, Vehicle: sedan},
		{PackageID: "p2", Units: 4, DistanceLimit: 40, Price: 2000, DriverBeta: 200, ExtraPrice: 18, Vehicle: van},
		{PackageID: "p3", Units: 4, DistanceLimit: 60, Price: 1400, DriverBeta: 100, ExtraPrice: 12, Vehicle: sedan},
	}, svc, models.ServiceHourlyPackages, nil)

	require.Len(t, groups, 2)
	assert.Equal(t, "4 Hours 40 Km", groups[0].DisplayName)
	assert.Equal(t, 2, groups[0].TotalVehicles)
	assert.Equal(t, "4 Hours 60 Km", groups[1].DisplayName)
	assert.Equal(t, 1, groups[1].TotalVehicles)

	sedanPlan := groups[0].Vehicles[0]
	assert.Equal(t, "v1", sedanPlan.VehicleID)
	assert.Equal(t, float64(1000), sedanPlan.BaseFare)
	assert.Equal(t, float64(50), sedanPlan.TaxAmount)
	assert.Equal(t, float64(1150), sedanPlan.FinalPrice)
}

func TestGroupPackagesAppliesOffer(t *testing.T) {
	sedan := &models.Vehicle{VehicleID: "v1", Name: "Swift Dzire", Type: "Sedan"}
	svc := models.Service{ServiceID: "svc", TaxGST: 0}
	offers := []models.Offer{
		{OfferID: "pct", OfferName: "Festive", Category: models.ServiceHourlyPackages, Type: models.DiscountPercentage, Value: 10, Limit: 5},
	}

	groups := GroupPackages([]models.FlatPackage{
		{PackageID: "p1", Units: 4, DistanceLimit: 40, Price: 1000, DriverBeta: 100, Vehicle: sedan},
	}, svc, models.ServiceHourlyPackages, offers)

	require.Len(t, groups, 1)
	v := groups[0].Vehicles[0]
	assert.Equal(t, float64(100), v.OfferAmount)
	assert.Equal(t, "pct", v.OfferID)
	// 1000 - 100 discount + 100 beta.
	assert.Equal(t, float64(1000), v.FinalPrice)
}

func TestGroupPackagesDiscountFloorsAtZero(t *testing.T) {
	sedan := &models.Vehicle{VehicleID: "v1"}
	svc := models.Service{TaxGST: 0}
	offers := []models.Offer{
		{OfferID: "big", Category: models.CategoryAll, Type: models.DiscountFlat, Value: 5000, Limit: 5},
	}

	groups := GroupPackages([]models.FlatPackage{
		{PackageID: "p1", Units: 2, DistanceLimit: 20, Price: 800, DriverBeta: 100, Vehicle: sedan},
	}, svc, models.ServiceHourlyPackages, offers)

	// Discounted base floors at zero; only the driver allowance remains.
	assert.Equal(t, float64(100), groups[0].Vehicles[0].FinalPrice)
}
