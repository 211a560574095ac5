package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cabdesk/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTripDaysCountsEveryCalendarDayTouched(t *testing.T) {
	cases := []struct {
		name   string
		pickup time.Time
		drop   time.Time
		want   int
	}{
		{"same day", day(2026, 3, 10).Add(23 * time.Hour), day(2026, 3, 10), 1},
		{"overnight", day(2026, 3, 10).Add(23 * time.Hour), day(2026, 3, 11).Add(1 * time.Hour), 2},
		{"late pickup early drop spans three days", day(2026, 3, 10).Add(23 * time.Hour), day(2026, 3, 12).Add(1 * time.Hour), 3},
		{"week long", day(2026, 3, 1), day(2026, 3, 7), 7},
		{"drop before pickup floors at one", day(2026, 3, 10), day(2026, 3, 8), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TripDays(tc.pickup, tc.drop))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45 Minutes", FormatDuration(45*60))
	assert.Equal(t, "1 Hours 0 Minutes", FormatDuration(3600))
	assert.Equal(t, "2 Hours 25 Minutes", FormatDuration(2*3600+25*60+40))
}

func oneWayInput() quoteInput {
	return quoteInput{
		Tariff: models.Tariff{
			TariffID:   "t1",
			Price:      100,
			DriverBeta: 50,
		},
		Service:     models.Service{ServiceID: "s1", Name: models.ServiceOneWay, TaxGST: 5},
		ServiceType: models.ServiceOneWay,
		DistanceKm:  10,
		Duration:    "1 Hours 0 Minutes",
		Days:        1,
	}
}

func TestOneWayFareWithoutDiscount(t *testing.T) {
	fare, err := calculateFare(oneWayInput())
	require.NoError(t, err)

	assert.Equal(t, float64(1000), fare.BaseFare)
	assert.Equal(t, float64(50), fare.TaxAmount)
	assert.Equal(t, float64(50), fare.DriverBeta)
	assert.Equal(t, float64(1100), fare.FinalPrice)
	assert.Equal(t, float64(1100), fare.BeforeDiscountPrice)
}

func TestOneWayFareEnforcesMinimumKilometers(t *testing.T) {
	in := oneWayInput()
	in.Service.MinKm = 130
	in.DistanceKm = 10

	fare, err := calculateFare(in)
	require.NoError(t, err)
	assert.Equal(t, float64(13000), fare.BaseFare)
}

func TestFareTaxComputedOnUndiscountedBase(t *testing.T) {
	in := oneWayInput()
	in.Offer = &models.Offer{OfferID: "o1", OfferName: "Monsoon", Type: models.DiscountFlat, Value: 400, Limit: 5}

	fare, err := calculateFare(in)
	require.NoError(t, err)

	// Tax stays on the gross 1000 even though 400 came off the base.
	assert.Equal(t, float64(50), fare.TaxAmount)
	assert.Equal(t, float64(400), fare.DiscountApplyPrice)
	assert.Equal(t, float64(700), fare.FinalPrice)
}

func TestFareDiscountNeverDrivesBaseNegative(t *testing.T) {
	in := oneWayInput()
	in.Offer = &models.Offer{OfferID: "o1", Type: models.DiscountFlat, Value: 5000, Limit: 5}

	fare, err := calculateFare(in)
	require.NoError(t, err)

	// max(0, 1000-5000) + tax 50 + beta 50
	assert.Equal(t, float64(100), fare.FinalPrice)
}

func TestRoundTripFareDoublesDistanceAndMultipliesBeta(t *testing.T) {
	in := oneWayInput()
	in.ServiceType = models.ServiceRoundTrip
	in.Service.Name = models.ServiceRoundTrip
	in.Service.MinKm = 250
	in.DistanceKm = 100
	in.Days = 2

	fare, err := calculateFare(in)
	require.NoError(t, err)

	// max(100*2, 250*2) = 500 chargeable km at 100/km.
	assert.Equal(t, float64(50000), fare.BaseFare)
	assert.Equal(t, float64(100), fare.DriverBeta)
	assert.Equal(t, 2, fare.Days)
}

func TestRoundTripWithStopsChargesResolvedDistanceOnly(t *testing.T) {
	in := oneWayInput()
	in.ServiceType = models.ServiceRoundTrip
	in.Service.MinKm = 250
	in.DistanceKm = 300 // already includes the return leg
	in.Days = 1
	in.HasStops = true
	in.Stops = []string{"Salem"}

	fare, err := calculateFare(in)
	require.NoError(t, err)
	assert.Equal(t, float64(30000), fare.BaseFare)
	assert.Equal(t, float64(300), fare.Distance)
}

func TestAirportFareSkipsSurcharges(t *testing.T) {
	in := oneWayInput()
	in.ServiceType = models.ServiceAirportPickup
	in.Tariff.Toll = 120
	in.Tariff.Hill = 80
	in.Tariff.PermitCharge = 60
	in.Service.MinKm = 130 // no minimum on airport transfers either

	fare, err := calculateFare(in)
	require.NoError(t, err)

	assert.Equal(t, float64(1000), fare.BaseFare)
	assert.Zero(t, fare.Toll)
	assert.Zero(t, fare.Hill)
	assert.Zero(t, fare.PermitCharge)
	assert.Equal(t, float64(1100), fare.FinalPrice)
}

func TestFareRejectsUnknownServiceType(t *testing.T) {
	in := oneWayInput()
	in.ServiceType = "Outstation"
	_, err := calculateFare(in)
	assert.Error(t, err)
}
