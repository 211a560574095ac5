package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cabdesk/models"
)

func TestWaypointsSkipBlankStops(t *testing.T) {
	points := waypoints(TripRequest{
		PickUp:      "Chennai",
		Drop:        "Madurai",
		Stops:       []string{" ", "Trichy", ""},
		ServiceType: models.ServiceOneWay,
	})
	assert.Equal(t, []string{"Chennai", "Trichy", "Madurai"}, points)
}

func TestWaypointsRoundTripWithStopsAppendsReturnLeg(t *testing.T) {
	points := waypoints(TripRequest{
		PickUp:      "Chennai",
		Drop:        "Madurai",
		Stops:       []string{"Trichy"},
		ServiceType: models.ServiceRoundTrip,
	})
	assert.Equal(t, []string{"Chennai", "Trichy", "Madurai", "Chennai"}, points)
}

func TestWaypointsRoundTripWithoutStopsHasNoReturnLeg(t *testing.T) {
	// Doubling for plain round trips happens in the fare math, not here.
	points := waypoints(TripRequest{
		PickUp:      "Chennai",
		Drop:        "Madurai",
		ServiceType: models.ServiceRoundTrip,
	})
	assert.Equal(t, []string{"Chennai", "Madurai"}, points)
}

func TestResolveRouteSumsLegs(t *testing.T) {
	routes := &fakeRoutes{segments: map[string]Leg{
		routeKey("A", "B"): {DistanceKm: 100, DurationSecs: 7200},
		routeKey("B", "C"): {DistanceKm: 50, DurationSecs: 3600},
	}}
	eng := NewEngine(&fakeStore{}, routes)

	route, err := eng.ResolveRoute(context.Background(), TripRequest{
		PickUp: "A", Drop: "C", Stops: []string{"B"}, ServiceType: models.ServiceOneWay,
	})
	require.NoError(t, err)

	assert.Equal(t, 150, route.TotalKm)
	assert.Equal(t, 10800, route.TotalSecs)
	require.Len(t, route.Legs, 2)
	assert.Equal(t, "A", route.Legs[0].Origin)
	assert.Equal(t, "C", route.Legs[1].Destination)
}

func TestResolveRouteDeduplicatesRepeatedSegments(t *testing.T) {
	routes := &fakeRoutes{segments: map[string]Leg{
		routeKey("A", "B"): {DistanceKm: 10, DurationSecs: 600},
		routeKey("B", "A"): {DistanceKm: 10, DurationSecs: 600},
	}}
	eng := NewEngine(&fakeStore{}, routes)

	// A -> B -> A -> B -> A: four legs, only two distinct lookups.
	route, err := eng.ResolveRoute(context.Background(), TripRequest{
		PickUp: "A", Drop: "B", Stops: []string{"B", "A"}, ServiceType: models.ServiceRoundTrip,
	})
	require.NoError(t, err)

	assert.Equal(t, 40, route.TotalKm)
	assert.Len(t, route.Legs, 4)
	assert.Equal(t, 2, routes.calls)
}

func TestResolveRouteFailsWholeRouteOnOneBadLeg(t *testing.T) {
	routes := &fakeRoutes{segments: map[string]Leg{
		routeKey("A", "B"): {DistanceKm: 100, DurationSecs: 7200},
	}}
	eng := NewEngine(&fakeStore{}, routes)

	_, err := eng.ResolveRoute(context.Background(), TripRequest{
		PickUp: "A", Drop: "C", Stops: []string{"B"}, ServiceType: models.ServiceOneWay,
	})
	assert.ErrorIs(t, err, ErrRouteUnavailable)
}

func TestResolveRouteRejectsDegenerateTrips(t *testing.T) {
	eng := NewEngine(&fakeStore{}, &fakeRoutes{})

	_, err := eng.ResolveRoute(context.Background(), TripRequest{PickUp: "A", ServiceType: models.ServiceOneWay})
	assert.ErrorIs(t, err, ErrRouteUnavailable)

	_, err = eng.ResolveRoute(context.Background(), TripRequest{PickUp: "A", Drop: "A", ServiceType: models.ServiceOneWay})
	assert.ErrorIs(t, err, ErrRouteUnavailable)
}
