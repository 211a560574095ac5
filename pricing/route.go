package pricing

import (
	"context"
	"fmt"
	"strings"

	"cabdesk/models"
)

// Route is a resolved multi-stop journey: the ordered legs plus their sums.
type Route struct {
	Legs      []Leg
	TotalKm   int
	TotalSecs int
}

// waypoints expands a trip into the ordered address sequence to resolve.
// Round trips with intermediate stops get an explicit return leg back to the
// pickup point; without stops the doubling happens in the fare math instead.
func waypoints(req TripRequest) []string {
	points := []string{strings.TrimSpace(req.PickUp)}
	for _, stop := range req.Stops {
		if s := strings.TrimSpace(stop); s != "" {
			points = append(points, s)
		}
	}
	if d := strings.TrimSpace(req.Drop); d != "" {
		points = append(points, d)
	}
	if req.ServiceType == models.ServiceRoundTrip && len(points) > 2 {
		points = append(points, strings.TrimSpace(req.PickUp))
	}
	return points
}

// ResolveRoute resolves every consecutive leg of the trip and sums distance
// and duration. Repeated (origin, destination) pairs within one request are
// looked up once. Any unresolvable leg fails the whole route; a partial sum
// would silently underquote.
func (e *Engine) ResolveRoute(ctx context.Context, req TripRequest) (*Route, error) {
	points := waypoints(req)
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: need at least a pickup and a drop", ErrRouteUnavailable)
	}

	seen := make(map[string]Leg)
	route := &Route{}
	for i := 0; i < len(points)-1; i++ {
		origin, destination := points[i], points[i+1]
		if origin == destination {
			continue
		}
		key := origin + "|" + destination
		leg, ok := seen[key]
		if !ok {
			var err error
			leg, err = e.Routes.Segment(ctx, origin, destination)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrRouteUnavailable, err)
			}
			seen[key] = leg
		}
		route.Legs = append(route.Legs, leg)
		route.TotalKm += leg.DistanceKm
		route.TotalSecs += leg.DurationSecs
	}
	if len(route.Legs) == 0 {
		return nil, fmt.Errorf("%w: pickup and drop resolve to the same point", ErrRouteUnavailable)
	}
	return route, nil
}
