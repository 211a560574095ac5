package pricing

import (
	"context"
	"errors"
	"fmt"

	"cabdesk/models"
)

// fakeStore is an in-memory DataStore for engine tests.
type fakeStore struct {
	service    *models.Service
	serviceErr error
	vehicles   []models.Vehicle
	tariffs    []models.Tariff
	packages   []models.FlatPackage
	offers     []models.Offer
	offerByID  map[string]*models.Offer
	promos     map[string]*models.PromoCode
	promoUsage map[string]int
}

func (f *fakeStore) ServiceByName(_ context.Context, _, name string) (*models.Service, error) {
	if f.serviceErr != nil {
		return nil, f.serviceErr
	}
	if f.service == nil || f.service.Name != name {
		return nil, ErrServiceNotFound
	}
	return f.service, nil
}

func (f *fakeStore) ActiveVehicles(context.Context, string) ([]models.Vehicle, error) {
	return f.vehicles, nil
}

func (f *fakeStore) Tariffs(context.Context, string, string) ([]models.Tariff, error) {
	return f.tariffs, nil
}

func (f *fakeStore) FlatPackages(context.Context, string, string) ([]models.FlatPackage, error) {
	return f.packages, nil
}

func (f *fakeStore) EligibleOffers(context.Context, string, string, string) ([]models.Offer, error) {
	return f.offers, nil
}

func (f *fakeStore) OfferByID(_ context.Context, offerID string) (*models.Offer, error) {
	if o, ok := f.offerByID[offerID]; ok {
		return o, nil
	}
	return nil, ErrOfferNotFound
}

func (f *fakeStore) PromoByCode(_ context.Context, _, code string) (*models.PromoCode, error) {
	if p, ok := f.promos[code]; ok {
		return p, nil
	}
	return nil, ErrPromoNotFound
}

func (f *fakeStore) PromoUsageCount(_ context.Context, codeID, _ string) (int, error) {
	return f.promoUsage[codeID], nil
}

// fakeRoutes resolves segments from a fixed table. Unknown pairs fail, which
// is how tests simulate an unresolvable leg.
type fakeRoutes struct {
	segments map[string]Leg
	calls    int
}

func routeKey(origin, destination string) string {
	return origin + "->" + destination
}

func (f *fakeRoutes) Segment(_ context.Context, origin, destination string) (Leg, error) {
	f.calls++
	leg, ok := f.segments[routeKey(origin, destination)]
	if !ok {
		return Leg{}, fmt.Errorf("no route between %q and %q: %w", origin, destination, errors.New("NOT_FOUND"))
	}
	leg.Origin = origin
	leg.Destination = destination
	return leg, nil
}
