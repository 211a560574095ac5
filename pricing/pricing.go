// Package pricing turns a trip request into priced quotes per vehicle and
// reconciles offer/promo discounts against a quote. It owns no persistence
// and no HTTP: collaborators are injected behind small interfaces so every
// rule is testable without a database or the mapping service.
package pricing

import (
	"context"
	"errors"

	"cabdesk/models"
)

// Validation and business-rule failures the engine can surface. Handlers
// map these onto HTTP statuses; everything else is a server fault.
var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrNoVehicles       = errors.New("no active vehicles found")
	ErrNoTariffs        = errors.New("no tariffs found")
	ErrNoQuotes         = errors.New("no valid fare calculations available")
	ErrNoPackages       = errors.New("no active packages found")
	ErrOfferNotFound    = errors.New("offer not found")
	ErrOfferCategory    = errors.New("offer not applicable for this service")
	ErrPromoNotFound    = errors.New("coupon code not found")
	ErrPromoUsedUp      = errors.New("promo code already used by this user")
	ErrPromoNotActive   = errors.New("coupon code is not yet active")
	ErrPromoExpired     = errors.New("coupon code is expired")
	ErrPromoCategory    = errors.New("promo code not applicable for this service")
	ErrPromoBelowMin    = errors.New("minimum discount not met for this coupon")
	ErrPromoRequired    = errors.New("promo code is required")
	ErrRouteUnavailable = errors.New("could not resolve route")
)

// Leg is one resolved point-to-point segment. Duration arrives typed in
// seconds from the routing collaborator; nothing downstream parses text.
type Leg struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	DistanceKm   int    `json:"distance"`
	DurationSecs int    `json:"durationSeconds"`
	DurationText string `json:"duration"`
}

// RouteSource resolves road distance and travel time between two addresses.
type RouteSource interface {
	Segment(ctx context.Context, origin, destination string) (Leg, error)
}

// DataStore is the read contract the engine needs from persistence. Usage
// counts are read-only by design: redemption rows are written at booking
// commit, never while pricing.
type DataStore interface {
	ServiceByName(ctx context.Context, adminID, name string) (*models.Service, error)
	ActiveVehicles(ctx context.Context, adminID string) ([]models.Vehicle, error)
	Tariffs(ctx context.Context, adminID, serviceID string) ([]models.Tariff, error)
	FlatPackages(ctx context.Context, adminID, serviceID string) ([]models.FlatPackage, error)
	EligibleOffers(ctx context.Context, adminID, customerID, serviceType string) ([]models.Offer, error)
	OfferByID(ctx context.Context, offerID string) (*models.Offer, error)
	PromoByCode(ctx context.Context, adminID, code string) (*models.PromoCode, error)
	PromoUsageCount(ctx context.Context, codeID, customerID string) (int, error)
}

// Engine wires the collaborators together. It is stateless and safe for
// concurrent use; every call is an independent unit of work.
type Engine struct {
	Store  DataStore
	Routes RouteSource
}

func NewEngine(store DataStore, routes RouteSource) *Engine {
	return &Engine{Store: store, Routes: routes}
}

// TripRequest is the estimation input. AdminID and CustomerID come from the
// authenticated context, the rest from the request body.
type TripRequest struct {
	AdminID        string   `json:"-"`
	CustomerID     string   `json:"-"`
	PickUp         string   `json:"pickUp"`
	Drop           string   `json:"drop"`
	Stops          []string `json:"stops"`
	PickupDateTime string   `json:"pickupDateTime"`
	DropDate       string   `json:"dropDate"`
	ServiceType    string   `json:"serviceType"`
}

// FieldError reports one invalid or missing request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Fare is the priced breakdown for one (vehicle, tariff) pair.
type Fare struct {
	TariffID            string   `json:"tariffId"`
	BaseFare            float64  `json:"baseFare"`
	PricePerKm          float64  `json:"pricePerKm"`
	MinKm               float64  `json:"minKm"`
	EstimatedPrice      float64  `json:"estimatedPrice"`
	DiscountApplyPrice  float64  `json:"discountApplyPrice"`
	BeforeDiscountPrice float64  `json:"beforeDiscountPrice"`
	FinalPrice          float64  `json:"finalPrice"`
	Distance            float64  `json:"distance"`
	Duration            string   `json:"duration"`
	DriverBeta          float64  `json:"driverBeta"`
	TaxAmount           float64  `json:"taxAmount"`
	TaxPercentage       float64  `json:"taxPercentage"`
	Toll                float64  `json:"toll"`
	Hill                float64  `json:"hill"`
	PermitCharge        float64  `json:"permitCharge"`
	OfferAmount         float64  `json:"offerAmount"`
	OfferType           string   `json:"offerType"`
	OfferID             string   `json:"offerId"`
	OfferName           string   `json:"offerName"`
	Stops               []string `json:"stops"`
	Description         string   `json:"description,omitempty"`
	Days                int      `json:"days"`
}

// VehicleFares groups the valid fares of one vehicle.
type VehicleFares struct {
	VehicleID    string `json:"vehicleId"`
	VehicleName  string `json:"vehicleName"`
	VehicleType  string `json:"vehicleType"`
	VehicleImage string `json:"vehicleImage"`
	Seats        int    `json:"seats"`
	Bags         int    `json:"bags"`
	Fares        []Fare `json:"fares"`
}

// Estimate is the distance-path response.
type Estimate struct {
	ServiceID       string         `json:"serviceId"`
	TotalDistanceKm float64        `json:"totalDistanceKm"`
	Locations       []Leg          `json:"locations"`
	Vehicles        []VehicleFares `json:"vehicles"`
}

// PackageVehicle is one priced vehicle inside a flat-rate package group.
type PackageVehicle struct {
	VehicleID           string  `json:"vehicleId"`
	Name                string  `json:"name"`
	VehicleType         string  `json:"vehicleType"`
	ImageURL            string  `json:"imageUrl"`
	Seats               int     `json:"seats"`
	Bags                int     `json:"bags"`
	PackageID           string  `json:"packageId"`
	BaseFare            float64 `json:"baseFare"`
	EstimatedPrice      float64 `json:"estimatedPrice"`
	DiscountApplyPrice  float64 `json:"discountApplyPrice"`
	BeforeDiscountPrice float64 `json:"beforeDiscountPrice"`
	FinalPrice          float64 `json:"finalPrice"`
	TaxAmount           float64 `json:"taxAmount"`
	TaxPercentage       float64 `json:"taxPercentage"`
	DriverBeta          float64 `json:"driverBeta"`
	OfferAmount         float64 `json:"offerAmount"`
	OfferType           string  `json:"offerType"`
	OfferID             string  `json:"offerId"`
	OfferName           string  `json:"offerName"`
}

// PackageGroup is one (duration, distance-allowance) bucket of packages.
type PackageGroup struct {
	DisplayName     string           `json:"packageDisplayName"`
	Units           int              `json:"units"`
	Kilometers      float64          `json:"kilometers"`
	ExtraPricePerKm float64          `json:"extraPricePerKm"`
	Vehicles        []PackageVehicle `json:"vehicles"`
	TotalVehicles   int              `json:"totalVehicles"`
}

// PackageEstimate is the flat-rate-path response.
type PackageEstimate struct {
	ServiceID     string         `json:"serviceId"`
	Packages      []PackageGroup `json:"packages"`
	TotalPackages int            `json:"totalPackages"`
}
