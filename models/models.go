package models

import "time"

// Service type names are a closed set configured per tenant.
const (
	ServiceOneWay         = "One way"
	ServiceRoundTrip      = "Round trip"
	ServiceAirportPickup  = "Airport Pickup"
	ServiceAirportDrop    = "Airport Drop"
	ServiceDayPackages    = "Day Packages"
	ServiceHourlyPackages = "Hourly Packages"
)

// Discount value semantics shared by offers and promo codes.
const (
	DiscountFlat       = "Flat"
	DiscountPercentage = "Percentage"

	CategoryAll = "All"
)

type Service struct {
	ServiceID string    `json:"serviceId"`
	AdminID   string    `json:"adminId"`
	Name      string    `json:"name"`
	TaxGST    float64   `json:"taxGst"`
	MinKm     float64   `json:"minKm"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Vehicle struct {
	VehicleID    string    `json:"vehicleId"`
	AdminID      string    `json:"adminId"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	FuelType     string    `json:"fuelType"`
	Seats        int       `json:"seats"`
	Bags         int       `json:"bags"`
	ImageURL     string    `json:"imageUrl"`
	Order        int       `json:"order"`
	IsActive     bool      `json:"isActive"`
	IsAdminOwned bool      `json:"isAdminVehicle"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Tariff prices one vehicle under one service. Only active, admin-authored
// tariffs with price > 1 take part in estimation.
type Tariff struct {
	TariffID     string    `json:"tariffId"`
	AdminID      string    `json:"adminId"`
	ServiceID    string    `json:"serviceId"`
	VehicleID    string    `json:"vehicleId"`
	Price        float64   `json:"price"`
	ExtraPrice   float64   `json:"extraPrice"`
	DriverBeta   float64   `json:"driverBeta"`
	Toll         float64   `json:"toll"`
	Hill         float64   `json:"hill"`
	PermitCharge float64   `json:"permitCharge"`
	Status       bool      `json:"status"`
	CreatedBy    string    `json:"createdBy"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
	Vehicle      *Vehicle  `json:"vehicle,omitempty"`
}

// Offer is a site-configured discount auto-applied by category eligibility.
// Category is one service type or "All".
type Offer struct {
	OfferID   string    `json:"offerId"`
	AdminID   string    `json:"adminId"`
	OfferName string    `json:"offerName"`
	Category  string    `json:"category"`
	Type      string    `json:"type"`
	Value     float64   `json:"value"`
	Limit     int       `json:"limit"`
	Status    bool      `json:"status"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`

	// UsageCount is the requesting customer's prior redemptions, filled in
	// by the store at read time. Never written back from here.
	UsageCount int `json:"usageCount"`
}

// PromoCode is a customer-entered discount matched by exact code string.
type PromoCode struct {
	CodeID      string    `json:"codeId"`
	AdminID     string    `json:"adminId"`
	Code        string    `json:"code"`
	PromoName   string    `json:"promoName"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	Value       float64   `json:"value"`
	MinAmount   float64   `json:"minAmount"`
	MaxDiscount float64   `json:"maxDiscount"`
	Limit       int       `json:"limit"`
	Status      bool      `json:"status"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FlatPackage is a flat-rate offering (hourly or day) for one vehicle.
// Units means hours under "Hourly Packages" and days under "Day Packages".
type FlatPackage struct {
	PackageID     string    `json:"packageId"`
	AdminID       string    `json:"adminId"`
	ServiceID     string    `json:"serviceId"`
	VehicleID     string    `json:"vehicleId"`
	Units         int       `json:"units"`
	DistanceLimit float64   `json:"distanceLimit"`
	Price         float64   `json:"price"`
	ExtraPrice    float64   `json:"extraPrice"`
	DriverBeta    float64   `json:"driverBeta"`
	Status        bool      `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	Vehicle       *Vehicle  `json:"vehicle,omitempty"`
}

type APILog struct {
	ID              string      `json:"id"`
	Provider        string      `json:"provider"`
	Endpoint        string      `json:"endpoint"`
	RequestID       *string     `json:"requestId"`
	RequestPayload  interface{} `json:"requestPayload"`
	ResponsePayload interface{} `json:"responsePayload"`
	StatusCode      int         `json:"statusCode"`
	DurationMs      int         `json:"durationMs"`
	CreatedAt       time.Time   `json:"createdAt"`
}
