package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cabdesk/models"
	"cabdesk/pricing"
	"cabdesk/stores"
	"cabdesk/utils"
)

var (
	store  *stores.Store
	engine *pricing.Engine
)

// Init hands the handlers their shared collaborators. Called once at boot.
func Init(s *stores.Store, e *pricing.Engine) {
	store = s
	engine = e
}

// RegisterCustomerRoutes defines the customer-facing estimation endpoints.
func RegisterCustomerRoutes(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	customer := r.Group("/api/v1/customer")
	customer.Use(authMiddleware)
	{
		customer.POST("/estimate", CustomerEstimate)
		customer.GET("/packages", CustomerGetPackages)
		customer.GET("/offers", CustomerGetOffers)
		customer.GET("/promo-codes", CustomerGetPromoCodes)
		customer.POST("/promo/validate", CustomerValidatePromo)
	}
}

// respondPricingError maps engine errors onto the response envelope.
// Business rejections carry their own user-safe message.
func respondPricingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pricing.ErrServiceNotFound),
		errors.Is(err, pricing.ErrOfferNotFound),
		errors.Is(err, pricing.ErrPromoNotFound):
		utils.RespondError(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, pricing.ErrNoVehicles),
		errors.Is(err, pricing.ErrNoTariffs),
		errors.Is(err, pricing.ErrNoQuotes),
		errors.Is(err, pricing.ErrNoPackages),
		errors.Is(err, pricing.ErrOfferCategory),
		errors.Is(err, pricing.ErrPromoUsedUp),
		errors.Is(err, pricing.ErrPromoNotActive),
		errors.Is(err, pricing.ErrPromoExpired),
		errors.Is(err, pricing.ErrPromoCategory),
		errors.Is(err, pricing.ErrPromoBelowMin),
		errors.Is(err, pricing.ErrPromoRequired):
		utils.RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, pricing.ErrRouteUnavailable):
		// The message names the leg that failed to resolve.
		utils.RespondError(c, http.StatusBadRequest, err.Error(), err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// POST /api/v1/customer/estimate
func CustomerEstimate(c *gin.Context) {
	var req pricing.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	req.AdminID = c.GetString("adminId")
	req.CustomerID = c.GetString("customerId")

	if fieldErrs := pricing.ValidateTrip(req); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Validation failed",
			Data:    gin.H{"errors": fieldErrs},
		})
		return
	}

	ctx := c.Request.Context()
	if pricing.IsPackageService(req.ServiceType) {
		est, err := engine.EstimatePackages(ctx, req)
		if err != nil {
			respondPricingError(c, err)
			return
		}
		utils.RespondSuccess(c, http.StatusOK, "Fare estimation successful", est)
		return
	}

	est, err := engine.EstimateTrip(ctx, req)
	if err != nil {
		respondPricingError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Fare estimation successful", est)
}

// GET /api/v1/customer/packages?serviceType=Hourly%20Packages
func CustomerGetPackages(c *gin.Context) {
	adminID := c.GetString("adminId")
	serviceType := c.DefaultQuery("serviceType", models.ServiceHourlyPackages)
	if !pricing.IsPackageService(serviceType) {
		utils.RespondError(c, http.StatusBadRequest, "Service type is not package based", nil)
		return
	}

	ctx := c.Request.Context()
	service, err := store.ServiceByName(ctx, adminID, serviceType)
	if err != nil {
		respondPricingError(c, err)
		return
	}
	pkgs, err := store.FlatPackages(ctx, adminID, service.ServiceID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch packages", err)
		return
	}
	if len(pkgs) == 0 {
		utils.RespondError(c, http.StatusNotFound, "No active packages found", nil)
		return
	}

	// Distinct plan labels plus the vehicles that serve them.
	var labels []string
	seen := make(map[string]bool)
	var vehicles []*models.Vehicle
	for _, pkg := range pkgs {
		label := pricing.PackageLabel(serviceType, pkg.Units, pkg.DistanceLimit)
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
		vehicles = append(vehicles, pkg.Vehicle)
	}

	utils.RespondSuccess(c, http.StatusOK, "Packages fetched", gin.H{
		"serviceId": service.ServiceID,
		"packages":  labels,
		"vehicles":  vehicles,
	})
}

// GET /api/v1/customer/offers
func CustomerGetOffers(c *gin.Context) {
	offers, err := store.UsableOffers(c.Request.Context(), c.GetString("adminId"), c.GetString("customerId"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch offers", err)
		return
	}
	if len(offers) == 0 {
		utils.RespondSuccess(c, http.StatusOK, "No valid offers found", []models.Offer{})
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Offers fetched", offers)
}

// GET /api/v1/customer/promo-codes
func CustomerGetPromoCodes(c *gin.Context) {
	promos, err := store.UsablePromos(c.Request.Context(), c.GetString("adminId"), c.GetString("customerId"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch promo codes", err)
		return
	}
	if len(promos) == 0 {
		utils.RespondSuccess(c, http.StatusOK, "No valid promo codes found", []models.PromoCode{})
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Promo codes fetched", promos)
}

// POST /api/v1/customer/promo/validate
func CustomerValidatePromo(c *gin.Context) {
	var req pricing.PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	req.AdminID = c.GetString("adminId")
	req.CustomerID = c.GetString("customerId")

	if req.ServiceType == "" {
		utils.RespondError(c, http.StatusBadRequest, "Service type is required", nil)
		return
	}
	if req.ActionType != "applyPromo" && req.ActionType != "removePromo" {
		utils.RespondError(c, http.StatusBadRequest, "actionType must be applyPromo or removePromo", nil)
		return
	}

	res, err := engine.ValidatePromo(c.Request.Context(), req)
	if err != nil {
		respondPricingError(c, err)
		return
	}

	message := "Promo applied successfully"
	if req.ActionType == "removePromo" {
		message = "Promo removed, offer applied if available"
	}
	utils.RespondSuccess(c, http.StatusOK, message, res)
}
