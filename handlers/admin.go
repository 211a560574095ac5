package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cabdesk/db"
	"cabdesk/models"
	"cabdesk/utils"
)

// RegisterAdminRoutes defines all administrative API endpoints
func RegisterAdminRoutes(r *gin.Engine, adminMiddleware gin.HandlerFunc) {
	adminGroup := r.Group("/api/v1/admin")
	adminGroup.Use(adminMiddleware)
	{
		// Service Management
		adminGroup.GET("/services", AdminGetServices)
		adminGroup.POST("/service", AdminUpsertService)
		adminGroup.DELETE("/service/:id", AdminDeactivateService)

		// Vehicle Management
		adminGroup.GET("/vehicles", AdminGetVehicles)
		adminGroup.POST("/vehicle", AdminUpsertVehicle)
		adminGroup.DELETE("/vehicle/:id", AdminDeactivateVehicle)

		// Tariff Management
		adminGroup.GET("/tariffs", AdminGetTariffs)
		adminGroup.POST("/tariff", AdminUpsertTariff)
		adminGroup.DELETE("/tariff/:id", AdminDeactivateTariff)

		// Offer Management
		adminGroup.GET("/offers", AdminGetOffers)
		adminGroup.POST("/offer", AdminUpsertOffer)
		adminGroup.DELETE("/offer/:id", AdminDeactivateOffer)

		// Promo Code Management
		adminGroup.GET("/promo-codes", AdminGetPromoCodes)
		adminGroup.POST("/promo-code", AdminUpsertPromoCode)
		adminGroup.DELETE("/promo-code/:id", AdminDeactivatePromoCode)

		// Flat Package Management
		adminGroup.GET("/packages", AdminGetPackages)
		adminGroup.POST("/package", AdminUpsertPackage)
		adminGroup.DELETE("/package/:id", AdminDeactivatePackage)

		// Booking commit: the only place discount usage is written
		adminGroup.POST("/booking/commit", AdminCommitBooking)
	}
}

// GET /api/v1/admin/services?adminId=
func AdminGetServices(c *gin.Context) {
	adminID := c.Query("adminId")
	rows, err := db.Pool.Query(context.Background(),
		`SELECT "serviceId", "adminId", name, "taxGst", "minKm", "isActive", "createdAt", "updatedAt"
		 FROM services WHERE "adminId"=$1 ORDER BY name`, adminID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch services", err)
		return
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(&s.ServiceID, &s.AdminID, &s.Name, &s.TaxGST, &s.MinKm, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch services", err)
			return
		}
		services = append(services, s)
	}
	utils.RespondSuccess(c, http.StatusOK, "Services fetched", services)
}

// POST /api/v1/admin/service — create or update by id
func AdminUpsertService(c *gin.Context) {
	var body struct {
		ID      string  `json:"serviceId"`
		AdminID string  `json:"adminId" binding:"required"`
		Name    string  `json:"name" binding:"required"`
		TaxGST  float64 `json:"taxGst"`
		MinKm   float64 `json:"minKm"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	if body.ID != "" {
		_, err := db.Pool.Exec(context.Background(),
			`UPDATE services SET name=$1, "taxGst"=$2, "minKm"=$3, "updatedAt"=NOW() WHERE "serviceId"=$4 AND "adminId"=$5`,
			body.Name, body.TaxGST, body.MinKm, body.ID, body.AdminID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Failed to update service", err)
			return
		}
		utils.RespondSuccess(c, http.StatusOK, "Service updated", nil)
		return
	}

	var id string
	err := db.Pool.QueryRow(context.Background(),
		`INSERT INTO services ("adminId", name, "taxGst", "minKm")
		 VALUES ($1, $2, $3, $4) RETURNING "serviceId"`,
		body.AdminID, body.Name, body.TaxGST, body.MinKm).Scan(&id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create service", err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "Service created", gin.H{"serviceId": id})
}

// DELETE /api/v1/admin/service/:id — soft delete (deactivate)
func AdminDeactivateService(c *gin.Context) {
	_, err := db.Pool.Exec(context.Background(),
		`UPDATE services SET "isActive"=FALSE, "updatedAt"=NOW() WHERE "serviceId"=$1`, c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to deactivate service", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Service deactivated", nil)
}

// GET /api/v1/admin/vehicles?adminId=
func AdminGetVehicles(c *gin.Context) {
	adminID := c.Query("adminId")
	rows, err := db.Pool.Query(context.Background(),
		`SELECT "vehicleId", "adminId", name, type, COALESCE("fuelType", ''), seats, bags,
		        COALESCE("imageUrl", ''), "order", "isActive", "isAdminVehicle", "createdAt", "updatedAt"
		 FROM vehicles WHERE "adminId"=$1 ORDER BY "order" ASC`, adminID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch vehicles", err)
		return
	}
	defer rows.Close()

	var vehicles []models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.VehicleID, &v.AdminID, &v.Name, &v.Type, &v.FuelType, &v.Seats, &v.Bags,
			&v.ImageURL, &v.Order, &v.IsActive, &v.IsAdminOwned, &v.CreatedAt, &v.UpdatedAt); err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch vehicles", err)
			return
		}
		vehicles = append(vehicles, v)
	}
	utils.RespondSuccess(c, http.StatusOK, "Vehicles fetched", vehicles)
}

// POST /api/v1/admin/vehicle
func AdminUpsertVehicle(c *gin.Context) {
	var body struct {
		ID       string `json:"vehicleId"`
		AdminID  string `json:"adminId" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Type     string `json:"type" binding:"required"`
		FuelType string `json:"fuelType"`
		Seats    int    `json:"seats"`
		Bags     int    `json:"bags"`
		ImageURL string `json:"imageUrl"`
		Order    int    `json:"order"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	if body.Seats == 0 {
		body.Seats = 4
	}
	if body.Bags == 0 {
		body.Bags = 2
	}

	if body.ID != "" {
		_, err := db.Pool.Exec(context.Background(),
			`UPDATE vehicles SET name=$1, type=$2, "fuelType"=$3, seats=$4, bags=$5, "imageUrl"=$6, "order"=$7, "updatedAt"=NOW()
			 WHERE "vehicleId"=$8 AND "adminId"=$9`,
			body.Name, body.Type, body.FuelType, body.Seats, body.Bags, body.ImageURL, body.Order, body.ID, body.AdminID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Failed to update vehicle", err)
			return
		}
		utils.RespondSuccess(c, http.StatusOK, "Vehicle updated", nil)
		return
	}

	var id string
	err := db.Pool.QueryRow(context.Background(),
		`INSERT INTO vehicles ("adminId", name, type, "fuelType", seats, bags, "imageUrl", "order")
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING "vehicleId"`,
		body.AdminID, body.Name, body.Type, body.FuelType, body.Seats, body.Bags, body.ImageURL, body.Order).Scan(&id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create vehicle", err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "Vehicle created", gin.H{"vehicleId": id})
}

// DELETE /api/v1/admin/vehicle/:id
func AdminDeactivateVehicle(c *gin.Context) {
	_, err := db.Pool.Exec(context.Background(),
		`UPDATE vehicles SET "isActive"=FALSE, "updatedAt"=NOW() WHERE "vehicleId"=$1`, c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to deactivate vehicle", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Vehicle deactivated", nil)
}

// GET /api/v1/admin/tariffs?adminId=&serviceId=
func AdminGetTariffs(c *gin.Context) {
	rows, err := db.Pool.Query(context.Background(),
		`SELECT "tariffId", "adminId", "serviceId", "vehicleId", price, "extraPrice", "driverBeta",
		        toll, hill, "permitCharge", status, "createdBy", COALESCE(description, ''), "createdAt"
		 FROM tariffs WHERE "adminId"=$1 AND "serviceId"=$2`,
		c.Query("adminId"), c.Query("serviceId"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch tariffs", err)
		return
	}
	defer rows.Close()

	var tariffs []models.Tariff
	for rows.Next() {
		var t models.Tariff
		if err := rows.Scan(&t.TariffID, &t.AdminID, &t.ServiceID, &t.VehicleID, &t.Price, &t.ExtraPrice,
			&t.DriverBeta, &t.Toll, &t.Hill, &t.PermitCharge, &t.Status, &t.CreatedBy, &t.Description, &t.CreatedAt); err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch tariffs", err)
			return
		}
		tariffs = append(tariffs, t)
	}
	utils.RespondSuccess(c, http.StatusOK, "Tariffs fetched", tariffs)
}

// POST /api/v1/admin/tariff
func AdminUpsertTariff(c *gin.Context) {
	var body struct {
		ID           string  `json:"tariffId"`
		AdminID      string  `json:"adminId" binding:"required"`
		ServiceID    string  `json:"serviceId" binding:"required"`
		VehicleID    string  `json:"vehicleId" binding:"required"`
		Price        float64 `json:"price" binding:"required"`
		ExtraPrice   float64 `json:"extraPrice"`
		DriverBeta   float64 `json:"driverBeta"`
		Toll         float64 `json:"toll"`
		Hill         float64 `json:"hill"`
		PermitCharge float64 `json:"permitCharge"`
		Description  string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	if body.ID != "" {
		_, err := db.Pool.Exec(context.Background(),
			`UPDATE tariffs SET price=$1, "extraPrice"=$2, "driverBeta"=$3, toll=$4, hill=$5,
			        "permitCharge"=$6, description=$7, "updatedAt"=NOW()
			 WHERE "tariffId"=$8 AND "adminId"=$9`,
			body.Price, body.ExtraPrice, body.DriverBeta, body.Toll, body.Hill,
			body.PermitCharge, body.Description, body.ID, body.AdminID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Failed to update tariff", err)
			return
		}
		utils.RespondSuccess(c, http.StatusOK, "Tariff updated", nil)
		return
	}

	var id string
	err := db.Pool.QueryRow(context.Background(),
		`INSERT INTO tariffs ("adminId", "serviceId", "vehicleId", price, "extraPrice", "driverBeta",
		                      toll, hill, "permitCharge", description, "createdBy")
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'Admin') RETURNING "tariffId"`,
		body.AdminID, body.ServiceID, body.VehicleID, body.Price, body.ExtraPrice, body.DriverBeta,
		body.Toll, body.Hill, body.PermitCharge, body.Description).Scan(&id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create tariff", err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "Tariff created", gin.H{"tariffId": id})
}

// DELETE /api/v1/admin/tariff/:id
func AdminDeactivateTariff(c *gin.Context) {
	_, err := db.Pool.Exec(context.Background(),
		`UPDATE tariffs SET status=FALSE, "updatedAt"=NOW() WHERE "tariffId"=$1`, c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to deactivate tariff", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Tariff deactivated", nil)
}

// GET /api/v1/admin/offers?adminId=
func AdminGetOffers(c *gin.Context) {
	rows, err := db.Pool.Query(context.Background(),
		`SELECT "offerId", "adminId", "offerName", category, type, value, "limit", status,
		        "startDate", "endDate", "createdAt"
		 FROM offers WHERE "adminId"=$1 ORDER BY "createdAt" DESC`, c.Query("adminId"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch offers", err)
		return
	}
	defer rows.Close()

	var offers []models.Offer
	for rows.Next() {
		var o models.Offer
		if err := rows.Scan(&o.OfferID, &o.AdminID, &o.OfferName, &o.Category, &o.Type, &o.Value,
			&o.Limit, &o.Status, &o.StartDate, &o.EndDate, &o.CreatedAt); err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch offers", err)
			return
		}
		offers = append(offers, o)
	}
	utils.RespondSuccess(c, http.StatusOK, "Offers fetched", offers)
}

// POST /api/v1/admin/offer
func AdminUpsertOffer(c *gin.Context) {
	var body struct {
		ID        string    `json:"offerId"`
		AdminID   string    `json:"adminId" binding:"required"`
		OfferName string    `json:"offerName" binding:"required"`
		Category  string    `json:"category"`
		Type      string    `json:"type" binding:"required"`
		Value     float64   `json:"value" binding:"required"`
		Limit     int       `json:"limit"`
		StartDate time.Time `json:"startDate" binding:"required"`
		EndDate   time.Time `json:"endDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	if body.Type != models.DiscountFlat && body.Type != models.DiscountPercentage {
		utils.RespondError(c, http.StatusBadRequest, "type must be Flat or Percentage", nil)
		return
	}
	if body.Category == "" {
		body.Category = models.CategoryAll
	}
	if body.Limit == 0 {
		body.Limit = 1
	}

	if body.ID != "" {
		_, err := db.Pool.Exec(context.Background(),
			`UPDATE offers SET "offerName"=$1, category=$2, type=$3, value=$4, "limit"=$5,
			        "startDate"=$6, "endDate"=$7, "updatedAt"=NOW()
			 WHERE "offerId"=$8 AND "adminId"=$9`,
			body.OfferName, body.Category, body.Type, body.Value, body.Limit,
			body.StartDate, body.EndDate, body.ID, body.AdminID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Failed to update offer", err)
			return
		}
		utils.RespondSuccess(c, http.StatusOK, "Offer updated", nil)
		return
	}

	var id string
	err := db.Pool.QueryRow(context.Background(),
		`INSERT INTO offers ("adminId", "offerName", category, type, value, "limit", "startDate", "endDate")
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING "offerId"`,
		body.AdminID, body.OfferName, body.Category, body.Type, body.Value, body.Limit,
		body.StartDate, body.EndDate).Scan(&id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create offer", err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "Offer created", gin.H{"offerId": id})
}

// DELETE /api/v1/admin/offer/:id
func AdminDeactivateOffer(c *gin.Context) {
	_, err := db.Pool.Exec(context.Background(),
		`UPDATE offers SET status=FALSE, "updatedAt"=NOW() WHERE "offerId"=$1`, c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to deactivate offer", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Offer deactivated", nil)
}

// GET /api/v1/admin/promo-codes?adminId=
func AdminGetPromoCodes(c *gin.Context) {
	rows, err := db.Pool.Query(context.Background(),
		`SELECT "codeId", "adminId", code, COALESCE("promoName", ''), category, type, value,
		        "minAmount", "maxDiscount", "limit", status, "startDate", "endDate", "createdAt"
		 FROM promo_codes WHERE "adminId"=$1 ORDER BY "createdAt" DESC`, c.Query("adminId"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch promo codes", err)
		return
	}
	defer rows.Close()

	var promos []models.PromoCode
	for rows.Next() {
		var p models.PromoCode
		if err := rows.Scan(&p.CodeID, &p.AdminID, &p.Code, &p.PromoName, &p.Category, &p.Type, &p.Value,
			&p.MinAmount, &p.MaxDiscount, &p.Limit, &p.Status, &p.StartDate, &p.EndDate, &p.CreatedAt); err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch promo codes", err)
			return
		}
		promos = append(promos, p)
	}
	utils.RespondSuccess(c, http.StatusOK, "Promo codes fetched", promos)
}

// POST /api/v1/admin/promo-code
func AdminUpsertPromoCode(c *gin.Context) {
	var body struct {
		ID          string    `json:"codeId"`
		AdminID     string    `json:"adminId" binding:"required"`
		Code        string    `json:"code" binding:"required"`
		PromoName   string    `json:"promoName"`
		Category    string    `json:"category"`
		Type        string    `json:"type" binding:"required"`
		Value       float64   `json:"value" binding:"required"`
		MinAmount   float64   `json:"minAmount"`
		MaxDiscount float64   `json:"maxDiscount"`
		Limit       int       `json:"limit"`
		StartDate   time.Time `json:"startDate" binding:"required"`
		EndDate     time.Time `json:"endDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	if body.Type != models.DiscountFlat && body.Type != models.DiscountPercentage {
		utils.RespondError(c, http.StatusBadRequest, "type must be Flat or Percentage", nil)
		return
	}
	if body.Category == "" {
		body.Category = models.CategoryAll
	}
	if body.Limit == 0 {
		body.Limit = 1
	}

	if body.ID != "" {
		_, err := db.Pool.Exec(context.Background(),
			`UPDATE promo_codes SET code=$1, "promoName"=$2, category=$3, type=$4, value=$5,
			        "minAmount"=$6, "maxDiscount"=$7, "limit"=$8, "startDate"=$9, "endDate"=$10, "updatedAt"=NOW()
			 WHERE "codeId"=$11 AND "adminId"=$12`,
			body.Code, body.PromoName, body.Category, body.Type, body.Value,
			body.MinAmount, body.MaxDiscount, body.Limit, body.StartDate, body.EndDate, body.ID, body.AdminID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Failed to update promo code", err)
			return
		}
		utils.RespondSuccess(c, http.StatusOK, "Promo code updated", nil)
		return
	}

	var id string
	err := db.Pool.QueryRow(context.Background(),
		`INSERT INTO promo_codes ("adminId", code, "promoName", category, type, value,
		                          "minAmount", "maxDiscount", "limit", "startDate", "endDate")
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING "codeId"`,
		body.AdminID, body.Code, body.PromoName, body.Category, body.Type, body.Value,
		body.MinAmount, body.MaxDiscount, body.Limit, body.StartDate, body.EndDate).Scan(&id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create promo code", err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "Promo code created", gin.H{"codeId": id})
}

// DELETE /api/v1/admin/promo-code/:id
func AdminDeactivatePromoCode(c *gin.Context) {
	_, err := db.Pool.Exec(context.Background(),
		`UPDATE promo_codes SET status=FALSE, "updatedAt"=NOW() WHERE "codeId"=$1`, c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to deactivate promo code", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Promo code deactivated", nil)
}

// GET /api/v1/admin/packages?adminId=&serviceId=
func AdminGetPackages(c *gin.Context) {
	rows, err := db.Pool.Query(context.Background(),
		`SELECT "packageId", "adminId", "serviceId", "vehicleId", units, "distanceLimit",
		        price, "extraPrice", "driverBeta", status, "createdAt"
		 FROM flat_packages WHERE "adminId"=$1 AND "serviceId"=$2
		 ORDER BY units ASC, "distanceLimit" ASC`,
		c.Query("adminId"), c.Query("serviceId"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch packages", err)
		return
	}
	defer rows.Close()

	var packages []models.FlatPackage
	for rows.Next() {
		var p models.FlatPackage
		if err := rows.Scan(&p.PackageID, &p.AdminID, &p.ServiceID, &p.VehicleID, &p.Units, &p.DistanceLimit,
			&p.Price, &p.ExtraPrice, &p.DriverBeta, &p.Status, &p.CreatedAt); err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch packages", err)
			return
		}
		packages = append(packages, p)
	}
	utils.RespondSuccess(c, http.StatusOK, "Packages fetched", packages)
}

// POST /api/v1/admin/package
func AdminUpsertPackage(c *gin.Context) {
	var body struct {
		ID            string  `json:"packageId"`
		AdminID       string  `json:"adminId" binding:"required"`
		ServiceID     string  `json:"serviceId" binding:"required"`
		VehicleID     string  `json:"vehicleId" binding:"required"`
		Units         int     `json:"units" binding:"required"`
		DistanceLimit float64 `json:"distanceLimit" binding:"required"`
		Price         float64 `json:"price" binding:"required"`
		ExtraPrice    float64 `json:"extraPrice"`
		DriverBeta    float64 `json:"driverBeta"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	if body.ID != "" {
		_, err := db.Pool.Exec(context.Background(),
			`UPDATE flat_packages SET units=$1, "distanceLimit"=$2, price=$3, "extraPrice"=$4,
			        "driverBeta"=$5, "updatedAt"=NOW()
			 WHERE "packageId"=$6 AND "adminId"=$7`,
			body.Units, body.DistanceLimit, body.Price, body.ExtraPrice, body.DriverBeta, body.ID, body.AdminID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Failed to update package", err)
			return
		}
		utils.RespondSuccess(c, http.StatusOK, "Package updated", nil)
		return
	}

	var id string
	err := db.Pool.QueryRow(context.Background(),
		`INSERT INTO flat_packages ("adminId", "serviceId", "vehicleId", units, "distanceLimit",
		                            price, "extraPrice", "driverBeta")
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING "packageId"`,
		body.AdminID, body.ServiceID, body.VehicleID, body.Units, body.DistanceLimit,
		body.Price, body.ExtraPrice, body.DriverBeta).Scan(&id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create package", err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "Package created", gin.H{"packageId": id})
}

// DELETE /api/v1/admin/package/:id
func AdminDeactivatePackage(c *gin.Context) {
	_, err := db.Pool.Exec(context.Background(),
		`UPDATE flat_packages SET status=FALSE, "updatedAt"=NOW() WHERE "packageId"=$1`, c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to deactivate package", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Package deactivated", nil)
}

// POST /api/v1/admin/booking/commit
// Records discount redemptions once a booking is confirmed. Estimation and
// promo validation never write usage; this endpoint is the write boundary.
func AdminCommitBooking(c *gin.Context) {
	var body struct {
		BookingID  string `json:"bookingId" binding:"required"`
		CustomerID string `json:"customerId" binding:"required"`
		OfferID    string `json:"offerId"`
		CodeID     string `json:"codeId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	if body.OfferID == "" && body.CodeID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Nothing to record: no offerId or codeId", nil)
		return
	}

	err := store.RecordBookingDiscounts(c.Request.Context(), body.BookingID, body.CustomerID, body.OfferID, body.CodeID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to record discount usage", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Booking discounts recorded", nil)
}
