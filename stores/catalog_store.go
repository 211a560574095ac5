package stores

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"cabdesk/models"
	"cabdesk/pricing"
)

// ServiceByName resolves an active service for the tenant by its type name.
func (s *Store) ServiceByName(ctx context.Context, adminID, name string) (*models.Service, error) {
	var svc models.Service
	err := s.pool.QueryRow(ctx,
		`SELECT "serviceId", "adminId", name, "taxGst", "minKm", "isActive", "createdAt", "updatedAt"
		 FROM services WHERE "adminId"=$1 AND name=$2 AND "isActive"=TRUE`,
		adminID, name).
		Scan(&svc.ServiceID, &svc.AdminID, &svc.Name, &svc.TaxGST, &svc.MinKm, &svc.IsActive, &svc.CreatedAt, &svc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pricing.ErrServiceNotFound
		}
		return nil, err
	}
	return &svc, nil
}

// ActiveVehicles lists the tenant's own active fleet, in display order.
func (s *Store) ActiveVehicles(ctx context.Context, adminID string) ([]models.Vehicle, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT "vehicleId", "adminId", name, type, COALESCE("fuelType", ''), seats, bags,
		        COALESCE("imageUrl", ''), "order", "isActive", "isAdminVehicle", "createdAt", "updatedAt"
		 FROM vehicles
		 WHERE "adminId"=$1 AND "isActive"=TRUE AND "isAdminVehicle"=TRUE
		 ORDER BY "order" ASC`,
		adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.VehicleID, &v.AdminID, &v.Name, &v.Type, &v.FuelType, &v.Seats, &v.Bags,
			&v.ImageURL, &v.Order, &v.IsActive, &v.IsAdminOwned, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// Tariffs returns the tenant's active, admin-authored tariffs for a service,
// each joined to its active vehicle. Price must exceed 1 to count as a real
// quote. An empty slice is a valid outcome, not an error.
func (s *Store) Tariffs(ctx context.Context, adminID, serviceID string) ([]models.Tariff, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT t."tariffId", t."adminId", t."serviceId", t."vehicleId", t.price, t."extraPrice",
		        t."driverBeta", t.toll, t.hill, t."permitCharge", t.status, t."createdBy",
		        COALESCE(t.description, ''), t."createdAt",
		        v."vehicleId", v.name, v.type, COALESCE(v."fuelType", ''), v.seats, v.bags,
		        COALESCE(v."imageUrl", ''), v."order"
		 FROM tariffs t
		 JOIN vehicles v ON t."vehicleId" = v."vehicleId"
		 WHERE t."adminId"=$1 AND t."serviceId"=$2 AND t.status=TRUE AND t."createdBy"='Admin' AND t.price > 1
		   AND v."isActive"=TRUE AND v."isAdminVehicle"=TRUE
		 ORDER BY v."order" ASC`,
		adminID, serviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tariffs []models.Tariff
	for rows.Next() {
		var t models.Tariff
		var v models.Vehicle
		if err := rows.Scan(&t.TariffID, &t.AdminID, &t.ServiceID, &t.VehicleID, &t.Price, &t.ExtraPrice,
			&t.DriverBeta, &t.Toll, &t.Hill, &t.PermitCharge, &t.Status, &t.CreatedBy,
			&t.Description, &t.CreatedAt,
			&v.VehicleID, &v.Name, &v.Type, &v.FuelType, &v.Seats, &v.Bags,
			&v.ImageURL, &v.Order); err != nil {
			return nil, err
		}
		t.Vehicle = &v
		tariffs = append(tariffs, t)
	}
	return tariffs, rows.Err()
}

// FlatPackages returns the tenant's active flat-rate packages for a service,
// joined to their active vehicles.
func (s *Store) FlatPackages(ctx context.Context, adminID, serviceID string) ([]models.FlatPackage, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT p."packageId", p."adminId", p."serviceId", p."vehicleId", p.units, p."distanceLimit",
		        p.price, p."extraPrice", p."driverBeta", p.status, p."createdAt",
		        v."vehicleId", v.name, v.type, COALESCE(v."fuelType", ''), v.seats, v.bags,
		        COALESCE(v."imageUrl", ''), v."order"
		 FROM flat_packages p
		 JOIN vehicles v ON p."vehicleId" = v."vehicleId"
		 WHERE p."adminId"=$1 AND p."serviceId"=$2 AND p.status=TRUE
		   AND v."isActive"=TRUE AND v."isAdminVehicle"=TRUE
		 ORDER BY p.units ASC, p."distanceLimit" ASC`,
		adminID, serviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packages []models.FlatPackage
	for rows.Next() {
		var p models.FlatPackage
		var v models.Vehicle
		if err := rows.Scan(&p.PackageID, &p.AdminID, &p.ServiceID, &p.VehicleID, &p.Units, &p.DistanceLimit,
			&p.Price, &p.ExtraPrice, &p.DriverBeta, &p.Status, &p.CreatedAt,
			&v.VehicleID, &v.Name, &v.Type, &v.FuelType, &v.Seats, &v.Bags,
			&v.ImageURL, &v.Order); err != nil {
			return nil, err
		}
		p.Vehicle = &v
		packages = append(packages, p)
	}
	return packages, rows.Err()
}
