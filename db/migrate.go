package db

import (
	"context"
	"log"
)

// Migrate creates all tables, indexes, and seed data if they don't exist.
// Safe to run multiple times — everything is IF NOT EXISTS / ON CONFLICT.
func Migrate() {
	sql := `
	CREATE EXTENSION IF NOT EXISTS pgcrypto;

	-- ═══════════════════════════════════════════
	-- SERVICES — trip categories per tenant, carry GST and minimum km
	-- ═══════════════════════════════════════════
	CREATE TABLE IF NOT EXISTS services (
		"serviceId" TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
		"adminId" TEXT NOT NULL,
		name TEXT NOT NULL,
		"taxGst" DOUBLE PRECISION NOT NULL DEFAULT 0,
		"minKm" DOUBLE PRECISION NOT NULL DEFAULT 0,
		"isActive" BOOLEAN NOT NULL DEFAULT TRUE,
		"createdAt" TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		"updatedAt" TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE ("adminId", name)
	);

	-- ═══════════════════════════════════════════
	-- VEHICLES
	-- ═══════════════════════════════════════════
	CREATE TABLE IF NOT EXISTS vehicles (
		"vehicleId" TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
		"adminId" TEXT NOT NULL,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		"fuelType" TEXT,
		seats INTEGER NOT NULL DEFAULT 4,
		bags INTEGER NOT NULL DEFAULT 2,
		"imageUrl" TEXT,
		"order" INTEGER NOT NULL DEFAULT 0,
		"isActive" BOOLEAN NOT NULL DEFAULT TRUE,
		"isAdminVehicle" BOOLEAN NOT NULL DEFAULT TRUE,
		"createdAt" TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		"updatedAt" TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	-- ═══════════════════════════════════════════
	-- TARIFFS — one priced offering per (service, vehicle)
	-- ═══════════════════════════════════════════
	CREATE TABLE IF NOT EXISTS tariffs (
		"tariffId" TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
		"adminId" TEXT NOT NULL,
		"serviceId" TEXT NOT NULL REFERENCES services("serviceId"),
		"vehicleId" TEXT NOT NULL REFERENCES vehicles("vehicleId"),
		price DOUBLE PRECISION NOT NULL DEFAULT 0,
		"extraPrice" DOUBLE PRECISION NOT NULL DEFAULT 0,
		"driverBeta" DOUBLE PRECISION NOT NULL DEFAULT 0,
		toll DOUBLE PRECISION NOT NULL DEFAULT 0,
		hill DOUBLE PRECISION NOT NULL DEFAULT 0,
		"permitCharge" DOUBLE PRECISION NOT NULL DEFAULT 0,
		status BOOLEAN NOT NULL DEFAULT TRUE,
		"createdBy" TEXT NOT NULL DEFAULT 'Admin',
		description TEXT,
		"createdAt" TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		"updatedAt" TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	-- ═══════════════════════════════════════════
	-- OFFERS — site-wide discounts auto-applied by category
	-- ═══════════════════════════════════════════
	CREATE TABLE IF NOT EXISTS offers (
		"offerId" TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
		"adminId" TEXT NOT NULL,
		"offerName" TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT 'All',
		type TEXT NOT NULL DEFAULT 'Percentage',
		value DOUBLE PRECISION NOT NULL DEFAULT 0,
		"limit" INTEGER NOT NULL DEFAULT 1,
		status BOOLEAN NOT NULL DEFAULT TRUE,
		"startDate" TIMESTAMPTZ NOT NULL,
		"endDate" TIMESTAMPTZ NOT NULL,
		"createdAt" TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		"updatedAt" TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	-- ═══════════════════════════════════════════
	-- PROMO CODES — customer-entered discounts, matched by exact code
	-- ═══════════════════════════════════════════
	CREATE TABLE IF NOT EXISTS promo_codes (
		"codeId" TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
		"adminId" TEXT NOT NULL,
		code TEXT NOT NULL,
		"promoName" TEXT,
		category TEXT NOT NULL DEFAULT 'All',
		type TEXT NOT NULL DEFAULT 'Percentage',
		value DOUBLE PRECISION NOT NULL DEFAULT 0,
		"minAmount" DOUBLE PRECISION NOT NULL DEFAULT 0,
		"maxDiscount" DOUBLE PRECISION NOT NULL DEFAULT 0,
		"limit" INTEGER NOT NULL DEFAULT 1,
		status BOOLEAN NOT NULL DEFAULT TRUE,
		"startDate" TIMESTAMPTZ NOT NULL,
		"endDate" TIMESTAMPTZ NOT NULL,
		"createdAt" TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		"updatedAt" TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE ("adminId", code)
	);

	-- ═══════════════════════════════════════════
	-- USAGE RECORDS — one row per redemption, written at booking commit.
	-- Estimation and promo validation only ever COUNT these.
	-- ═══════════════════════════════════════════
	CREATE TABLE IF NOT EXISTS offer_usage (
		id TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
		"offerId" TEXT NOT NULL REFERENCES offers("offerId"),
		"customerId" TEXT NOT NULL,
		"bookingId" TEXT,
		"createdAt" TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS promo_code_usage (
		id TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
		"codeId" TEXT NOT NULL REFERENCES promo_codes("codeId"),
		"customerId" TEXT NOT NULL,
		"bookingId" TEXT,
		"createdAt" TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	-- ═══════════════════════════════════════════
	-- FLAT PACKAGES — hourly/day flat-rate offerings per vehicle
	-- ═══════════════════════════════════════════
	CREATE TABLE IF NOT EXISTS flat_packages (
		"packageId" TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
		"adminId" TEXT NOT NULL,
		"serviceId" TEXT NOT NULL REFERENCES services("serviceId"),
		"vehicleId" TEXT NOT NULL REFERENCES vehicles("vehicleId"),
		units INTEGER NOT NULL,
		"distanceLimit" DOUBLE PRECISION NOT NULL DEFAULT 0,
		price DOUBLE PRECISION NOT NULL DEFAULT 0,
		"extraPrice" DOUBLE PRECISION NOT NULL DEFAULT 0,
		"driverBeta" DOUBLE PRECISION NOT NULL DEFAULT 0,
		status BOOLEAN NOT NULL DEFAULT TRUE,
		"createdAt" TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		"updatedAt" TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	-- ═══════════════════════════════════════════
	-- EXTERNAL API LOGS — distance-matrix audit trail
	-- ═══════════════════════════════════════════
	CREATE TABLE IF NOT EXISTS external_api_logs (
		id TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
		provider TEXT NOT NULL,
		endpoint TEXT NOT NULL,
		"requestId" TEXT,
		"requestPayload" JSONB,
		"responsePayload" JSONB,
		"statusCode" INTEGER,
		"durationMs" INTEGER,
		"createdAt" TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	-- ═══════════════════════════════════════════
	-- INDEXES — tuned for the estimation read path
	-- ═══════════════════════════════════════════
	CREATE INDEX IF NOT EXISTS idx_tariffs_admin_service ON tariffs("adminId", "serviceId") WHERE status=TRUE;
	CREATE INDEX IF NOT EXISTS idx_vehicles_admin_active ON vehicles("adminId") WHERE "isActive"=TRUE AND "isAdminVehicle"=TRUE;
	CREATE INDEX IF NOT EXISTS idx_offers_admin_status ON offers("adminId", status);
	CREATE INDEX IF NOT EXISTS idx_promo_admin_code ON promo_codes("adminId", code);
	CREATE INDEX IF NOT EXISTS idx_offer_usage_offer_customer ON offer_usage("offerId", "customerId");
	CREATE INDEX IF NOT EXISTS idx_promo_usage_code_customer ON promo_code_usage("codeId", "customerId");
	CREATE INDEX IF NOT EXISTS idx_packages_admin_status ON flat_packages("adminId", status);
	CREATE INDEX IF NOT EXISTS idx_api_logs_created ON external_api_logs("createdAt");
	`

	_, err := Pool.Exec(context.Background(), sql)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Database migration completed successfully")
}
