package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		plate VARCHAR(16) NOT NULL,
		model VARCHAR(120),
		type VARCHAR(60),
		manufacturing_year INTEGER,
		model_year INTEGER,
		observation TEXT,
		color VARCHAR(40),
		fuel_type VARCHAR(40),
		mileage DOUBLE PRECISION NOT NULL DEFAULT 0,
		utility VARCHAR(120),
		classification INTEGER,
		registration VARCHAR(60),
		chassis VARCHAR(60),
		fleet INTEGER,
		renavam VARCHAR(30),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_vehicles_plate ON vehicles (plate);`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_vehicles_mileage') THEN
			ALTER TABLE vehicles ADD CONSTRAINT chk_vehicles_mileage CHECK (mileage >= 0);
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS drivers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		cpf VARCHAR(14) NOT NULL,
		cnh VARCHAR(20),
		cnh_category VARCHAR(5),
		cnh_expiration TIMESTAMPTZ,
		phone VARCHAR(30),
		address TEXT,
		position VARCHAR(60),
		toxicological_date TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_drivers_cpf ON drivers (cpf);`,
	`CREATE TABLE IF NOT EXISTS tires (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		fire_id INTEGER NOT NULL,
		retread_number INTEGER NOT NULL DEFAULT 0,
		groove_depth DOUBLE PRECISION,
		purchase_date TIMESTAMPTZ,
		brand VARCHAR(80),
		model VARCHAR(80),
		measure VARCHAR(40),
		value NUMERIC(14,2) NOT NULL DEFAULT 0,
		current_km DOUBLE PRECISION NOT NULL DEFAULT 0,
		status VARCHAR(40),
		pressure DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_tires_fire_id ON tires (fire_id);`,
	`CREATE TABLE IF NOT EXISTS vehicle_tires (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id UUID NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
		tire_id UUID NOT NULL REFERENCES tires(id) ON DELETE CASCADE,
		axle_position VARCHAR(10) NOT NULL,
		mount_km DOUBLE PRECISION,
		mount_date TIMESTAMPTZ,
		unmount_date TIMESTAMPTZ,
		unmount_km DOUBLE PRECISION,
		observation TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicle_tires_vehicle_id ON vehicle_tires (vehicle_id);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicle_tires_tire_id ON vehicle_tires (tire_id);`,
	// plate is intentionally not a foreign key: invoice lines may be entered
	// before the vehicle exists and survive its deletion.
	`CREATE TABLE IF NOT EXISTS maintenances (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		invoice_id VARCHAR(60) NOT NULL,
		invoice_date TIMESTAMPTZ NOT NULL,
		issuer VARCHAR(255) NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		plate VARCHAR(16) NOT NULL,
		description TEXT,
		quantity NUMERIC(14,3) NOT NULL DEFAULT 0,
		value NUMERIC(14,2) NOT NULL DEFAULT 0,
		total_cost NUMERIC(14,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_maintenances_invoice_id ON maintenances (invoice_id);`,
	`CREATE INDEX IF NOT EXISTS idx_maintenances_plate ON maintenances (plate);`,
	`CREATE INDEX IF NOT EXISTS idx_maintenances_date ON maintenances (date);`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		maintenance_id UUID NOT NULL REFERENCES maintenances(id) ON DELETE RESTRICT,
		type VARCHAR(120) NOT NULL,
		current_km INTEGER NOT NULL,
		next_review_km INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_maintenance_id ON reviews (maintenance_id);`,
	`CREATE TABLE IF NOT EXISTS fuels (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		invoice_id VARCHAR(60) NOT NULL,
		issuer VARCHAR(255) NOT NULL,
		invoice_date TIMESTAMPTZ NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		plate VARCHAR(16) NOT NULL,
		kilometers DOUBLE PRECISION NOT NULL DEFAULT 0,
		fuel_type VARCHAR(40),
		quantity NUMERIC(14,3) NOT NULL DEFAULT 0,
		unit_cost NUMERIC(14,4) NOT NULL DEFAULT 0,
		total_cost NUMERIC(14,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_fuels_invoice_id ON fuels (invoice_id);`,
	`CREATE INDEX IF NOT EXISTS idx_fuels_plate ON fuels (plate);`,
	`CREATE INDEX IF NOT EXISTS idx_fuels_date ON fuels (date);`,
	`CREATE TABLE IF NOT EXISTS alerts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id UUID NOT NULL REFERENCES vehicles(id) ON DELETE RESTRICT,
		type VARCHAR(120) NOT NULL,
		description TEXT,
		value NUMERIC(14,2),
		km_alert DOUBLE PRECISION NOT NULL,
		is_completed BOOLEAN NOT NULL DEFAULT FALSE,
		done_date TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_alerts_vehicle_id ON alerts (vehicle_id);`,
	`CREATE INDEX IF NOT EXISTS idx_alerts_is_completed ON alerts (is_completed);`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_alerts_km_alert') THEN
			ALTER TABLE alerts ADD CONSTRAINT chk_alerts_km_alert CHECK (km_alert > 0);
		END IF;
	END
	$$;`,
	`CREATE OR REPLACE FUNCTION set_updated_at()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = NOW();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;`,
}

var updatedAtTables = []string{
	"vehicles",
	"drivers",
	"tires",
	"vehicle_tires",
	"maintenances",
	"reviews",
	"fuels",
	"alerts",
}

func updatedAtTrigger(table string) string {
	return fmt.Sprintf(`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_%[1]s_updated_at') THEN
			CREATE TRIGGER trg_%[1]s_updated_at
				BEFORE UPDATE ON %[1]s
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`, table)
}

func init() {
	for _, table := range updatedAtTables {
		migrationStatements = append(migrationStatements, updatedAtTrigger(table))
	}
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
