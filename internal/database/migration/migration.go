package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_clinics",
		SQL: `CREATE TABLE IF NOT EXISTS clinics (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name         TEXT        NOT NULL,
  town         TEXT        NOT NULL DEFAULT '',
  email        TEXT        NOT NULL DEFAULT '',
  phone        TEXT        NOT NULL DEFAULT '',
  contact_name TEXT        NOT NULL DEFAULT '',
  status       TEXT        NOT NULL DEFAULT 'active',
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_clinic_documents",
		SQL: `CREATE TABLE IF NOT EXISTS clinic_documents (
  id               UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  clinic_id        UUID        NOT NULL REFERENCES clinics (id) ON DELETE CASCADE,
  name             TEXT        NOT NULL,
  file_name        TEXT        NOT NULL,
  file_path        TEXT        NOT NULL UNIQUE,
  file_size        BIGINT      NOT NULL CHECK (file_size >= 0),
  file_type        TEXT        NOT NULL DEFAULT 'application/octet-stream',
  category         TEXT        NOT NULL DEFAULT 'other',
  uploaded_by      UUID,
  uploaded_by_name TEXT        NOT NULL DEFAULT 'Unknown',
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_clinic_documents_clinic_created",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_clinic_documents_clinic_created ON clinic_documents (clinic_id, created_at DESC);`,
	},
	{
		Name: "create_index_clinic_documents_category",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_clinic_documents_category ON clinic_documents (clinic_id, category);`,
	},
	{
		Name: "create_table_clinic_settings",
		SQL: `CREATE TABLE IF NOT EXISTS clinic_settings (
  id                      UUID           PRIMARY KEY DEFAULT uuid_generate_v4(),
  clinic_id               UUID           NOT NULL UNIQUE REFERENCES clinics (id) ON DELETE CASCADE,
  required_daily_hours    NUMERIC(4,2)   NOT NULL DEFAULT 8.00,
  unpaid_break_minutes    INTEGER        NOT NULL DEFAULT 30,
  late_threshold_minutes  INTEGER        NOT NULL DEFAULT 15,
  overtime_multiplier     NUMERIC(4,2)   NOT NULL DEFAULT 1.50,
  annual_leave_days       INTEGER        NOT NULL DEFAULT 21,
  sick_leave_days         INTEGER        NOT NULL DEFAULT 10,
  maternity_leave_days    INTEGER        NOT NULL DEFAULT 90,
  paternity_leave_days    INTEGER        NOT NULL DEFAULT 14,
  leave_carryover_allowed BOOLEAN        NOT NULL DEFAULT false,
  business_hours          JSONB          NOT NULL DEFAULT '{
    "monday":    {"open": "08:00", "close": "17:00", "closed": false},
    "tuesday":   {"open": "08:00", "close": "17:00", "closed": false},
    "wednesday": {"open": "08:00", "close": "17:00", "closed": false},
    "thursday":  {"open": "08:00", "close": "17:00", "closed": false},
    "friday":    {"open": "08:00", "close": "17:00", "closed": false},
    "saturday":  {"open": "09:00", "close": "13:00", "closed": false},
    "sunday":    {"open": null, "close": null, "closed": true}
  }'::jsonb,
  created_at              TIMESTAMPTZ    NOT NULL DEFAULT now(),
  updated_at              TIMESTAMPTZ    NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_function_auto_create_clinic_settings",
		SQL: `CREATE OR REPLACE FUNCTION auto_create_clinic_settings() RETURNS trigger AS $$
BEGIN
  INSERT INTO clinic_settings (clinic_id) VALUES (NEW.id)
  ON CONFLICT (clinic_id) DO NOTHING;
  RETURN NEW;
END;
$$ LANGUAGE plpgsql;`,
	},
	{
		Name: "create_trigger_clinics_auto_settings",
		SQL: `DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_clinics_auto_settings') THEN
    CREATE TRIGGER trg_clinics_auto_settings
      AFTER INSERT ON clinics
      FOR EACH ROW EXECUTE FUNCTION auto_create_clinic_settings();
  END IF;
END
$$;`,
	},
}

// EnsureMigrated checks if the clinic_documents table exists and runs the
// schema migration if it doesn't. The settings row auto-creation trigger is
// part of the schema: a fresh clinic always gets its settings row, and the
// service layer only has to cover the race before the trigger's insert lands.
func EnsureMigrated(ctx context.Context, db *sql.DB, log zerolog.Logger) error {
	start := time.Now()
	log = log.With().Str("component", "database").Logger()

	var exists bool
	query := "SELECT to_regclass('public.clinic_documents') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error().Err(err).Dur("duration", time.Since(start)).Msg("migration sentinel check failed")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().Dur("duration", time.Since(start)).Msg("schema already exists, skipping migration")
		return nil
	}

	log.Info().Msg("running schema migration")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().Err(err).
				Str("migration_step", step.Name).
				Dur("step_duration", time.Since(stepStart)).
				Msg("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		log.Info().
			Str("migration_step", step.Name).
			Dur("step_duration", time.Since(stepStart)).
			Msg("migration step applied")
	}

	log.Info().Dur("duration", time.Since(start)).Msg("schema migration complete")
	return nil
}
