package database

import (
	"fmt"

	"gorm.io/gorm"

	"vendorflow-backend/models"
)

// AutoMigrate applies (idempotent) schema migrations:
// - AutoMigrate (tables/columns/index tags)
// - status CHECK constraint (pending|approved)
// - created_at index used by the admin listing / CSV export ordering
func AutoMigrate(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(
			&models.Vendor{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("automigrate failed: %w", err)
		}

		indexes := []string{
			`CREATE INDEX IF NOT EXISTS idx_vendors_created_at ON vendors (created_at DESC)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_idempotency_keys_key ON idempotency_keys (key)`,
		}
		for _, stmt := range indexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("index migration failed on: %s - %w", stmt, err)
			}
		}

		check := `
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1
		FROM pg_constraint
		WHERE conrelid = 'vendors'::regclass
		  AND conname  = 'chk_vendors_status'
	) THEN
		ALTER TABLE vendors
		ADD CONSTRAINT chk_vendors_status
		CHECK (status IN ('pending', 'approved'));
	END IF;
END $$;`
		if err := tx.Exec(check).Error; err != nil {
			return fmt.Errorf("check constraint migration failed: %w", err)
		}

		return nil
	})
}
