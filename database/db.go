package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the shared connection pool. The returned handle is passed
// down explicitly; there is no package-level DB.
func Connect(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
