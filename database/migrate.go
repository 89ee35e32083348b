package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/inkwell-platform/inkwell-backend/models"
)

// tableModels maps table names to the model structs migrated at startup.
// Order matters: referenced tables are created before their dependents.
var tableModels = []struct {
	name  string
	model any
}{
	{"users", &models.User{}},
	{"posts", &models.Post{}},
	{"comments", &models.Comment{}},
	{"likes", &models.Like{}},
	{"bookmarks", &models.Bookmark{}},
}

// Migrate brings the schema up to date for every registered model.
func Migrate(db *gorm.DB) error {
	for _, t := range tableModels {
		if err := db.AutoMigrate(t.model); err != nil {
			return fmt.Errorf("migrating %s: %w", t.name, err)
		}
	}
	return nil
}
