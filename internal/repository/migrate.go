package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table this package
// owns. Used by cmd/seed and the test suites; production deployments run
// the same set once at startup.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&projectModel{},
		&apartmentModel{},
		&categoryModel{},
		&optionModel{},
		&optionImageModel{},
		&hiddenOptionModel{},
		&customOptionModel{},
		&selectionModel{},
		&adminUserModel{},
	)
}
