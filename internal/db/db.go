package db

import (
	"blogapi/internal/logger"
	"blogapi/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(dsn string) {
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=blogapi port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Log.Errorf("failed to connect to database: %v", err)
		panic(err)
	}

	logger.Log.Infof("database connection established")

	if err := Migrate(DB); err != nil {
		logger.Log.Errorf("failed to migrate database: %v", err)
		panic(err)
	}
	logger.Log.Infof("database migration completed")

	seedCategories()
}

// Migrate creates/updates the schema. Shared with tests, which run
// against their own gorm instance.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.Category{},
		&models.Post{},
		&models.Comment{},
	)
}

func seedCategories() {
	var count int64
	DB.Model(&models.Category{}).Count(&count)
	if count > 0 {
		logger.Log.Debugf("categories already seeded, skipping")
		return
	}

	categories := []models.Category{
		{Name: "General"},
		{Name: "Tech"},
		{Name: "Life"},
		{Name: "Announcements"},
	}

	for _, category := range categories {
		if err := DB.Create(&category).Error; err != nil {
			logger.Log.Warnf("failed to create category %s: %v", category.Name, err)
		}
	}
	logger.Log.Infof("initial categories created")
}
