package database

import (
	"log"
	"time"

	"github.com/ManuelReschke/FoxBlog/app/models"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/env"
	"gorm.io/gorm"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

// DB is the process wide database handle, set by SetupDatabase
var DB *gorm.DB

func SetupDatabase() {
	var err error
	driver := env.GetEnv("DB_DRIVER", DriverMySQL)

	for i := 0; i < maxRetries; i++ {
		var dialector gorm.Dialector
		dialector, err = NewDialector(driver)
		if err != nil {
			// unknown driver, retrying will not help
			break
		}

		DB, err = gorm.Open(dialector, &gorm.Config{})
		if err == nil {
			if err = AutoMigrate(DB); err != nil {
				log.Printf("Failed to migrate database schema: %v", err)
			}

			return
		}

		log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			log.Printf("Retrying in %v...", retryDelay)
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		panic(err)
	}
}

// AutoMigrate creates or updates the tables of all persisted models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Post{},
	)
}

// GetDB returns the database handle initialized by SetupDatabase
func GetDB() *gorm.DB {
	return DB
}
