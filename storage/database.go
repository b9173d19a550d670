package storage

import (
	"os"

	"holiday-homes-server/models"
	"holiday-homes-server/utils"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func connectToDB() *gorm.DB {
	// Only load .env in development (when RENDER env var is not set)
	if os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			utils.Log.Warn().Msg("could not load .env file (this is normal in production)")
		}
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		utils.Log.Fatal().Msg("DB_CONNECTION_STRING environment variable is required")
	}

	db, dbError := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if dbError != nil {
		utils.Log.Fatal().Err(dbError).Msg("error connecting to db")
	}

	DB = db
	return db
}

func performMigrations(db *gorm.DB) {
	db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Reservation{},
	)
}

func InitializeDB() *gorm.DB {
	db := connectToDB()
	performMigrations(db)
	return db
}

// InitializeTestDB swaps the global DB for an in-memory sqlite instance.
// Used by tests only; the pure-Go driver keeps CI cgo-free.
func InitializeTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("error opening test db: " + err.Error())
	}

	DB = db
	performMigrations(db)
	return db
}
