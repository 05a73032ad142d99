package database

import (
	"database/sql"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobboard/internal/models"
)

// Connect opens the Postgres connection, runs migrations and returns
// the raw *sql.DB the services execute their parameterized statements
// on. gorm owns the pool and the schema; query text is built by the
// sqlbuilder package and bound positionally, so the services talk to
// database/sql directly.
func Connect() *sql.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=password dbname=jobboard port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	log.Println("Running Migrations...")
	err = db.AutoMigrate(&models.Company{}, &models.Job{}, &models.User{}, &models.Application{})
	if err != nil {
		log.Fatal("Migration failed:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to unwrap sql.DB:", err)
	}
	return sqlDB
}
