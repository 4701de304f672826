package database

import (
	"codelearn/config"
	"codelearn/models"
	course "codelearn/models/course"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection using the configured driver
func ConnectDb() {
	var (
		db  *gorm.DB
		err error
	)

	switch config.AppConfig.DBDriver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(config.AppConfig.DBName+".db"), &gorm.Config{})
	case "mysql":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			config.AppConfig.DBName,
		)
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			config.AppConfig.DBName,
			os.Getenv("DB_PORT"),
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database (%s): %v", config.AppConfig.DBDriver, err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)   // Maximum open connections
	sqlDB.SetMaxIdleConns(5)    // Maximum idle connections
	sqlDB.SetConnMaxLifetime(0) // No timeout

	// Run database migrations
	RunMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}

	// Load the sample catalog and badge definitions on an empty database
	SeedAchievements(db)
	SeedCatalog(db)
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Permission{},
		&models.Achievement{},
		&models.UserAchievement{},
		&course.Instructor{},
		&course.Course{},
		&course.Lesson{},
		&course.Enrollment{},
		&course.LessonCompletion{},
		&course.QuizScore{},
		&course.CertificateRequest{},
		&course.Certificate{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
