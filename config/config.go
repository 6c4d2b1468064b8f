package config

import (
	"fmt"
	"log"

	"github.com/ProDexortie/zdorovoeda/models"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port       string `envconfig:"PORT" default:"3000"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"zdorovoeda"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`

	AWSRegion string `envconfig:"AWS_REGION"`
	S3Bucket  string `envconfig:"S3_BUCKET"`
	SESEmail  string `envconfig:"SES_EMAIL"`
}

var C Config

var DB *gorm.DB

// Load reads .env (when present) and processes the environment into C.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment as-is")
	}
	if err := envconfig.Process("", &C); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		C.DBHost, C.DBUser, C.DBPassword, C.DBName, C.DBPort)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
