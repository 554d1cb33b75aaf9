package config

import (
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
)

var Cloudinary *cloudinary.Cloudinary

// ConnectCloudinary initializes the image host client. Optional: blog
// image uploads return 503 when unconfigured.
func ConnectCloudinary() {
	url := os.Getenv("CLOUDINARY_URL")
	if url == "" {
		log.Println("CLOUDINARY_URL not set, image uploads disabled")
		return
	}

	var err error
	Cloudinary, err = cloudinary.NewFromURL(url)
	if err != nil {
		log.Printf("Failed to initialize Cloudinary: %v", err)
	}
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault returns the env value or a fallback when unset
func GetEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
