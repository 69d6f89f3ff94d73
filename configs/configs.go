package configs

import (
	"os"

	"ondernemercentraal.nl/configs/configsdatabase"

	"gorm.io/gorm"
)

// GetDB exposes the shared database handle to the service layer.
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}

// ListenAddress returns the host:port the HTTP server binds to.
func ListenAddress() string {
	host := os.Getenv("APP_HOST")
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8000"
	}
	return host + ":" + port
}
