package configsdatabase

import (
	"fmt"
	"os"
	"time"

	"ondernemercentraal.nl/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the PostgreSQL connection using the DB_* environment
// variables. It must be called once during startup, before GetDB.
func InitDB() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		getEnv("DB_NAME", "ondernemercentraal"),
		getEnv("DB_SSLMODE", "disable"),
	)

	logLevel := gormlogger.Warn
	if os.Getenv("APP_ENV") != "production" {
		logLevel = gormlogger.Info
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		configslog.Log.Fatal("Kan geen verbinding maken met de database", zap.Error(err))
	}

	sqlDB, err := conn.DB()
	if err != nil {
		configslog.Log.Fatal("Kan onderliggende sql.DB niet ophalen", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	db = conn
	configslog.SLog.Info("Databaseverbinding tot stand gebracht.")
}

// GetDB returns the shared connection. InitDB must have run first.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("GetDB aangeroepen voordat InitDB is uitgevoerd")
	}
	return db
}

func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Kan databaseverbinding niet ophalen bij afsluiten", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Fout bij sluiten van databaseverbinding", zap.Error(err))
	}
}
