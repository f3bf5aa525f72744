package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// PricingDB holds prices, expenses, admins and activity logs.
	PricingDB   *pgxpool.Pool
	PricingGorm *gorm.DB
)

func InitDB() {
	initPgx()
	initGORM()
}

func initPgx() {
	pricingURL := os.Getenv("PRICING_DB_URL")
	if pricingURL == "" {
		// fallback to local
		pricingURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/barfer_pricing?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ PRICING_DB_URL not set, using local default")
	}

	var err error
	PricingDB, err = pgxpool.New(context.Background(), pricingURL)
	if err != nil {
		log.Fatalf("❌ Unable to connect to pricing database: %v", err)
	}

	if err = PricingDB.Ping(context.Background()); err != nil {
		log.Fatalf("❌ Pricing database ping failed: %v", err)
	}

	log.Println("✅ Pricing database connected (pgx)")
}

func initGORM() {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var pricingDSN string
	if os.Getenv("PRICING_DB_URL") != "" {
		pricingDSN = os.Getenv("PRICING_DB_URL")
	} else {
		pricingDSN = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=barfer_pricing port=%s sslmode=disable TimeZone=UTC",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ PRICING_DB_URL not set, using local GORM default")
	}

	var err error
	PricingGorm, err = gorm.Open(postgres.Open(pricingDSN), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to pricing database with GORM: %v", err)
	}
	if sqlDB, err := PricingGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Pricing database connected (GORM)")
}

func CloseDB() {
	if PricingDB != nil {
		PricingDB.Close()
		log.Println("✅ Pricing database connection closed (pgx)")
	}
	if PricingGorm != nil {
		sqlDB, _ := PricingGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Pricing database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout (bumped from 5s for cold starts)
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// WithRequestTimeout derives from the inbound request context so client
// disconnects cancel long-running aggregations.
func WithRequestTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
