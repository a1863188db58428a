package db

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"cestodamore/pkg/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pool defaults. Tool calls are short-lived queries, so a small bounded
// pool is enough; the env vars override for bigger deployments.
const (
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = 30 * time.Minute
)

// NewDatabase opens the Postgres connection and configures the bounded
// connection pool on the underlying sql.DB.
func NewDatabase() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		os.Getenv("DB_TIMEZONE"),
	)

	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(envInt("DB_MAX_OPEN_CONNS", defaultMaxOpenConns))
	sqlDB.SetMaxIdleConns(envInt("DB_MAX_IDLE_CONNS", defaultMaxIdleConns))
	sqlDB.SetConnMaxLifetime(defaultConnMaxLifetime)

	return gormDB, nil
}

func envInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
		log.Warn().Str("key", key).Str("value", raw).Msg("Ignoring invalid pool setting")
	}
	return fallback
}

// AutoMigrate runs GORM migrations for every registered model.
func AutoMigrate(gormDB *gorm.DB) error {
	log.Info().Msg("Running GORM AutoMigrate...")

	if err := gormDB.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Warn().Err(err).Msg("Could not create uuid-ossp extension")
	}

	if err := gormDB.AutoMigrate(models.GetAllModels()...); err != nil {
		return fmt.Errorf("failed to run GORM AutoMigrate: %w", err)
	}

	if err := createCustomIndexes(gormDB); err != nil {
		log.Warn().Err(err).Msg("Failed to create some custom indexes")
	}

	log.Info().Msg("GORM AutoMigrate completed successfully")
	return nil
}

// createCustomIndexes adds the indexes the scored catalog search and the
// closure lookups lean on.
func createCustomIndexes(gormDB *gorm.DB) error {
	indexes := []string{
		// Trigram-free ILIKE search still benefits from a lowercase index.
		`CREATE INDEX IF NOT EXISTS idx_products_name_lower ON products (lower(name))`,
		`CREATE INDEX IF NOT EXISTS idx_products_active_price ON products (is_active, price)`,

		// Closure range scan: is_active AND start_date <= d AND end_date >= d.
		`CREATE INDEX IF NOT EXISTS idx_holiday_closures_range ON holiday_closures (is_active, start_date, end_date)`,

		// Session expiry sweeps.
		`CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions (expires_at)`,
		`CREATE INDEX IF NOT EXISTS idx_customer_memories_expires_at ON customer_memories (expires_at)`,
	}

	for _, idx := range indexes {
		if err := gormDB.Exec(idx).Error; err != nil {
			log.Warn().Err(err).Str("index", idx).Msg("Failed to create index")
		}
	}
	return nil
}

// SeedInitialData registers the recurring annual closures when the table
// is empty, so a fresh install refuses holiday deliveries out of the box.
func SeedInitialData(gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.Model(&models.HolidayClosure{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing closures: %w", err)
	}
	if count > 0 {
		return nil
	}

	year := time.Now().Year()
	closures := []models.HolidayClosure{
		{
			Name:        "Natal",
			StartDate:   time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC),
			ClosureType: models.ClosureFullDay,
			IsActive:    true,
		},
		{
			Name:        "Confraternização Universal",
			StartDate:   time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC),
			ClosureType: models.ClosureFullDay,
			IsActive:    true,
		},
	}
	if err := gormDB.Create(&closures).Error; err != nil {
		return fmt.Errorf("failed to seed holiday closures: %w", err)
	}

	log.Info().Int("closures", len(closures)).Msg("Seeded default holiday closures")
	return nil
}

// RunMigrations is the migration entrypoint called from main.
func RunMigrations(gormDB *gorm.DB) error {
	log.Info().Msg("Starting database migrations...")

	if err := AutoMigrate(gormDB); err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}
	if err := SeedInitialData(gormDB); err != nil {
		return fmt.Errorf("initial data seeding failed: %w", err)
	}

	log.Info().Msg("All migrations completed successfully")
	return nil
}
