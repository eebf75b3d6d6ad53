package postgres

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ads-api/domain/models"
	"ads-api/pkg/logger"
)

type DatabaseConfig struct {
	Driver     string // postgres | sqlite
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
	SQLitePath string
	LogLevel   string // debug = log ทุก query
}

func NewDatabase(config DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch config.Driver {
	case "sqlite":
		dialector = sqlite.Open(config.SQLitePath)
	case "postgres", "":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			config.Host, config.User, config.Password, config.DBName, config.Port, config.SSLMode)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  newGormLogger(config.LogLevel),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if config.Driver == "sqlite" {
		if err := configureSQLite(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// configureSQLite connection เดียวกัน lock และให้ pragma มีผลตลอด (":memory:" ก็ใช้ได้)
func configureSQLite(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)

	for _, p := range []string{"PRAGMA foreign_keys=ON", "PRAGMA busy_timeout=5000"} {
		if err := db.Exec(p).Error; err != nil {
			return fmt.Errorf("exec %q: %w", p, err)
		}
	}
	return nil
}

func newGormLogger(level string) gormlogger.Interface {
	mode := gormlogger.Warn
	if level == "debug" {
		mode = gormlogger.Info
	}
	return gormlogger.New(logger.GormWriter{Logger: slog.Default().With("component", "gorm")}, gormlogger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  mode,
		IgnoreRecordNotFoundError: true,
	})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.CategoryField{},
		&models.CategoryFieldOption{},
		&models.Ad{},
		&models.AdFieldValue{},
	)
}
