package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"ads-api/pkg/utils"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	NATS     NATSConfig // broadcast invalidation + ad events
	Redis    RedisConfig
	Cache    CacheConfig
	JWT      JWTConfig
	Log      LogConfig
}

type AppConfig struct {
	Name  string `validate:"required"`
	Port  string `validate:"required,numeric"`
	Env   string `validate:"required,oneof=development staging production test"`
	Debug bool   // แสดง error จริงใน response (อย่าเปิดใน production)

	CorsOrigins string // comma separated; ว่าง = "*"
}

type DatabaseConfig struct {
	Driver     string `validate:"required,oneof=postgres sqlite"`
	Host       string `validate:"required_if=Driver postgres"`
	Port       string `validate:"required_if=Driver postgres"`
	User       string `validate:"required_if=Driver postgres"`
	Password   string
	DBName     string `validate:"required_if=Driver postgres"`
	SSLMode    string
	SQLitePath string `validate:"required_if=Driver sqlite"` // file path หรือ ":memory:"
}

// RedisConfig สำหรับ cache ของ field definitions
type RedisConfig struct {
	URL      string // redis://localhost:6379
	Password string
	DB       int
}

// NATSConfig ว่างได้ = ปิด event/broadcast
type NATSConfig struct {
	URL string // nats://localhost:4222
}

// CacheConfig กำหนด backend ของ definition cache
type CacheConfig struct {
	Driver      string        `validate:"required,oneof=redis memory none"`
	FieldTTL    time.Duration `validate:"gt=0"`
	JanitorCron string        // ล้าง entry ที่หมดอายุใน memory cache
}

type JWTConfig struct {
	Secret string `validate:"required"`
}

type LogConfig struct {
	Level      string `validate:"oneof=debug info warn error"`
	Format     string `validate:"oneof=json text"`
	Output     string `validate:"oneof=stdout file both"`
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // วัน
	Compress   bool
}

// DefaultFieldTTL อายุ cache ของ definitions ต่อ category (12 ชม.)
const DefaultFieldTTL = 12 * time.Hour

func LoadConfig() (*Config, error) {
	// ไม่มี .env ก็ได้ ใช้ environment variables แทน
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	fieldTTL, err := time.ParseDuration(getEnv("CACHE_FIELD_TTL", DefaultFieldTTL.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_FIELD_TTL: %w", err)
	}

	config := &Config{
		App: AppConfig{
			Name:  getEnv("APP_NAME", "Ads API"),
			Port:  getEnv("APP_PORT", "8080"),
			Env:   getEnv("APP_ENV", "development"),
			Debug: getEnv("APP_DEBUG", "false") == "true",

			CorsOrigins: getEnv("CORS_ALLOW_ORIGINS", ""),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "postgres"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			DBName:     getEnv("DB_NAME", "ads"),
			SSLMode:    getEnv("DB_SSL_MODE", "disable"),
			SQLitePath: getEnv("DB_SQLITE_PATH", "ads.db"),
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", ""),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Cache: CacheConfig{
			Driver:      getEnv("CACHE_DRIVER", "redis"),
			FieldTTL:    fieldTTL,
			JanitorCron: getEnv("CACHE_JANITOR_CRON", "*/10 * * * *"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
	}

	return config, nil
}

// Validate ตรวจ config ก่อน start ด้วย struct tags
func (c *Config) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %v", utils.GetValidationErrors(err))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsDevelopment ตรวจสอบว่าเป็น development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction ตรวจสอบว่าเป็น production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// NATSEnabled true เมื่อกำหนด NATS_URL
func (c *Config) NATSEnabled() bool {
	return c.NATS.URL != ""
}
