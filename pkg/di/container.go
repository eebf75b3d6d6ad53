package di

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ads-api/application/fieldrules"
	"ads-api/application/fieldvalues"
	"ads-api/application/serviceimpl"
	"ads-api/domain/ports"
	"ads-api/domain/repositories"
	"ads-api/domain/services"
	"ads-api/infrastructure/memory"
	natspkg "ads-api/infrastructure/nats"
	"ads-api/infrastructure/postgres"
	redispkg "ads-api/infrastructure/redis"
	"ads-api/interfaces/api/handlers"
	"ads-api/pkg/config"
	"ads-api/pkg/logger"
	"ads-api/pkg/scheduler"
)

const cacheJanitorJobID = "field-cache-janitor"

type Container struct {
	// Configuration
	Config     *config.Config
	InstanceID string // ใช้กรอง invalidation event ของตัวเอง

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client // nil เมื่อไม่ได้ใช้ redis
	MemoryCache    *memory.Cache    // nil เมื่อไม่ได้ใช้ memory cache
	Cache          ports.CachePort
	NATSClient     *natspkg.Client // nil เมื่อไม่ได้ตั้ง NATS_URL
	NATSSubscriber *natspkg.Subscriber
	Events         ports.EventPublisherPort
	EventScheduler scheduler.EventScheduler

	// Repositories
	CategoryRepository      repositories.CategoryRepository
	CategoryFieldRepository repositories.CategoryFieldRepository
	AdRepository            repositories.AdRepository
	AdFieldValueRepository  repositories.AdFieldValueRepository

	// Engine
	RuleBuilder *fieldrules.Builder
	Validator   *fieldrules.Validator
	Coercer     *fieldvalues.Coercer

	// Services
	FieldDefinitionService services.FieldDefinitionService
	CategoryService        services.CategoryService
	AdService              services.AdService
}

func NewContainer() *Container {
	return &Container{InstanceID: uuid.New().String()}
}

// Initialize สำหรับ API server: core + background (subscriber, janitor)
func (c *Container) Initialize() error {
	if err := c.InitializeCore(); err != nil {
		return err
	}
	return c.initBackground()
}

// InitializeCore config, logger, infra, repositories, services (ใช้กับ CLI ด้วย)
func (c *Container) InitializeCore() error {
	if err := c.initConfig(); err != nil {
		return err
	}
	if err := c.initLogger(); err != nil {
		return err
	}
	if err := c.initInfrastructure(); err != nil {
		return err
	}
	c.initRepositories()
	c.initServices()
	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}
	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
		"instance_id", c.InstanceID,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Driver:     c.Config.Database.Driver,
		Host:       c.Config.Database.Host,
		Port:       c.Config.Database.Port,
		User:       c.Config.Database.User,
		Password:   c.Config.Database.Password,
		DBName:     c.Config.Database.DBName,
		SSLMode:    c.Config.Database.SSLMode,
		SQLitePath: c.Config.Database.SQLitePath,
		LogLevel:   c.Config.Log.Level,
	})
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "driver", c.Config.Database.Driver, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info("Database migrated")

	c.initCache()
	c.initMessaging()
	return nil
}

// initCache redis ต่อไม่ได้ = ใช้ memory แทน (graceful degradation)
func (c *Container) initCache() {
	driver := c.Config.Cache.Driver

	if driver == "redis" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err == nil {
			c.RedisClient = redisClient
			c.Cache = redispkg.NewCache(redisClient)
			logger.Info("Field cache ready", "driver", "redis")
			return
		}
		logger.Warn("Redis client initialization failed (falling back to memory cache)", "error", err)
		driver = "memory"
	}

	switch driver {
	case "memory":
		c.MemoryCache = memory.NewCache()
		c.Cache = c.MemoryCache
	default:
		c.Cache = memory.NoopCache{}
	}
	logger.Info("Field cache ready", "driver", driver)
}

func (c *Container) initMessaging() {
	c.Events = ports.NoopEventPublisher{}
	if !c.Config.NATSEnabled() {
		logger.Info("NATS disabled (NATS_URL not set)")
		return
	}

	natsClient, err := natspkg.NewClient(natspkg.ClientConfig{
		URL:  c.Config.NATS.URL,
		Name: c.Config.App.Name + "-" + c.InstanceID,
	})
	if err != nil {
		logger.Warn("NATS client initialization failed (events disabled)", "error", err)
		return
	}
	c.NATSClient = natsClient
	c.Events = natspkg.NewPublisher(natsClient)
}

func (c *Container) initRepositories() {
	c.CategoryRepository = postgres.NewCategoryRepository(c.DB)
	c.CategoryFieldRepository = postgres.NewCategoryFieldRepository(c.DB)
	c.AdFieldValueRepository = postgres.NewAdFieldValueRepository(c.DB)
	c.AdRepository = postgres.NewAdRepository(c.DB, c.AdFieldValueRepository)
	logger.Info("Repositories initialized")
}

func (c *Container) initServices() {
	c.FieldDefinitionService = serviceimpl.NewFieldDefinitionService(
		c.CategoryFieldRepository,
		c.Cache,
		c.Events,
		c.Config.Cache.FieldTTL,
		c.InstanceID,
	)

	c.RuleBuilder = fieldrules.NewBuilder(c.FieldDefinitionService)
	c.Validator = fieldrules.NewValidator(c.RuleBuilder, c.CategoryRepository)
	c.Coercer = fieldvalues.NewCoercer(c.FieldDefinitionService)

	c.CategoryService = serviceimpl.NewCategoryService(c.CategoryRepository, c.FieldDefinitionService)
	c.AdService = serviceimpl.NewAdService(
		c.AdRepository,
		c.AdFieldValueRepository,
		c.Validator,
		c.Coercer,
		c.Events,
	)
	logger.Info("Services initialized")
}

// initBackground subscriber ของ invalidation และ janitor ของ memory cache
func (c *Container) initBackground() error {
	if c.NATSClient != nil {
		c.NATSSubscriber = natspkg.NewSubscriber(c.NATSClient.Conn(), c.InstanceID, func(event *ports.FieldsInvalidatedEvent) {
			c.evictFromEvent(event)
		})
		if err := c.NATSSubscriber.Start(); err != nil {
			logger.Warn("Failed to start invalidation subscriber", "error", err)
		}
	}

	c.EventScheduler = scheduler.NewEventScheduler()
	if c.MemoryCache != nil && c.Config.Cache.JanitorCron != "" {
		err := c.EventScheduler.AddJob(cacheJanitorJobID, c.Config.Cache.JanitorCron, func() {
			if n := c.MemoryCache.PurgeExpired(); n > 0 {
				logger.Info("Expired field cache entries purged", "count", n)
			}
		})
		if err != nil {
			return fmt.Errorf("schedule cache janitor: %w", err)
		}
	}
	c.EventScheduler.Start()
	return nil
}

func (c *Container) evictFromEvent(event *ports.FieldsInvalidatedEvent) {
	ctx := context.Background()

	categoryID := uuid.Nil
	if event.CategoryID != "" {
		id, err := uuid.Parse(event.CategoryID)
		if err != nil {
			logger.Warn("Invalid category id in invalidation event", "category_id", event.CategoryID)
			return
		}
		categoryID = id
	}

	if err := c.FieldDefinitionService.EvictLocal(ctx, categoryID); err != nil {
		logger.Warn("Failed to evict field cache from event", "category_id", event.CategoryID, "error", err)
		return
	}
	logger.Info("Field cache evicted by remote invalidation", "category_id", event.CategoryID, "origin", event.Origin)
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.NATSSubscriber != nil {
		_ = c.NATSSubscriber.Stop()
	}

	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
	}

	if c.NATSClient != nil {
		if err := c.NATSClient.Close(); err != nil {
			logger.Warn("Failed to close NATS connection", "error", err)
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		AdService:              c.AdService,
		CategoryService:        c.CategoryService,
		FieldDefinitionService: c.FieldDefinitionService,
		HealthCheckers:         c.healthCheckers(),
		AppName:                c.Config.App.Name,
		Debug:                  c.Config.App.Debug,
	}
}

func (c *Container) healthCheckers() []handlers.HealthChecker {
	checkers := []handlers.HealthChecker{{
		Name: "database",
		Check: func(ctx context.Context) error {
			sqlDB, err := c.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}}

	if c.RedisClient != nil {
		checkers = append(checkers, handlers.HealthChecker{Name: "redis", Check: c.RedisClient.Ping})
	}

	if c.NATSClient != nil {
		checkers = append(checkers, handlers.HealthChecker{
			Name: "nats",
			Check: func(ctx context.Context) error {
				if !c.NATSClient.IsConnected() {
					return fmt.Errorf("not connected")
				}
				_, err := c.NATSClient.StreamStatus(ctx)
				return err
			},
		})
	}

	return checkers
}
