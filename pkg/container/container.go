package container

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"bookstore-api/internal/config"
	infraCache "bookstore-api/internal/infrastructure/cache"
	"bookstore-api/internal/infrastructure/database"
	"bookstore-api/internal/shared/middleware"
	"bookstore-api/pkg/cache"
	"bookstore-api/pkg/jwt"
	"bookstore-api/pkg/logger"
	"bookstore-api/pkg/metrics"
	"bookstore-api/pkg/repository"

	"bookstore-api/internal/domains/author"
	authorHandler "bookstore-api/internal/domains/author/handler"
	authorRepo "bookstore-api/internal/domains/author/repository"
	authorService "bookstore-api/internal/domains/author/service"

	"bookstore-api/internal/domains/book"
	bookHandler "bookstore-api/internal/domains/book/handler"
	bookRepo "bookstore-api/internal/domains/book/repository"
	bookService "bookstore-api/internal/domains/book/service"

	"bookstore-api/internal/domains/user"
	userHandler "bookstore-api/internal/domains/user/handler"
	userRepo "bookstore-api/internal/domains/user/repository"
	userService "bookstore-api/internal/domains/user/service"
)

// Container chứa TẤT CẢ dependencies của application
// Thứ tự init: config → infra → repositories → services → seeder → handlers
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache // nil khi cache tắt hoặc Redis không kết nối được
	Registry   *prometheus.Registry
	Clock      clockwork.Clock
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	AuthorRepos author.RepositoryFactory
	BookRepos   book.RepositoryFactory
	Credentials user.CredentialStore

	// ========================================
	// SERVICE LAYER
	// ========================================
	AuthorService author.Service
	BookService   book.Service
	AuthService   user.AuthService
	Seeder        *userService.Seeder

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	Guards        middleware.Guards
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
	UserHandler   *userHandler.UserHandler

	redis *infraCache.RedisCache
}

// NewContainer tạo và initialize toàn bộ dependency graph
func NewContainer(ctx context.Context) (*Container, error) {
	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	log.Info().
		Str("env", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("initializing container")

	c := &Container{
		Config: cfg,
		Clock:  clockwork.NewRealClock(),
	}

	// ========================================
	// STEP 2: INFRASTRUCTURE
	// ========================================
	if err := c.initDatabase(ctx); err != nil {
		return nil, err
	}
	c.initCache(ctx)
	c.initMetrics()
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)

	// ========================================
	// STEP 3-5: REPOSITORIES, SERVICES, SEED
	// ========================================
	c.initRepositories()

	if err := c.initServices(); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to init services: %w", err)
	}

	if cfg.Bootstrap.SeedEnabled {
		if err := c.Seeder.EnsureBaseline(ctx); err != nil {
			c.Cleanup()
			return nil, fmt.Errorf("failed to seed baseline accounts: %w", err)
		}
		log.Info().Msg("baseline roles and accounts ensured")
	}

	// ========================================
	// STEP 6: HANDLERS
	// ========================================
	c.initHandlers()

	log.Info().Msg("container initialized")
	return c, nil
}

func (c *Container) initDatabase(ctx context.Context) error {
	cfg := c.Config.Database

	if c.Config.Bootstrap.AutoMigrate {
		if err := runMigrations(cfg.DSN()); err != nil {
			return err
		}
	}

	db := database.NewPostgresDB(cfg)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	c.DB = db
	return nil
}

func runMigrations(dsn string) error {
	m, err := database.NewMigrator(dsn)
	if err != nil {
		return fmt.Errorf("failed to prepare migrations: %w", err)
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn().Err(err).Msg("close migrator")
		}
	}()

	if err := m.Up(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// initCache: Redis lỗi không critical, repository chạy không cache
func (c *Container) initCache(ctx context.Context) {
	if !c.Config.Cache.Enabled {
		log.Info().Msg("repository cache disabled")
		return
	}

	rc := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := rc.Connect(ctx); err != nil {
		logger.Warn("redis unavailable, continuing without cache", map[string]interface{}{
			"addr":  c.Config.Redis.Host,
			"error": err.Error(),
		})
		_ = rc.Close()
		return
	}

	c.redis = rc
	c.Cache = rc
}

func (c *Container) initMetrics() {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics.RegisterMetrics(reg)
	c.Registry = reg
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool
	ttl := c.Config.Cache.TTL

	// xóa author làm author_id của books thành NULL, phải bỏ cache của các books đó
	c.AuthorRepos = authorRepo.NewFactory(pool, c.Cache, ttl,
		repository.WithDependents(bookRepo.AuthorBookKeys(pool)))
	c.BookRepos = bookRepo.NewFactory(pool, c.Cache, ttl)
	c.Credentials = userRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() error {
	hasher := user.NewBcryptHasher(0)

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepos)
	c.BookService = bookService.NewBookService(c.BookRepos, c.AuthorRepos)

	auth, err := userService.NewAuthService(c.Credentials, hasher, c.JWTManager, c.Clock)
	if err != nil {
		return err
	}
	c.AuthService = auth

	c.Seeder = userService.NewSeeder(c.Credentials, hasher, c.Clock, c.Config.Bootstrap.SeedPassword)
	return nil
}

func (c *Container) initHandlers() {
	c.Guards = middleware.NewGuards(c.JWTManager, c.Clock)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.UserHandler = userHandler.NewUserHandler(c.AuthService)
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
	log.Info().Msg("container resources released")
}
