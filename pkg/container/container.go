package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"blog-backend/internal/config"
	infraCache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/jwt"

	authorHandler "blog-backend/internal/domains/author/handler"
	authorRepo "blog-backend/internal/domains/author/repository"
	authorService "blog-backend/internal/domains/author/service"
	blogHandler "blog-backend/internal/domains/blog/handler"
	blogRepo "blog-backend/internal/domains/blog/repository"
	blogService "blog-backend/internal/domains/blog/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Struct này là "root" của dependency graph
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	// Chỉ một trong Mongo / DB được khởi tạo, theo STORE_DRIVER

	Config     *config.Config
	Mongo      *database.MongoDB    // STORE_DRIVER=mongo
	DB         *database.PostgresDB // STORE_DRIVER=postgres
	Cache      cache.Cache          // nil khi Redis tắt hoặc không kết nối được
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	AuthorRepo authorRepo.RepositoryInterface
	BlogRepo   blogRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	AuthorService authorService.ServiceInterface
	BlogService   blogService.ServiceInterface

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	AuthorHandler *authorHandler.AuthorHandler
	BlogHandler   *blogHandler.Handler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer tạo và initialize toàn bộ dependency graph
//
// Thứ tự initialization:
// 1. Config
// 2. Infrastructure (Store, Cache, JWT) - phụ thuộc Config
// 3. Repositories - phụ thuộc Infrastructure
// 4. Services - phụ thuộc Repositories
// 5. Handlers - phụ thuộc Services
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s, Store: %s)", cfg.App.Environment, cfg.Store.Driver)

	// ========================================
	// STEP 2: INITIALIZE STORE
	// ========================================
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	switch cfg.Store.Driver {
	case config.StorePostgres:
		if err := c.initPostgres(ctx); err != nil {
			return nil, err
		}
	default:
		if err := c.initMongo(ctx); err != nil {
			return nil, err
		}
	}

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	c.initCache(ctx)

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.TokenExpiry())

	// ========================================
	// STEP 4: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")
	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 5: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")
	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")
	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initMongo(ctx context.Context) error {
	log.Println("🍃 Connecting to MongoDB...")

	mongoDB := database.NewMongoDB(c.Config.LoadMongoConfig())
	if err := mongoDB.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := mongoDB.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to ensure mongo indexes: %w", err)
	}

	c.Mongo = mongoDB
	log.Println("✅ MongoDB connected")
	return nil
}

func (c *Container) initPostgres(ctx context.Context) error {
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")
	return nil
}

// initCache: Redis failure không critical - log warning và chạy không cache
func (c *Container) initCache(ctx context.Context) {
	if !c.Config.Redis.Enabled {
		log.Println("⚪ Redis disabled, running without cache")
		return
	}

	log.Println("🔴 Connecting to Redis...")
	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	if err := redisCache.Connect(ctx); err != nil {
		log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		_ = redisCache.Close()
		return
	}

	c.Cache = redisCache
	log.Println("✅ Redis connected")
}

// initRepositories chọn implementation theo store driver,
// bọc thêm cache decorator khi có Redis
func (c *Container) initRepositories() {
	switch {
	case c.DB != nil:
		c.AuthorRepo = authorRepo.NewPostgresRepository(c.DB.Pool)
		c.BlogRepo = blogRepo.NewPostgresRepository(c.DB.Pool)
	default:
		c.AuthorRepo = authorRepo.NewMongoRepository(c.Mongo.DB)
		c.BlogRepo = blogRepo.NewMongoRepository(c.Mongo.DB)
	}

	if c.Cache != nil {
		c.AuthorRepo = authorRepo.NewCachedRepository(c.AuthorRepo, c.Cache, c.Config.Redis.TTL)
		c.BlogRepo = blogRepo.NewCachedRepository(c.BlogRepo, c.Cache, c.Config.Redis.TTL)
	}
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(
		c.AuthorRepo,
		c.JWTManager,
		authorService.DefaultBcryptCost,
	)

	// Blog service chỉ cần "author có tồn tại không"
	c.BlogService = blogService.NewService(c.BlogRepo, c.AuthorRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService, c.Config.JWT.Header)
	c.BlogHandler = blogHandler.NewHandler(c.BlogService)
}

// ========================================
// HELPER METHODS
// ========================================

// StoreHealthCheck ping store đang dùng
func (c *Container) StoreHealthCheck(ctx context.Context) error {
	switch {
	case c.DB != nil:
		return c.DB.HealthCheck(ctx)
	case c.Mongo != nil:
		return c.Mongo.HealthCheck(ctx)
	default:
		return fmt.Errorf("no store initialized")
	}
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Close()
		log.Println("✅ Database connections closed")
	}

	if c.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.Mongo.Close(ctx); err != nil {
			log.Printf("⚠️  Failed to close MongoDB: %v", err)
		} else {
			log.Println("✅ MongoDB disconnected")
		}
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}

	log.Println("✅ Container cleanup completed")
}
