package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/KEYAJANI/demiland-sub000/internal/cache"
	"github.com/KEYAJANI/demiland-sub000/internal/config"
	"github.com/KEYAJANI/demiland-sub000/internal/middleware"
	"github.com/KEYAJANI/demiland-sub000/internal/repository"
	"github.com/KEYAJANI/demiland-sub000/internal/service"
	"github.com/KEYAJANI/demiland-sub000/internal/storage"
)

type HandlerSet struct {
	log       zerolog.Logger
	cfg       *config.AppConfig
	auth      *service.AuthService
	admin     *service.UserAdminService
	products  *service.ProductService
	favorites *service.FavoriteService
	catalog   *service.CatalogService
	analytics *service.AnalyticsService
	users     *repository.UserRepository
	sessions  *repository.SessionRepository
	db        *pgxpool.Pool
	cache     *redis.Client
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, redisClient *redis.Client, store *storage.ObjectStore, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	catalogCache := cache.NewCatalogCache(redisClient, cfg.Cache.CatalogTTL)
	eventStream := cache.NewEventStream(redisClient, cfg.Analytics.Stream, cfg.Analytics.MaxStream)

	return HandlerSet{
		log:       log,
		cfg:       cfg,
		auth:      service.NewAuthService(userRepo, sessionRepo, cfg, log),
		admin:     service.NewUserAdminService(userRepo, sessionRepo, cfg, log),
		products:  service.NewProductService(productRepo, store, catalogCache, log),
		favorites: service.NewFavoriteService(favoriteRepo, productRepo, log),
		catalog:   service.NewCatalogService(categoryRepo, catalogCache),
		analytics: service.NewAnalyticsService(analyticsRepo, eventStream, log),
		users:     userRepo,
		sessions:  sessionRepo,
		db:        db,
		cache:     redisClient,
	}
}

func (h HandlerSet) Register(engine *gin.Engine) {
	engine.GET("/health", h.Health)

	api := engine.Group("/api")

	bearer := middleware.Auth(h.cfg, h.users, h.sessions)
	admin := middleware.RequireAdmin()

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.RegisterUser)
		auth.POST("/login", h.Login)

		auth.GET("/profile", bearer, h.Profile)
		auth.PUT("/profile", bearer, h.UpdateProfile)
		auth.PUT("/change-password", bearer, h.ChangePassword)
		auth.GET("/verify", bearer, h.VerifyToken)
		auth.POST("/logout", bearer, h.Logout)

		auth.POST("/admin/users", bearer, admin, h.AdminCreateUser)
		auth.GET("/users", bearer, admin, h.AdminListUsers)
		auth.PUT("/users/:id", bearer, admin, h.AdminUpdateUser)
		auth.DELETE("/users/:id", bearer, admin, h.AdminDeleteUser)
	}

	products := api.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/featured", h.FeaturedProducts)
		products.GET("/category/:category", h.ProductsByCategory)
		products.GET("/search/:query", h.SearchProducts)
		products.GET("/:id", h.GetProduct)

		products.POST("", bearer, admin, h.CreateProduct)
		products.PUT("/:id", bearer, admin, h.UpdateProduct)
		products.DELETE("/:id", bearer, admin, h.DeleteProduct)
		products.POST("/:id/image", bearer, admin, h.UploadProductImage)
	}

	users := api.Group("/users")
	{
		users.GET("/categories", h.ListCategories)

		users.GET("/favorites", bearer, h.ListFavorites)
		users.POST("/favorites/:productId", bearer, h.AddFavorite)
		users.DELETE("/favorites/:productId", bearer, h.RemoveFavorite)

		users.PUT("/:id/role", bearer, admin, h.ChangeUserRole)
	}

	analytics := api.Group("/analytics")
	{
		analytics.POST("/events", h.RecordEvent)
		analytics.GET("/events", bearer, admin, h.ListEvents)
	}
}
