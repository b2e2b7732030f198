package app

import (
	"Loyalty/internal/auth"
	"Loyalty/internal/cache"
	"Loyalty/internal/config"
	"Loyalty/internal/feed"
	"Loyalty/internal/handlers"
	"Loyalty/internal/repo"
	"Loyalty/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	sessionStore := auth.NewStore(rdb, cfg.Auth.SessionTTL.Duration())
	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo, hasher)

	cookieMaxAge := int(sessionStore.TTL().Seconds())
	cookieSecure := cfg.App.Env == "prod"

	authHandler := handlers.NewAuthHandler(sessionStore, userSvc, cookieMaxAge, cookieSecure)
	profileHandler := handlers.NewProfileHandler(userSvc)
	pointsHandler := handlers.NewPointsHandler(userSvc)
	pagesHandler := handlers.NewPagesHandler(sessionStore, userSvc)

	storeCache := cache.NewStoreCache(rdb, cfg.Redis.DefaultTTL.Duration())
	storeSvc := service.NewStoreService(feed.Load, cfg.Stores.FeedPath, storeCache)
	storesHandler := handlers.NewStoresHandler(storeSvc)

	requireAuth := auth.RequireSession(sessionStore)
	requireGuest := auth.RequireGuest(sessionStore)

	// Pages: some guest-only, one auth-only, the rest open to anyone.
	r.GET("/", pagesHandler.Render)
	r.GET("/list", pagesHandler.Render)
	r.GET("/faq", pagesHandler.Render)
	r.GET("/terms", pagesHandler.Render)
	r.GET("/privacy", pagesHandler.Render)
	r.GET("/login", requireGuest, pagesHandler.Render)
	r.GET("/signup", requireGuest, pagesHandler.Render)
	r.GET("/profile", requireAuth, pagesHandler.Render)

	r.POST("/signup", requireGuest, authHandler.Signup)
	r.POST("/login", requireGuest, authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	r.POST("/profile", requireAuth, profileHandler.Update)
	r.POST("/points", requireAuth, pointsHandler.Add)
	r.GET("/points", requireAuth, pointsHandler.Get)

	r.GET("/stores", storesHandler.List)
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}
