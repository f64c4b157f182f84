package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.Tracing(c.Config.App.Name, "/api/v1/health"),
		middleware.Logger(),
		middleware.CORS(c.Config.JWT.Header),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupAuthorRoutes(v1, c)
		setupBlogRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.POST("/authors", c.AuthorHandler.Register)
	v1.POST("/login", c.AuthorHandler.Login)
}

// ========================================
// BLOG ROUTES
// ========================================
// GET là public; mọi thao tác ghi cần token trong header cấu hình (mặc định x-api-key)
func setupBlogRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := middleware.Auth(c.JWTManager, c.Config.JWT.Header)

	blogs := v1.Group("/blogs")
	{
		blogs.GET("", c.BlogHandler.ListBlogs)
		blogs.POST("", auth, c.BlogHandler.CreateBlog)
		blogs.DELETE("", auth, c.BlogHandler.DeleteBlogsByQuery)
		blogs.PUT("/:blogId", auth, c.BlogHandler.UpdateBlog)
		blogs.DELETE("/:blogId", auth, c.BlogHandler.DeleteBlog)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}
		statusCode := http.StatusOK

		// Check store
		storeStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.StoreHealthCheck(ctx); err != nil {
			storeStatus = "error: " + err.Error()
			health["status"] = "unavailable"
			statusCode = http.StatusServiceUnavailable
		}

		// Check redis
		redisStatus := "disabled"
		if appCtx.Cache != nil {
			redisStatus = "ok"
			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = "error: " + err.Error()
				if statusCode == http.StatusOK {
					health["status"] = "degraded"
				}
			}
		}

		if appCtx.DB != nil {
			if stats, err := appCtx.DB.Stats(); err == nil {
				health["pool"] = stats
			}
		}

		health["services"] = gin.H{
			appCtx.Config.Store.Driver: storeStatus,
			"redis":                    redisStatus,
		}

		c.JSON(statusCode, health)
	}
}
