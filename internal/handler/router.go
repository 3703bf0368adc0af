package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oggyb/muzz-dating/internal/app"
	"github.com/oggyb/muzz-dating/internal/auth"
)

// Setup builds the gin engine with every route of the HTTP API.
func Setup(appCtx *app.AppContext, issuer *auth.Issuer, svc Services) *gin.Engine {
	if appCtx.Config.App.ENV == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(appCtx.Config.HTTP.AllowedOrigins)))
	r.Use(RequestLogger(appCtx.Logger))

	h := New(svc)

	api := r.Group("/api")
	api.GET("/health", health(appCtx))

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}

	protected := api.Group("")
	protected.Use(AuthRequired(issuer))
	{
		protected.GET("/profile", h.GetMyProfile)
		protected.PUT("/profile", h.UpsertProfile)
		protected.DELETE("/account", h.DeleteAccount)
		protected.GET("/users/:user_id", h.GetUserProfile)

		protected.GET("/discover", h.Discover)
		protected.POST("/like/:user_id", h.Like)
		protected.POST("/pass/:user_id", h.Pass)
		protected.GET("/matches", h.ListMatches)
		protected.GET("/likes/received", h.ListLikedYou)
		protected.GET("/likes/received/count", h.CountLikedYou)

		protected.POST("/chat/:user_id", h.SendMessage)
		protected.GET("/chat/:user_id", h.OpenConversation)
		protected.GET("/messages", h.ListConversations)
		protected.GET("/messages/unread-count", h.UnreadCount)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders:    []string{requestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// health reports liveness plus the reachability of the DB and Redis.
func health(appCtx *app.AppContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		checks := gin.H{"database": "ok", "redis": "ok"}
		healthy := true

		if sqlDB, err := appCtx.DB.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			checks["database"] = "unreachable"
			healthy = false
		}
		if err := appCtx.RedisCache.Ping(ctx); err != nil {
			checks["redis"] = "unreachable"
			healthy = false
		}

		if !healthy {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "checks": checks})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": checks})
	}
}
