package router

import (
	"net/http"

	"blogapi/internal/config"
	"blogapi/internal/handlers"
	"blogapi/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// New builds the engine with the shared middleware chain and the full
// route table.
func New(cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging())
	r.Use(corsMiddleware())
	if cfg.RateLimitRequests > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
		r.Use(limiter.Middleware())
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	postHandler := handlers.NewPostHandler(cfg)
	commentHandler := handlers.NewCommentHandler(cfg)
	categoryHandler := handlers.NewCategoryHandler(cfg)

	api := r.Group("/api")
	{
		api.GET("/posts", postHandler.List)
		api.POST("/posts", postHandler.Create)
		api.GET("/posts/:id", postHandler.Retrieve)
		api.PUT("/posts/:id", postHandler.Update)
		api.PATCH("/posts/:id", postHandler.Update)
		api.DELETE("/posts/:id", postHandler.Delete)
		api.POST("/posts/:id/like", postHandler.Like)
		api.POST("/posts/:id/dislike", postHandler.Dislike)

		// Comments are nested under their post; the post id path param
		// is shared with the post routes above.
		api.GET("/posts/:id/comments", commentHandler.List)
		api.POST("/posts/:id/comments", commentHandler.Create)
		api.GET("/posts/:id/comments/:comment_id", commentHandler.Retrieve)
		api.DELETE("/posts/:id/comments/:comment_id", commentHandler.Delete)

		// Read-only
		api.GET("/categories", categoryHandler.List)
		api.GET("/categories/:id", categoryHandler.Retrieve)
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	c := cors.Default()
	return func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)
		if ctx.Request.Method == http.MethodOptions &&
			ctx.Request.Header.Get("Access-Control-Request-Method") != "" {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
		ctx.Next()
	}
}
