package api

import (
	"Instaclone/internal/api/dto"
	"Instaclone/internal/api/middleware"
	"Instaclone/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthDTO{OK: true})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := r.Group("/api")
	{
		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("", group.PostHandler.GetPosts)
			postGroup.PATCH("/:id/like", group.PostHandler.LikePost)
			postGroup.PATCH("/:id/unlike", group.PostHandler.UnlikePost)
		}

		apiGroup.GET("/search/accounts", group.SearchHandler.SearchAccounts)

		apiGroup.GET("/users/:username", group.UserHandler.GetUserByUsername)
		apiGroup.GET("/user-posts/:username", group.UserHandler.GetUserPosts)
	}

	return r
}
