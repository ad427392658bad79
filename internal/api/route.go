package api

import (
	"RunBriefing/internal/api/middleware"
	"RunBriefing/internal/pkg/logger"
	"RunBriefing/internal/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})
	r.HandleMethodNotAllowed = true

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.NoMethod(func(c *gin.Context) {
		response.Fail(c, http.StatusMethodNotAllowed, "Method not allowed")
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		apiGroup.GET("/stats", group.StatsHandler.GetStats)
		apiGroup.POST("/track-view", group.StatsHandler.TrackView)
		apiGroup.POST("/vote", group.VoteHandler.Vote)

		adminGroup := apiGroup.Group("/admin-stats")
		adminGroup.Use(middleware.AdminAuthMiddleware())
		{
			adminGroup.GET("", group.AdminHandler.GetAllStats)
			adminGroup.GET("/summary", group.AdminHandler.GetSummary)
		}
	}

	return r
}
