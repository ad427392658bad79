package handler

import (
	"RunBriefing/internal/api/dto"
	"RunBriefing/internal/pkg/response"
	"RunBriefing/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statSvc service.StatService
}

func NewStatsHandler(statSvc service.StatService) *StatsHandler {
	return &StatsHandler{
		statSvc: statSvc,
	}
}

// GetStats 获取单篇帖子的计数
func (h *StatsHandler) GetStats(c *gin.Context) {
	postID := c.Query("postId")

	stats, err := h.statSvc.GetStats(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

// TrackView 上报一次浏览（不去重，每次调用计数加一）
func (h *StatsHandler) TrackView(c *gin.Context) {
	var req dto.TrackViewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrPostIDRequired)
		return
	}

	views, err := h.statSvc.TrackView(c.Request.Context(), req.PostID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.TrackViewDTO{Success: true, Views: views})
}
