package handler

import (
	"RunBriefing/internal/api/dto"
	"RunBriefing/internal/pkg/response"
	"RunBriefing/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	statSvc service.StatService
}

func NewAdminHandler(statSvc service.StatService) *AdminHandler {
	return &AdminHandler{
		statSvc: statSvc,
	}
}

// GetAllStats 返回全量帖子计数（语料规模小，不分页）
func (h *AdminHandler) GetAllStats(c *gin.Context) {
	stats, err := h.statSvc.AdminStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.AdminStatsDTO{Stats: stats})
}

// GetSummary 返回全站汇总与浏览量排行
func (h *AdminHandler) GetSummary(c *gin.Context) {
	summary, err := h.statSvc.AdminSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}
