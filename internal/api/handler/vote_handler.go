package handler

import (
	"RunBriefing/internal/api/dto"
	"RunBriefing/internal/pkg/response"
	"RunBriefing/internal/pkg/util"
	"RunBriefing/internal/service"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	statSvc service.StatService
}

func NewVoteHandler(statSvc service.StatService) *VoteHandler {
	return &VoteHandler{
		statSvc: statSvc,
	}
}

// Vote 记录 helpful / not_helpful 投票，按客户端 IP 去重
func (h *VoteHandler) Vote(c *gin.Context) {
	var req dto.VoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrPostIDAndVoteRequired)
		return
	}

	ip := util.ResolveClientIP(c.Request.Header, c.Request.RemoteAddr)

	result, err := h.statSvc.Vote(c.Request.Context(), req.PostID, req.Vote, ip)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
