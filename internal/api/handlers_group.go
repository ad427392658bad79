package api

import "RunBriefing/internal/api/handler"

// HandlersGroup 汇总全部 Handler，便于统一装配路由
type HandlersGroup struct {
	StatsHandler *handler.StatsHandler
	VoteHandler  *handler.VoteHandler
	AdminHandler *handler.AdminHandler
}
