package job

import (
	"RunBriefing/internal/pkg/logger"
	"RunBriefing/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// StatsSnapshotJob 每日聚合全站计数：输出汇总日志并重建浏览量排行
type StatsSnapshotJob struct {
	statSvc service.StatService
}

func NewStatsSnapshotJob(statSvc service.StatService) *StatsSnapshotJob {
	return &StatsSnapshotJob{
		statSvc: statSvc,
	}
}

func (s *StatsSnapshotJob) Run() {
	traceID := "job-stats-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	stats, err := s.statSvc.RefreshTopViewed(ctx)
	if err != nil {
		log.ErrorContext(ctx, "refresh stats snapshot error", "err", err)
		return
	}

	var views, helpful, notHelpful int
	for _, item := range stats {
		views += item.Views
		helpful += item.Helpful
		notHelpful += item.NotHelpful
	}

	log.InfoContext(ctx, "stats snapshot",
		"posts", len(stats),
		"views", views,
		"helpful", helpful,
		"not_helpful", notHelpful,
	)
}
