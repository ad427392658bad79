package service

import (
	"RunBriefing/internal/api/dto"
	"RunBriefing/internal/model"
	"RunBriefing/internal/pkg/consts"
	"RunBriefing/internal/pkg/util"
	"RunBriefing/internal/repository"
	"context"
	log "log/slog"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	// adminFetchConcurrency 管理端聚合时并发读取 Hash 的上限
	adminFetchConcurrency = 8
	// summaryTopSize 管理端摘要返回的排行条数
	summaryTopSize = 10
)

type StatService interface {
	// GetStats 获取单篇帖子的计数
	GetStats(ctx context.Context, postID string) (*dto.PostStatsDTO, error)
	// TrackView 上报一次浏览，返回最新浏览量
	TrackView(ctx context.Context, postID string) (int64, error)
	// Vote 记录一次投票，同一 IP 对同一帖子 24 小时内只计一次
	Vote(ctx context.Context, postID, vote, ip string) (*dto.VoteResultDTO, error)
	// AdminStats 聚合全部帖子的计数
	AdminStats(ctx context.Context) ([]*dto.PostStatsDTO, error)
	// AdminSummary 计算全站汇总与浏览量排行
	AdminSummary(ctx context.Context) (*dto.AdminSummaryDTO, error)
	// RefreshTopViewed 重建浏览量排行并返回聚合结果（定时任务使用）
	RefreshTopViewed(ctx context.Context) ([]*dto.PostStatsDTO, error)
}

type statServiceImpl struct {
	statRepo repository.StatRepo
}

func NewStatService(statRepo repository.StatRepo) StatService {
	return &statServiceImpl{statRepo: statRepo}
}

// validatePostID 在触达存储前完成全部入参校验
func validatePostID(postID string) error {
	if postID == "" {
		return ErrPostIDRequired
	}
	if !util.IsValidPostID(postID) {
		return ErrInvalidPostID
	}
	return nil
}

func toStatsDTO(stats *model.PostStats) *dto.PostStatsDTO {
	return &dto.PostStatsDTO{
		PostID:     stats.PostID,
		Helpful:    stats.Helpful,
		NotHelpful: stats.NotHelpful,
		Views:      stats.Views,
	}
}

func (s *statServiceImpl) GetStats(ctx context.Context, postID string) (*dto.PostStatsDTO, error) {
	if err := validatePostID(postID); err != nil {
		return nil, err
	}

	stats, err := s.statRepo.GetStats(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "fetch stats error", "post_id", postID, "err", err)
		return nil, ErrFetchStatsFailed
	}
	return toStatsDTO(stats), nil
}

func (s *statServiceImpl) TrackView(ctx context.Context, postID string) (int64, error) {
	if err := validatePostID(postID); err != nil {
		return 0, err
	}

	views, err := s.statRepo.IncrStatField(ctx, postID, consts.StatsFieldViews)
	if err != nil {
		log.ErrorContext(ctx, "track view error", "post_id", postID, "err", err)
		return 0, ErrTrackViewFailed
	}
	return views, nil
}

func (s *statServiceImpl) Vote(ctx context.Context, postID, vote, ip string) (*dto.VoteResultDTO, error) {
	if err := validatePostID(postID); err != nil {
		return nil, err
	}
	if vote != consts.StatsFieldHelpful && vote != consts.StatsFieldNotHelpful {
		return nil, ErrInvalidVote
	}

	// 条件写入的结果即去重判定，不做先读后写
	first, err := s.statRepo.MarkVoted(ctx, postID, ip)
	if err != nil {
		log.ErrorContext(ctx, "mark voted error", "post_id", postID, "err", err)
		return nil, ErrRecordVoteFailed
	}

	if !first {
		stats, err := s.statRepo.GetStats(ctx, postID)
		if err != nil {
			log.ErrorContext(ctx, "fetch stats after dedupe error", "post_id", postID, "err", err)
			return nil, ErrRecordVoteFailed
		}
		return &dto.VoteResultDTO{
			OK:         true,
			Deduped:    true,
			Helpful:    stats.Helpful,
			NotHelpful: stats.NotHelpful,
		}, nil
	}

	if _, err := s.statRepo.IncrStatField(ctx, postID, vote); err != nil {
		log.ErrorContext(ctx, "incr vote error", "post_id", postID, "vote", vote, "err", err)
		return nil, ErrRecordVoteFailed
	}

	stats, err := s.statRepo.GetStats(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "fetch stats after vote error", "post_id", postID, "err", err)
		return nil, ErrRecordVoteFailed
	}
	return &dto.VoteResultDTO{
		OK:         true,
		Helpful:    stats.Helpful,
		NotHelpful: stats.NotHelpful,
	}, nil
}

func (s *statServiceImpl) AdminStats(ctx context.Context) ([]*dto.PostStatsDTO, error) {
	stats, err := s.aggregateStats(ctx)
	if err != nil {
		log.ErrorContext(ctx, "aggregate stats error", "err", err)
		return nil, ErrFetchStatsFailed
	}
	return stats, nil
}

func (s *statServiceImpl) AdminSummary(ctx context.Context) (*dto.AdminSummaryDTO, error) {
	stats, err := s.aggregateStats(ctx)
	if err != nil {
		log.ErrorContext(ctx, "aggregate stats error", "err", err)
		return nil, ErrFetchStatsFailed
	}

	summary := &dto.AdminSummaryDTO{TotalPosts: len(stats)}
	for _, item := range stats {
		summary.TotalViews += item.Views
		summary.TotalHelpful += item.Helpful
		summary.TotalNotHelpful += item.NotHelpful
	}
	if votes := summary.TotalHelpful + summary.TotalNotHelpful; votes > 0 {
		summary.HelpfulRatio = float64(summary.TotalHelpful) / float64(votes)
	}

	top, err := s.statRepo.TopViewed(ctx, summaryTopSize)
	if err != nil {
		log.ErrorContext(ctx, "fetch top viewed error", "err", err)
		return nil, ErrFetchStatsFailed
	}
	summary.TopViewed = make([]*dto.TopPostDTO, 0, len(top))
	for _, p := range top {
		summary.TopViewed = append(summary.TopViewed, &dto.TopPostDTO{PostID: p.PostID, Views: p.Views})
	}

	return summary, nil
}

func (s *statServiceImpl) RefreshTopViewed(ctx context.Context) ([]*dto.PostStatsDTO, error) {
	stats, err := s.aggregateStats(ctx)
	if err != nil {
		return nil, err
	}

	models := make([]*model.PostStats, 0, len(stats))
	for _, item := range stats {
		models = append(models, &model.PostStats{
			PostID:     item.PostID,
			Views:      item.Views,
			Helpful:    item.Helpful,
			NotHelpful: item.NotHelpful,
		})
	}
	if err := s.statRepo.RebuildTopViewed(ctx, models); err != nil {
		return nil, err
	}
	return stats, nil
}

// aggregateStats 扫描全部计数键后并发读取各帖子的 Hash
func (s *statServiceImpl) aggregateStats(ctx context.Context) ([]*dto.PostStatsDTO, error) {
	keys, err := s.statRepo.ScanStatKeys(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*dto.PostStatsDTO, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(adminFetchConcurrency)
	for i, key := range keys {
		g.Go(func() error {
			postID := strings.TrimPrefix(key, consts.PostStatsKey)
			stats, err := s.statRepo.GetStats(gctx, postID)
			if err != nil {
				return err
			}
			results[i] = toStatsDTO(stats)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
