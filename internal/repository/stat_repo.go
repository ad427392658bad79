package repository

import (
	"RunBriefing/internal/model"
	"RunBriefing/internal/pkg/consts"
	"RunBriefing/internal/pkg/util"
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	// voteDedupeTTL 同一 IP 对同一帖子的投票去重窗口
	voteDedupeTTL = 24 * time.Hour
	// scanCount 单次 SCAN 的批大小
	scanCount = 100
	// topViewedSize 浏览量排行保留的最大条数
	topViewedSize = 100
)

type StatRepo interface {
	// IncrStatField 原子自增指定计数字段，返回自增后的值
	IncrStatField(ctx context.Context, postID, field string) (int64, error)
	// GetStats 读取帖子全部计数，缺失字段按 0 处理
	GetStats(ctx context.Context, postID string) (*model.PostStats, error)
	// MarkVoted 写入投票去重标记，返回是否为窗口内首次投票
	MarkVoted(ctx context.Context, postID, ip string) (bool, error)
	// HasVoted 判断去重标记是否存在
	HasVoted(ctx context.Context, postID, ip string) (bool, error)
	// ScanStatKeys 按游标分页扫描全部帖子计数键
	ScanStatKeys(ctx context.Context) ([]string, error)
	// RebuildTopViewed 重建浏览量排行
	RebuildTopViewed(ctx context.Context, stats []*model.PostStats) error
	// TopViewed 获取浏览量最高的帖子列表
	TopViewed(ctx context.Context, limit int64) ([]*model.TopPost, error)
}

type statRepoImpl struct {
	rdb *redis.Client
}

func NewStatRepo(rdb *redis.Client) StatRepo {
	return &statRepoImpl{rdb: rdb}
}

func statsKey(postID string) string {
	return consts.PostStatsKey + postID
}

func dedupeKey(postID, ip string) string {
	return consts.VoteDedupeKey + postID + ":" + ip
}

func (r *statRepoImpl) IncrStatField(ctx context.Context, postID, field string) (int64, error) {
	val, err := r.rdb.HIncrBy(ctx, statsKey(postID), field, 1).Result()
	if err != nil {
		return 0, errors.Wrapf(err, "incr %s of post %s", field, postID)
	}
	return val, nil
}

func (r *statRepoImpl) GetStats(ctx context.Context, postID string) (*model.PostStats, error) {
	fields, err := r.rdb.HGetAll(ctx, statsKey(postID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "get stats of post %s", postID)
	}
	return &model.PostStats{
		PostID:     postID,
		Views:      util.ToCount(fields[consts.StatsFieldViews]),
		Helpful:    util.ToCount(fields[consts.StatsFieldHelpful]),
		NotHelpful: util.ToCount(fields[consts.StatsFieldNotHelpful]),
	}, nil
}

// MarkVoted SetNX 的写入结果即去重判定：写入成功说明窗口内未投过票
func (r *statRepoImpl) MarkVoted(ctx context.Context, postID, ip string) (bool, error) {
	ok, err := r.rdb.SetNX(ctx, dedupeKey(postID, ip), "1", voteDedupeTTL).Result()
	if err != nil {
		return false, errors.Wrapf(err, "mark voted on post %s", postID)
	}
	return ok, nil
}

func (r *statRepoImpl) HasVoted(ctx context.Context, postID, ip string) (bool, error) {
	n, err := r.rdb.Exists(ctx, dedupeKey(postID, ip)).Result()
	if err != nil {
		return false, errors.Wrapf(err, "check voted on post %s", postID)
	}
	return n > 0, nil
}

func (r *statRepoImpl) ScanStatKeys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0, scanCount)
	var cursor uint64
	for {
		batch, next, err := r.rdb.Scan(ctx, cursor, consts.PostStatsScanPattern, scanCount).Result()
		if err != nil {
			return nil, errors.Wrap(err, "scan stat keys")
		}
		keys = append(keys, batch...)
		if next == 0 {
			break
		}
		cursor = next
	}
	return keys, nil
}

func (r *statRepoImpl) RebuildTopViewed(ctx context.Context, stats []*model.PostStats) error {
	members := make([]redis.Z, 0, len(stats))
	for _, s := range stats {
		members = append(members, redis.Z{Score: float64(s.Views), Member: s.PostID})
	}

	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, consts.TopViewsKey)
	if len(members) > 0 {
		pipe.ZAdd(ctx, consts.TopViewsKey, members...)
		pipe.ZRemRangeByRank(ctx, consts.TopViewsKey, 0, int64(-topViewedSize-1))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "rebuild top viewed")
	}
	return nil
}

func (r *statRepoImpl) TopViewed(ctx context.Context, limit int64) ([]*model.TopPost, error) {
	zs, err := r.rdb.ZRevRangeWithScores(ctx, consts.TopViewsKey, 0, limit-1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "get top viewed")
	}

	posts := make([]*model.TopPost, 0, len(zs))
	for _, z := range zs {
		id, ok := z.Member.(string)
		if !ok {
			continue
		}
		posts = append(posts, &model.TopPost{PostID: id, Views: int(z.Score)})
	}
	return posts, nil
}
