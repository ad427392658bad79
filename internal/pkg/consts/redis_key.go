package consts

const (
	// PostStatsKey 帖子计数 Hash 键前缀，完整键形如 stats:briefing-2024-01-15
	PostStatsKey = "stats:"
	// VoteDedupeKey 投票去重标记键前缀，完整键形如 vote:briefing-2024-01-15:1.2.3.4
	VoteDedupeKey = "vote:"
	// TopViewsKey 浏览量排行 ZSet 键，由快照任务维护
	TopViewsKey = "stats:top:views"

	// PostStatsScanPattern 扫描全部帖子计数键的 MATCH 模式
	PostStatsScanPattern = "stats:briefing-*"
)

const (
	StatsFieldViews      = "views"
	StatsFieldHelpful    = "helpful"
	StatsFieldNotHelpful = "not_helpful"
)
