package dto

// ErrorDTO 错误响应
type ErrorDTO struct {
	Error string `json:"error"`
}

// PostStatsDTO 单篇帖子的计数
type PostStatsDTO struct {
	PostID     string `json:"postId"`
	Helpful    int    `json:"helpful"`
	NotHelpful int    `json:"notHelpful"`
	Views      int    `json:"views"`
}

// TrackViewReq 浏览上报请求
type TrackViewReq struct {
	PostID string `json:"postId" binding:"required"`
}

// TrackViewDTO 浏览上报响应
type TrackViewDTO struct {
	Success bool  `json:"success"`
	Views   int64 `json:"views"`
}

// VoteReq 投票请求（vote 取值校验在 service 层完成，以返回具体文案）
type VoteReq struct {
	PostID string `json:"postId" binding:"required"`
	Vote   string `json:"vote" binding:"required"`
}

// VoteResultDTO 投票响应，重复投票时 deduped 为 true 且计数不变
type VoteResultDTO struct {
	OK         bool `json:"ok"`
	Deduped    bool `json:"deduped,omitempty"`
	Helpful    int  `json:"helpful"`
	NotHelpful int  `json:"notHelpful"`
}

// AdminStatsDTO 全量计数列表
type AdminStatsDTO struct {
	Stats []*PostStatsDTO `json:"stats"`
}

// TopPostDTO 浏览量排行中的一条记录
type TopPostDTO struct {
	PostID string `json:"postId"`
	Views  int    `json:"views"`
}

// AdminSummaryDTO 全站汇总
type AdminSummaryDTO struct {
	TotalPosts      int           `json:"totalPosts"`
	TotalViews      int           `json:"totalViews"`
	TotalHelpful    int           `json:"totalHelpful"`
	TotalNotHelpful int           `json:"totalNotHelpful"`
	HelpfulRatio    float64       `json:"helpfulRatio"`
	TopViewed       []*TopPostDTO `json:"topViewed"`
}
