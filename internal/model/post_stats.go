package model

// PostStats 单篇帖子的计数快照
type PostStats struct {
	PostID     string
	Views      int
	Helpful    int
	NotHelpful int
}

// TopPost 浏览量排行中的一条记录
type TopPost struct {
	PostID string
	Views  int
}
