package util

import "regexp"

var postIDRegex = regexp.MustCompile(`^briefing-\d{4}-\d{2}-\d{2}$`)

// IsValidPostID 校验帖子 ID 是否符合 briefing-YYYY-MM-DD 格式且长度小于 100
func IsValidPostID(postID string) bool {
	return len(postID) < 100 && postIDRegex.MatchString(postID)
}
