package service

import (
	"errors"
	"net/http"
)

// 错误文案即对外返回的 error 字段内容，与前端约定保持一致
var (
	ErrPostIDRequired        = errors.New("Post ID is required")
	ErrPostIDAndVoteRequired = errors.New("Post ID and vote are required")
	ErrInvalidPostID         = errors.New("Invalid post ID format")
	ErrInvalidVote           = errors.New(`Vote must be "helpful" or "not_helpful"`)
	ErrFetchStatsFailed      = errors.New("Failed to fetch stats")
	ErrTrackViewFailed       = errors.New("Failed to track view")
	ErrRecordVoteFailed      = errors.New("Failed to record vote")
)

var ErrorMap = map[error]int{
	ErrPostIDRequired:        http.StatusBadRequest,
	ErrPostIDAndVoteRequired: http.StatusBadRequest,
	ErrInvalidPostID:         http.StatusBadRequest,
	ErrInvalidVote:           http.StatusBadRequest,
	ErrFetchStatsFailed:      http.StatusInternalServerError,
	ErrTrackViewFailed:       http.StatusInternalServerError,
	ErrRecordVoteFailed:      http.StatusInternalServerError,
}
