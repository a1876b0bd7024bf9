package types

type CastReviewVoteRequest struct {
	Kind string `json:"kind" binding:"required,oneof=helpful not_helpful flag"`
}

type CastOfficeVoteRequest struct {
	Kind string `json:"kind" binding:"required,oneof=upvote downvote"`
}

// ReviewVoteResult 投票结果连带最新票数一起返回，
// 不允许出现“投票成功但计数失败”的半成功响应
type ReviewVoteResult struct {
	Kind         string           `json:"kind,omitempty"`
	Retracted    bool             `json:"retracted,omitempty"`
	Counts       map[string]int64 `json:"counts"`
	ReviewStatus string           `json:"review_status"`
}

type OfficeVoteResult struct {
	Kind          string `json:"kind,omitempty"`
	Retracted     bool   `json:"retracted,omitempty"`
	UpvoteCount   int64  `json:"upvote_count"`
	DownvoteCount int64  `json:"downvote_count"`
}
