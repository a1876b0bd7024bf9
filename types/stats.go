package types

import "time"

type UserVoteStats struct {
	ReviewVotes    map[string]int64 `json:"review_votes"` // kind -> 票数
	OfficeVotes    map[string]int64 `json:"office_votes"`
	VotedReviewIDs []int64          `json:"voted_review_ids"`
	VotedOfficeIDs []int64          `json:"voted_office_ids"`
}

// 排行榜维度
const (
	RankByUpvote   = "upvote"
	RankByDownvote = "downvote"
	RankByTotal    = "total"
)

// 趋势周期
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

type TrendBucket struct {
	Bucket    time.Time `json:"bucket"` // 桶起始时间
	Upvotes   int64     `json:"upvotes"`
	Downvotes int64     `json:"downvotes"`
	Total     int64     `json:"total"`
}
