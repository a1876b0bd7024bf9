package models

import "time"

type ReviewVoteKind string

const (
	ReviewVoteHelpful    ReviewVoteKind = "helpful"
	ReviewVoteNotHelpful ReviewVoteKind = "not_helpful"
	ReviewVoteFlag       ReviewVoteKind = "flag"
)

func (k ReviewVoteKind) Valid() bool {
	switch k {
	case ReviewVoteHelpful, ReviewVoteNotHelpful, ReviewVoteFlag:
		return true
	}
	return false
}

// ReviewVote 评价投票账本
// 唯一键: review_id + user_id，改票是原地更新而不是插入新行
type ReviewVote struct {
	ID        uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ReviewID  int64          `gorm:"column:review_id;not null;index:uk_review_user,unique,priority:1" json:"review_id"`
	UserID    int64          `gorm:"column:user_id;not null;index:uk_review_user,unique,priority:2" json:"user_id"`
	Kind      ReviewVoteKind `gorm:"column:kind;type:varchar(16);not null" json:"kind"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (ReviewVote) TableName() string { return "review_votes" }
