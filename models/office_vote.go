package models

import "time"

type OfficeVoteKind string

const (
	OfficeVoteUp   OfficeVoteKind = "upvote"
	OfficeVoteDown OfficeVoteKind = "downvote"
)

func (k OfficeVoteKind) Valid() bool {
	return k == OfficeVoteUp || k == OfficeVoteDown
}

// OfficeVote 机构投票账本
// 唯一键: office_id + user_id，切换方向只更新 kind 和 updated_at
type OfficeVote struct {
	ID        uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OfficeID  int64          `gorm:"column:office_id;not null;index:uk_office_user,unique,priority:1" json:"office_id"`
	UserID    int64          `gorm:"column:user_id;not null;index:uk_office_user,unique,priority:2" json:"user_id"`
	Kind      OfficeVoteKind `gorm:"column:kind;type:varchar(16);not null" json:"kind"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (OfficeVote) TableName() string { return "office_votes" }
