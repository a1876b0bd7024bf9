package models

import (
	"time"

	"gorm.io/datatypes"
)

// Office 政务办事机构
// upvote_count / downvote_count 是 office_votes 账本的缓存聚合值，
// 只允许 office_votes 写事务内的重算步骤更新，其他任何路径不得直接写
type Office struct {
	ID            int64          `gorm:"column:id;primaryKey" json:"id"` // 雪花算法ID
	Code          string         `gorm:"column:code;type:varchar(16);not null;uniqueIndex:uk_office_code" json:"code"`
	Name          string         `gorm:"column:name;type:varchar(100);not null;uniqueIndex:uk_office_name" json:"name"`
	District      string         `gorm:"column:district;type:varchar(100);index:idx_district" json:"district"`
	Contact       datatypes.JSON `gorm:"column:contact" json:"contact"` // 联系方式{phone, address, hours}
	UpvoteCount   int64          `gorm:"column:upvote_count;not null;default:0" json:"upvote_count"`
	DownvoteCount int64          `gorm:"column:downvote_count;not null;default:0" json:"downvote_count"`
	CreatedAt     time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Office) TableName() string { return "offices" }
