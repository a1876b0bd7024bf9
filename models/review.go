package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusFlagged  ReviewStatus = "flagged"
	ReviewStatusRemoved  ReviewStatus = "removed"
	ReviewStatusResolved ReviewStatus = "resolved"
)

// Author 评价作者。匿名评价没有可通知的用户，
// 用显式的 Known 标记代替散落各处的空指针判断
type Author struct {
	ID    int64
	Known bool
}

func AuthorUser(id int64) Author { return Author{ID: id, Known: true} }
func Anonymous() Author          { return Author{} }

func (a Author) Value() (driver.Value, error) {
	if !a.Known {
		return nil, nil
	}
	return a.ID, nil
}

func (a *Author) Scan(v any) error {
	if v == nil {
		*a = Anonymous()
		return nil
	}
	switch val := v.(type) {
	case int64:
		*a = AuthorUser(val)
	case []byte:
		id, err := strconv.ParseInt(string(val), 10, 64)
		if err != nil {
			return err
		}
		*a = AuthorUser(id)
	default:
		return fmt.Errorf("unsupported author column type %T", v)
	}
	return nil
}

// Review 办事评价
// 举报票数不做缓存列，始终从 review_votes 账本现算
type Review struct {
	ID        int64        `gorm:"column:id;primaryKey" json:"id"` // 雪花算法ID
	Code      string       `gorm:"column:code;type:varchar(16);not null;uniqueIndex:uk_review_code" json:"code"`
	OfficeID  int64        `gorm:"column:office_id;not null;index:idx_office_status,priority:1" json:"office_id"`
	Author    Author       `gorm:"column:author_id;type:bigint" json:"author"`
	Rating    int8         `gorm:"column:rating;not null" json:"rating"` // 1~5
	Content   string       `gorm:"column:content;type:text" json:"content"`
	PhotoKey  string       `gorm:"column:photo_key;type:varchar(255)" json:"photo_key"`
	Status    ReviewStatus `gorm:"column:status;type:varchar(16);not null;index:idx_office_status,priority:2" json:"status"`
	CreatedAt time.Time    `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time    `gorm:"column:updated_at" json:"updated_at"`
}

func (Review) TableName() string { return "reviews" }
