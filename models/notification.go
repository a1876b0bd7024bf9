package models

import "time"

type NotifySeverity string

const (
	NotifyInfo    NotifySeverity = "info"
	NotifyWarning NotifySeverity = "warning"
	NotifySuccess NotifySeverity = "success"
	NotifyError   NotifySeverity = "error"
)

// 关联实体类型，仅用于客户端跳转，不构成所有权
const (
	NotifyRefReview = "review"
	NotifyRefOffice = "office"
)

type Notification struct {
	ID        uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    int64          `gorm:"column:user_id;not null;index:idx_user_read,priority:1" json:"user_id"` // 接收人
	Title     string         `gorm:"column:title;type:varchar(100);not null" json:"title"`
	Body      string         `gorm:"column:body;type:text" json:"body"`
	Severity  NotifySeverity `gorm:"column:severity;type:varchar(16);not null;default:info" json:"severity"`
	RefKind   string         `gorm:"column:ref_kind;type:varchar(16)" json:"ref_kind"`
	RefID     int64          `gorm:"column:ref_id" json:"ref_id"`
	IsRead    bool           `gorm:"column:is_read;not null;default:false;index:idx_user_read,priority:2" json:"is_read"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
