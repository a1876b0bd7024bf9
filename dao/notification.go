package dao

import (
	"Civix/models"
	"context"

	"gorm.io/gorm"
)

type NotificationDAO struct {
	Repo[models.Notification]
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{Repo: NewRepo[models.Notification](db)}
}

// ListByUser 收件箱列表，新的在前
func (d *NotificationDAO) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*models.Notification, int64, error) {
	q := d.Model(ctx).Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []*models.Notification
	err := q.Order("id DESC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (d *NotificationDAO) CountUnread(ctx context.Context, userID int64) (int64, error) {
	return d.FindCount(ctx, "user_id = ? AND is_read = ?", userID, false)
}

// MarkRead 只允许收件人本人标记
func (d *NotificationDAO) MarkRead(ctx context.Context, userID int64, notifyID uint64) error {
	return d.Model(ctx).
		Where("id = ? AND user_id = ?", notifyID, userID).
		Update("is_read", true).Error
}

func (d *NotificationDAO) MarkAllRead(ctx context.Context, userID int64) error {
	return d.Model(ctx).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

// Delete 只允许收件人本人删除
func (d *NotificationDAO) Delete(ctx context.Context, userID int64, notifyID uint64) error {
	return d.Db.WithContext(ctx).
		Where("id = ? AND user_id = ?", notifyID, userID).
		Delete(&models.Notification{}).Error
}
