package dao

import (
	"Civix/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type ReviewDAO struct {
	Repo[models.Review]
}

func NewReviewDAO(db *gorm.DB) *ReviewDAO {
	return &ReviewDAO{Repo: NewRepo[models.Review](db)}
}

func (d *ReviewDAO) FindByCode(ctx context.Context, code string) (*models.Review, error) {
	return d.Repo.FindByWhere(ctx, "code = ?", code)
}

// TransitionStatus 评价状态流转的唯一落库入口
// 带上 from 条件做 CAS：并发流转只有先写成功的那个请求返回 true
func (d *ReviewDAO) TransitionStatus(ctx context.Context, reviewID int64, from, to models.ReviewStatus) (bool, error) {
	res := d.Model(ctx).
		Where("id = ? AND status = ?", reviewID, from).
		Updates(map[string]any{"status": to, "updated_at": time.Now()})
	return res.RowsAffected == 1, res.Error
}

// ListByOffice 机构下的公开评价（approved / flagged 仍可见，removed 不可见）
func (d *ReviewDAO) ListByOffice(ctx context.Context, officeID int64, limit, offset int) ([]*models.Review, int64, error) {
	visible := []models.ReviewStatus{models.ReviewStatusApproved, models.ReviewStatusFlagged, models.ReviewStatusResolved}

	q := d.Model(ctx).Where("office_id = ? AND status IN ?", officeID, visible)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []*models.Review
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}
