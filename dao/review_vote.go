package dao

import (
	"Civix/models"
	"Civix/types"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ReviewVoteDAO struct {
	Repo[models.ReviewVote]
}

func NewReviewVoteDAO(db *gorm.DB) *ReviewVoteDAO {
	return &ReviewVoteDAO{Repo: NewRepo[models.ReviewVote](db)}
}

// GetByReviewUser 查询指定用户对指定评价的投票记录
func (d *ReviewVoteDAO) GetByReviewUser(ctx context.Context, reviewID, userID int64) (*models.ReviewVote, error) {
	var item models.ReviewVote
	err := d.Db.WithContext(ctx).Where("review_id = ? AND user_id = ?", reviewID, userID).Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// Cast 写入投票：无记录则插入，kind 不同则原地改票，kind 相同则幂等直接返回
// changed=false 表示账本没有发生任何写入
func (d *ReviewVoteDAO) Cast(ctx context.Context, reviewID, userID int64, kind models.ReviewVoteKind) (vote *models.ReviewVote, changed bool, err error) {
	var item models.ReviewVote
	err = d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("review_id = ? AND user_id = ?", reviewID, userID).Limit(1).Find(&item).Error
		if err != nil {
			return err
		}
		if item.ID == 0 { // create
			item = models.ReviewVote{ReviewID: reviewID, UserID: userID, Kind: kind, CreatedAt: time.Now()}
			changed = true
			return tx.Create(&item).Error
		}
		if item.Kind == kind {
			return nil
		}
		// update
		changed = true
		item.Kind = kind
		return tx.Model(&models.ReviewVote{}).Where("id = ?", item.ID).Update("kind", kind).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &item, changed, nil
}

// Retract 撤票。记录不存在不是错误，返回 false
func (d *ReviewVoteDAO) Retract(ctx context.Context, reviewID, userID int64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		Delete(&models.ReviewVote{})
	return res.RowsAffected > 0, res.Error
}

// Counts 按 kind 现算票数，不走任何缓存
func (d *ReviewVoteDAO) Counts(ctx context.Context, reviewID int64) (map[models.ReviewVoteKind]int64, error) {
	var rows []struct {
		Kind  models.ReviewVoteKind
		Total int64
	}
	err := d.Model(ctx).
		Select("kind, COUNT(*) AS total").
		Where("review_id = ?", reviewID).
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[models.ReviewVoteKind]int64{
		models.ReviewVoteHelpful:    0,
		models.ReviewVoteNotHelpful: 0,
		models.ReviewVoteFlag:       0,
	}
	for _, r := range rows {
		counts[r.Kind] = r.Total
	}
	return counts, nil
}

// FlagCount 评价当前举报票数
func (d *ReviewVoteDAO) FlagCount(ctx context.Context, reviewID int64) (int64, error) {
	return d.FindCount(ctx, "review_id = ? AND kind = ?", reviewID, models.ReviewVoteFlag)
}

// FlaggedReviews 举报处置列表：按举报票数倒序，可按评价状态过滤
func (d *ReviewVoteDAO) FlaggedReviews(ctx context.Context, status models.ReviewStatus, limit, offset int) ([]*types.FlaggedReview, error) {
	q := d.Db.WithContext(ctx).
		Table("review_votes").
		Select("reviews.id AS review_id, reviews.code, reviews.office_id, reviews.status, reviews.rating, reviews.content, reviews.created_at, COUNT(review_votes.id) AS flag_count").
		Joins("JOIN reviews ON reviews.id = review_votes.review_id").
		Where("review_votes.kind = ?", models.ReviewVoteFlag)
	if status != "" {
		q = q.Where("reviews.status = ?", status)
	}

	var rows []*types.FlaggedReview
	err := q.Group("reviews.id").
		Order("flag_count DESC, reviews.id ASC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	return rows, err
}
