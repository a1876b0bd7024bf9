package dao

import (
	"Civix/models"
	"context"
	"time"

	"gorm.io/gorm"
)

// StatsDAO 只读统计查询，不持有任何可变状态
type StatsDAO struct {
	Db *gorm.DB
}

func NewStatsDAO(db *gorm.DB) *StatsDAO {
	return &StatsDAO{Db: db}
}

// UserReviewVoteCounts 用户在评价账本上的投票分布
func (d *StatsDAO) UserReviewVoteCounts(ctx context.Context, userID int64) (map[models.ReviewVoteKind]int64, error) {
	var rows []struct {
		Kind  models.ReviewVoteKind
		Total int64
	}
	err := d.Db.WithContext(ctx).Model(&models.ReviewVote{}).
		Select("kind, COUNT(*) AS total").
		Where("user_id = ?", userID).
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.ReviewVoteKind]int64, len(rows))
	for _, r := range rows {
		counts[r.Kind] = r.Total
	}
	return counts, nil
}

// UserOfficeVoteCounts 用户在机构账本上的投票分布
func (d *StatsDAO) UserOfficeVoteCounts(ctx context.Context, userID int64) (map[models.OfficeVoteKind]int64, error) {
	var rows []struct {
		Kind  models.OfficeVoteKind
		Total int64
	}
	err := d.Db.WithContext(ctx).Model(&models.OfficeVote{}).
		Select("kind, COUNT(*) AS total").
		Where("user_id = ?", userID).
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.OfficeVoteKind]int64, len(rows))
	for _, r := range rows {
		counts[r.Kind] = r.Total
	}
	return counts, nil
}

func (d *StatsDAO) VotedReviewIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := d.Db.WithContext(ctx).Model(&models.ReviewVote{}).
		Where("user_id = ?", userID).
		Order("review_id ASC").
		Pluck("review_id", &ids).Error
	return ids, err
}

func (d *StatsDAO) VotedOfficeIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := d.Db.WithContext(ctx).Model(&models.OfficeVote{}).
		Where("user_id = ?", userID).
		Order("office_id ASC").
		Pluck("office_id", &ids).Error
	return ids, err
}

// TopOffices 按缓存计数排行，同分按机构名升序
func (d *StatsDAO) TopOffices(ctx context.Context, orderExpr string, limit int) ([]*models.Office, error) {
	var items []*models.Office
	err := d.Db.WithContext(ctx).Model(&models.Office{}).
		Order(orderExpr + " DESC, name ASC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// TrendRows 拉取趋势窗口内的账本原始行，分桶在上层做
func (d *StatsDAO) TrendRows(ctx context.Context, officeID int64, since time.Time) ([]*models.OfficeVote, error) {
	q := d.Db.WithContext(ctx).Model(&models.OfficeVote{}).
		Where("created_at >= ?", since)
	if officeID > 0 {
		q = q.Where("office_id = ?", officeID)
	}

	var rows []*models.OfficeVote
	err := q.Order("created_at ASC").Find(&rows).Error
	return rows, err
}
