package service

import (
	"Civix/dao"
	"Civix/models"
	"Civix/pkg/response"
	"Civix/types"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var _ IStatsService = (*StatsService)(nil)

type IStatsService interface {
	UserVoteStats(ctx context.Context, userID int64) (*types.UserVoteStats, error)
	TopOffices(ctx context.Context, rankBy string, limit int) ([]*types.OfficeItem, error)
	VoteTrends(ctx context.Context, officeCode, period string, limit int) ([]*types.TrendBucket, error)
}

type StatsService struct {
	StatsDAO  *dao.StatsDAO
	OfficeDAO *dao.OfficeDAO
}

func (s *StatsService) UserVoteStats(ctx context.Context, userID int64) (*types.UserVoteStats, error) {
	reviewCounts, err := s.StatsDAO.UserReviewVoteCounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	officeCounts, err := s.StatsDAO.UserOfficeVoteCounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	reviewIDs, err := s.StatsDAO.VotedReviewIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	officeIDs, err := s.StatsDAO.VotedOfficeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &types.UserVoteStats{
		ReviewVotes:    make(map[string]int64, len(reviewCounts)),
		OfficeVotes:    make(map[string]int64, len(officeCounts)),
		VotedReviewIDs: reviewIDs,
		VotedOfficeIDs: officeIDs,
	}
	for k, v := range reviewCounts {
		stats.ReviewVotes[string(k)] = v
	}
	for k, v := range officeCounts {
		stats.OfficeVotes[string(k)] = v
	}
	return stats, nil
}

// TopOffices 机构排行，读缓存计数列，同分按名称升序
func (s *StatsService) TopOffices(ctx context.Context, rankBy string, limit int) ([]*types.OfficeItem, error) {
	var orderExpr string
	switch rankBy {
	case types.RankByUpvote:
		orderExpr = "upvote_count"
	case types.RankByDownvote:
		orderExpr = "downvote_count"
	case types.RankByTotal:
		orderExpr = "(upvote_count + downvote_count)"
	default:
		return nil, response.NewError(400, "未知的排行维度")
	}
	if limit <= 0 || limit > types.MaxPageSize {
		limit = types.DefaultPageSize
	}

	offices, err := s.StatsDAO.TopOffices(ctx, orderExpr, limit)
	if err != nil {
		return nil, err
	}

	items := make([]*types.OfficeItem, 0, len(offices))
	for _, o := range offices {
		items = append(items, toOfficeItem(o))
	}
	return items, nil
}

// VoteTrends 按周期分桶的投票趋势，最旧的桶在前，只保留最近 limit 个
// 分桶在 Go 侧做，避免各数据库时间函数不兼容
func (s *StatsService) VoteTrends(ctx context.Context, officeCode, period string, limit int) ([]*types.TrendBucket, error) {
	truncate, span, err := periodTruncate(period)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > types.MaxPageSize {
		limit = types.DefaultPageSize
	}

	var officeID int64
	if officeCode != "" {
		office, err := s.OfficeDAO.FindByCode(ctx, officeCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NotFound("机构不存在")
			}
			return nil, err
		}
		officeID = office.ID
	}

	since := truncate(time.Now()).Add(-time.Duration(limit-1) * span)
	rows, err := s.StatsDAO.TrendRows(ctx, officeID, since)
	if err != nil {
		return nil, err
	}

	byBucket := make(map[time.Time]*types.TrendBucket)
	order := make([]time.Time, 0)
	for _, row := range rows {
		key := truncate(row.CreatedAt)
		b, ok := byBucket[key]
		if !ok {
			b = &types.TrendBucket{Bucket: key}
			byBucket[key] = b
			order = append(order, key) // 行按 created_at 升序，桶天然有序
		}
		switch row.Kind {
		case models.OfficeVoteUp:
			b.Upvotes++
		case models.OfficeVoteDown:
			b.Downvotes++
		}
		b.Total++
	}

	buckets := make([]*types.TrendBucket, 0, len(order))
	for _, key := range order {
		buckets = append(buckets, byBucket[key])
	}
	if len(buckets) > limit {
		buckets = buckets[len(buckets)-limit:]
	}
	return buckets, nil
}

// periodTruncate 返回周期的取整函数和跨度
// monthly 的跨度只用于估算窗口起点，取整本身按自然月
func periodTruncate(period string) (func(time.Time) time.Time, time.Duration, error) {
	switch period {
	case types.PeriodDaily:
		return func(t time.Time) time.Time {
			y, m, d := t.UTC().Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		}, 24 * time.Hour, nil
	case types.PeriodWeekly:
		return func(t time.Time) time.Time {
			t = t.UTC()
			offset := (int(t.Weekday()) + 6) % 7 // 周一为一周起点
			y, m, d := t.AddDate(0, 0, -offset).Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		}, 7 * 24 * time.Hour, nil
	case types.PeriodMonthly:
		return func(t time.Time) time.Time {
			y, m, _ := t.UTC().Date()
			return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
		}, 31 * 24 * time.Hour, nil
	default:
		return nil, 0, response.NewError(400, "未知的趋势周期")
	}
}
