package service

import (
	"Civix/dao"
	"Civix/models"
	"Civix/pkg/log"
	"Civix/pkg/response"
	"Civix/types"
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IReviewVoteService = (*ReviewVoteService)(nil)

type IReviewVoteService interface {
	Cast(ctx context.Context, userID int64, reviewCode string, kind models.ReviewVoteKind) (*types.ReviewVoteResult, error)
	Retract(ctx context.Context, userID int64, reviewCode string) (*types.ReviewVoteResult, error)
	Counts(ctx context.Context, reviewCode string) (*types.ReviewVoteResult, error)
}

type ReviewVoteService struct {
	ReviewDAO  *dao.ReviewDAO
	VoteDAO    *dao.ReviewVoteDAO
	Moderation IModerationService
}

// Cast 对评价投票
// 同 kind 重复投票幂等返回现有记录；removed 的评价不再接受投票
func (s *ReviewVoteService) Cast(ctx context.Context, userID int64, reviewCode string, kind models.ReviewVoteKind) (*types.ReviewVoteResult, error) {
	if !kind.Valid() {
		return nil, response.NewError(400, "未知的投票类型")
	}

	review, err := s.findReview(ctx, reviewCode)
	if err != nil {
		return nil, err
	}
	if review.Status == models.ReviewStatusRemoved {
		return nil, response.Conflict("评价已被移除，不再接受投票")
	}

	vote, changed, err := s.VoteDAO.Cast(ctx, review.ID, userID, kind)
	if err != nil {
		// 事务失败整体重试一次
		log.L.Warn("cast review vote retry", zap.Int64("review_id", review.ID), zap.Error(err))
		if vote, changed, err = s.VoteDAO.Cast(ctx, review.ID, userID, kind); err != nil {
			return nil, err
		}
	}

	status := review.Status
	if changed && kind == models.ReviewVoteFlag {
		// 状态流转失败不吞掉投票结果：票已落账，下一次举报会再触发
		if next, err := s.Moderation.OnFlagCast(ctx, review); err != nil {
			log.L.Error("moderation gate", zap.Int64("review_id", review.ID), zap.Error(err))
		} else {
			status = next
		}
	}

	counts, err := s.VoteDAO.Counts(ctx, review.ID)
	if err != nil {
		return nil, err
	}

	return &types.ReviewVoteResult{
		Kind:         string(vote.Kind),
		Counts:       countsToMap(counts),
		ReviewStatus: string(status),
	}, nil
}

// Retract 撤票，不存在的票不是错误
func (s *ReviewVoteService) Retract(ctx context.Context, userID int64, reviewCode string) (*types.ReviewVoteResult, error) {
	review, err := s.findReview(ctx, reviewCode)
	if err != nil {
		return nil, err
	}

	removed, err := s.VoteDAO.Retract(ctx, review.ID, userID)
	if err != nil {
		return nil, err
	}

	counts, err := s.VoteDAO.Counts(ctx, review.ID)
	if err != nil {
		return nil, err
	}

	return &types.ReviewVoteResult{
		Retracted:    removed,
		Counts:       countsToMap(counts),
		ReviewStatus: string(review.Status),
	}, nil
}

// Counts 评价当前票数，公开接口
func (s *ReviewVoteService) Counts(ctx context.Context, reviewCode string) (*types.ReviewVoteResult, error) {
	review, err := s.findReview(ctx, reviewCode)
	if err != nil {
		return nil, err
	}

	counts, err := s.VoteDAO.Counts(ctx, review.ID)
	if err != nil {
		return nil, err
	}

	return &types.ReviewVoteResult{
		Counts:       countsToMap(counts),
		ReviewStatus: string(review.Status),
	}, nil
}

func (s *ReviewVoteService) findReview(ctx context.Context, code string) (*models.Review, error) {
	review, err := s.ReviewDAO.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("评价不存在")
		}
		return nil, err
	}
	return review, nil
}

func countsToMap(counts map[models.ReviewVoteKind]int64) map[string]int64 {
	m := make(map[string]int64, len(counts))
	for k, v := range counts {
		m[string(k)] = v
	}
	return m
}
