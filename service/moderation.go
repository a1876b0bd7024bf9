package service

import (
	"Civix/config"
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

var _ IModerationService = (*ModerationService)(nil)

type IModerationService interface {
	OnFlagCast(ctx context.Context, review *models.Review) (models.ReviewStatus, error)
	Moderate(ctx context.Context, reviewCode string, action string) (*types.ModerateReviewResponse, error)
	FlaggedReviews(ctx context.Context, status string, page, pageSize int) ([]*types.FlaggedReview, error)
}

// ModerationService 评价状态机
// 状态流转只认 transitions 表，不在各处散落 status 比较
type ModerationService struct {
	ReviewDAO *dao.ReviewDAO
	VoteDAO   *dao.ReviewVoteDAO
	Notify    INotificationService
	Conf      *config.ModerationConfig
}

// transitions 允许的状态流转
// removed 是终态，不出现在任何 from 里
var transitions = map[models.ReviewStatus][]models.ReviewStatus{
	models.ReviewStatusPending:  {models.ReviewStatusApproved, models.ReviewStatusRemoved},
	models.ReviewStatusApproved: {models.ReviewStatusFlagged},
	models.ReviewStatusResolved: {models.ReviewStatusFlagged},
	models.ReviewStatusFlagged: {
		models.ReviewStatusApproved,
		models.ReviewStatusRemoved,
		models.ReviewStatusResolved,
	},
}

func canTransition(from, to models.ReviewStatus) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// OnFlagCast 举报票落账后的自动流转检查
// 只在阈值穿越沿触发一次：已是 flagged 的评价不会重复通知
func (s *ModerationService) OnFlagCast(ctx context.Context, review *models.Review) (models.ReviewStatus, error) {
	count, err := s.VoteDAO.FlagCount(ctx, review.ID)
	if err != nil {
		return review.Status, err
	}
	if count < int64(s.Conf.FlagThreshold) {
		return review.Status, nil
	}
	if !canTransition(review.Status, models.ReviewStatusFlagged) {
		return review.Status, nil
	}

	swapped, err := s.ReviewDAO.TransitionStatus(ctx, review.ID, review.Status, models.ReviewStatusFlagged)
	if err != nil {
		return review.Status, err
	}
	// 并发举报同时穿越阈值时，CAS 失败的一方不再重复通知
	if !swapped {
		return models.ReviewStatusFlagged, nil
	}

	// 通知失败不回滚状态流转，只记日志
	if _, err := s.Notify.Notify(ctx, review.Author, NotifyReviewFlagged, models.NotifyRefReview, review.ID, count); err != nil {
		log.L.Error("notify review author", zap.Int64("review_id", review.ID), zap.Error(err))
	}
	return models.ReviewStatusFlagged, nil
}

// Moderate 管理员处置举报：approve / remove / resolve
func (s *ModerationService) Moderate(ctx context.Context, reviewCode string, action string) (*types.ModerateReviewResponse, error) {
	target, kind, ok := actionTarget(action)
	if !ok {
		return nil, response.NewError(400, "未知的处置动作")
	}

	review, err := s.ReviewDAO.FindByCode(ctx, reviewCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("评价不存在")
		}
		return nil, err
	}

	if !canTransition(review.Status, target) {
		return nil, response.Conflict("当前状态不允许该处置")
	}

	swapped, err := s.ReviewDAO.TransitionStatus(ctx, review.ID, review.Status, target)
	if err != nil {
		return nil, err
	}
	if !swapped {
		return nil, response.Conflict("评价状态已变化，请刷新后重试")
	}

	// 只有从 flagged 出来的处置需要通知作者
	if review.Status == models.ReviewStatusFlagged {
		if _, err := s.Notify.Notify(ctx, review.Author, kind, models.NotifyRefReview, review.ID, 0); err != nil {
			log.L.Error("notify review author", zap.Int64("review_id", review.ID), zap.Error(err))
		}
	}

	return &types.ModerateReviewResponse{
		Code:   review.Code,
		Status: string(target),
	}, nil
}

func (s *ModerationService) FlaggedReviews(ctx context.Context, status string, page, pageSize int) ([]*types.FlaggedReview, error) {
	limit, offset := pageToLimit(page, pageSize)
	return s.VoteDAO.FlaggedReviews(ctx, models.ReviewStatus(status), limit, offset)
}

func actionTarget(action string) (models.ReviewStatus, NotifyKind, bool) {
	switch action {
	case "approve":
		return models.ReviewStatusApproved, NotifyReviewApproved, true
	case "remove":
		return models.ReviewStatusRemoved, NotifyReviewRemoved, true
	case "resolve":
		return models.ReviewStatusResolved, NotifyReviewResolved, true
	}
	return "", "", false
}
