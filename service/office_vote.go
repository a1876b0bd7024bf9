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

var _ IOfficeVoteService = (*OfficeVoteService)(nil)

type IOfficeVoteService interface {
	Cast(ctx context.Context, userID int64, officeCode string, kind models.OfficeVoteKind) (*types.OfficeVoteResult, error)
	Retract(ctx context.Context, userID int64, officeCode string) (*types.OfficeVoteResult, error)
	Counts(ctx context.Context, officeCode string) (*types.OfficeVoteResult, error)
}

type OfficeVoteService struct {
	OfficeDAO *dao.OfficeDAO
	VoteDAO   *dao.OfficeVoteDAO
}

// Cast 对机构投票，账本写入和计数重算在 DAO 的同一事务内完成
func (s *OfficeVoteService) Cast(ctx context.Context, userID int64, officeCode string, kind models.OfficeVoteKind) (*types.OfficeVoteResult, error) {
	if !kind.Valid() {
		return nil, response.NewError(400, "未知的投票类型")
	}

	office, err := s.findOffice(ctx, officeCode)
	if err != nil {
		return nil, err
	}

	vote, _, err := s.VoteDAO.Cast(ctx, office.ID, userID, kind)
	if err != nil {
		// 事务失败整体重试一次
		log.L.Warn("cast office vote retry", zap.Int64("office_id", office.ID), zap.Error(err))
		if vote, _, err = s.VoteDAO.Cast(ctx, office.ID, userID, kind); err != nil {
			return nil, err
		}
	}

	return s.result(ctx, office.ID, string(vote.Kind), false)
}

// Retract 撤票，不存在的票不是错误且计数不变
func (s *OfficeVoteService) Retract(ctx context.Context, userID int64, officeCode string) (*types.OfficeVoteResult, error) {
	office, err := s.findOffice(ctx, officeCode)
	if err != nil {
		return nil, err
	}

	removed, err := s.VoteDAO.Retract(ctx, office.ID, userID)
	if err != nil {
		return nil, err
	}

	return s.result(ctx, office.ID, "", removed)
}

// Counts 机构当前计数，直接读缓存列
func (s *OfficeVoteService) Counts(ctx context.Context, officeCode string) (*types.OfficeVoteResult, error) {
	office, err := s.findOffice(ctx, officeCode)
	if err != nil {
		return nil, err
	}
	return &types.OfficeVoteResult{
		UpvoteCount:   office.UpvoteCount,
		DownvoteCount: office.DownvoteCount,
	}, nil
}

// result 重新读缓存列，返回的计数一定是本次事务提交后的值
func (s *OfficeVoteService) result(ctx context.Context, officeID int64, kind string, retracted bool) (*types.OfficeVoteResult, error) {
	office, err := s.OfficeDAO.FindById(ctx, officeID)
	if err != nil {
		return nil, err
	}
	return &types.OfficeVoteResult{
		Kind:          kind,
		Retracted:     retracted,
		UpvoteCount:   office.UpvoteCount,
		DownvoteCount: office.DownvoteCount,
	}, nil
}

func (s *OfficeVoteService) findOffice(ctx context.Context, code string) (*models.Office, error) {
	office, err := s.OfficeDAO.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("机构不存在")
		}
		return nil, err
	}
	return office, nil
}
