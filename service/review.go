package service

import (
	"Civix/config"
	"Civix/dao"
	"Civix/models"
	"Civix/pkg/response"
	"Civix/pkg/snowflake"
	"Civix/pkg/utils"
	"Civix/types"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var _ IReviewService = (*ReviewService)(nil)

type IReviewService interface {
	Create(ctx context.Context, userID int64, req *types.CreateReviewRequest) (*types.ReviewItem, error)
	ListByOffice(ctx context.Context, officeCode string, page, pageSize int) (*types.ListReviewsResponse, error)
	GetByCode(ctx context.Context, code string) (*types.ReviewItem, error)
}

type ReviewService struct {
	ReviewDAO *dao.ReviewDAO
	OfficeDAO *dao.OfficeDAO
	Config    *config.Config
}

// Create 创建评价
// 匿名评价不落作者，后续任何审核通知都会静默跳过
func (s *ReviewService) Create(ctx context.Context, userID int64, req *types.CreateReviewRequest) (*types.ReviewItem, error) {
	office, err := s.OfficeDAO.FindByCode(ctx, req.OfficeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("机构不存在")
		}
		return nil, err
	}

	author := models.AuthorUser(userID)
	if req.Anonymous {
		author = models.Anonymous()
	}

	id := snowflake.GenID()
	review := &models.Review{
		ID:        id,
		Code:      utils.GenHashID(s.Config.App.HashSalt, id),
		OfficeID:  office.ID,
		Author:    author,
		Rating:    req.Rating,
		Content:   req.Content,
		PhotoKey:  req.PhotoKey,
		Status:    s.initialStatus(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.ReviewDAO.Create(ctx, review); err != nil {
		return nil, err
	}
	return toReviewItem(review), nil
}

func (s *ReviewService) ListByOffice(ctx context.Context, officeCode string, page, pageSize int) (*types.ListReviewsResponse, error) {
	office, err := s.OfficeDAO.FindByCode(ctx, officeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("机构不存在")
		}
		return nil, err
	}

	limit, offset := pageToLimit(page, pageSize)
	items, total, err := s.ReviewDAO.ListByOffice(ctx, office.ID, limit, offset)
	if err != nil {
		return nil, err
	}

	rep := &types.ListReviewsResponse{
		Items: make([]*types.ReviewItem, 0, len(items)),
		Total: total,
	}
	for _, r := range items {
		rep.Items = append(rep.Items, toReviewItem(r))
	}
	return rep, nil
}

func (s *ReviewService) GetByCode(ctx context.Context, code string) (*types.ReviewItem, error) {
	review, err := s.ReviewDAO.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("评价不存在")
		}
		return nil, err
	}
	return toReviewItem(review), nil
}

// initialStatus 新评价初始状态由目录策略配置决定
func (s *ReviewService) initialStatus() models.ReviewStatus {
	if s.Config.Moderation != nil && s.Config.Moderation.InitialStatus == string(models.ReviewStatusPending) {
		return models.ReviewStatusPending
	}
	return models.ReviewStatusApproved
}

func toReviewItem(r *models.Review) *types.ReviewItem {
	item := &types.ReviewItem{
		Code:      r.Code,
		OfficeID:  r.OfficeID,
		Rating:    r.Rating,
		Content:   r.Content,
		PhotoKey:  r.PhotoKey,
		Status:    string(r.Status),
		Anonymous: !r.Author.Known,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
	if r.Author.Known {
		item.AuthorID = r.Author.ID
	}
	return item
}
