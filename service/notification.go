package service

import (
	"Civix/dao"
	"Civix/models"
	"Civix/pkg/log"
	"Civix/types"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"
)

var _ INotificationService = (*NotificationService)(nil)

// NotifyKind 通知模板类型
type NotifyKind string

const (
	NotifyReviewFlagged  NotifyKind = "review_flagged"
	NotifyReviewApproved NotifyKind = "review_approved"
	NotifyReviewRemoved  NotifyKind = "review_removed"
	NotifyReviewResolved NotifyKind = "review_resolved"
)

// UnreadCache 未读计数缓存，Get 未命中返回 -1
type UnreadCache interface {
	Incr(ctx context.Context, uid int64)
	Get(ctx context.Context, uid int64) int64
	Set(ctx context.Context, uid int64, count int64)
	Reset(ctx context.Context, uid int64)
}

type INotificationService interface {
	Notify(ctx context.Context, author models.Author, kind NotifyKind, refKind string, refID int64, flagCount int64) (*models.Notification, error)
	List(ctx context.Context, userID int64, page, pageSize int) (*types.ListNotificationsResponse, error)
	UnreadCount(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, userID int64, notifyID uint64) error
	MarkAllRead(ctx context.Context, userID int64) error
	Delete(ctx context.Context, userID int64, notifyID uint64) error
}

type NotificationService struct {
	NotifyDAO *dao.NotificationDAO
	Unread    UnreadCache
	Events    IEventPublisher
}

// Notify 给评价作者发站内通知
// 匿名作者没有可通知对象，静默跳过，返回 (nil, nil) 而不是错误
func (s *NotificationService) Notify(ctx context.Context, author models.Author, kind NotifyKind, refKind string, refID int64, flagCount int64) (*models.Notification, error) {
	if !author.Known {
		return nil, nil
	}

	title, body, severity := renderNotify(kind, flagCount)
	notify := &models.Notification{
		UserID:    author.ID,
		Title:     title,
		Body:      body,
		Severity:  severity,
		RefKind:   refKind,
		RefID:     refID,
		CreatedAt: time.Now(),
	}
	if err := s.NotifyDAO.Create(ctx, notify); err != nil {
		return nil, err
	}

	s.Unread.Incr(ctx, author.ID)
	s.publishAsync(kind, author.ID, refKind, refID, flagCount)
	return notify, nil
}

// publishAsync 异步投递审核事件，不阻塞也不影响主流程
func (s *NotificationService) publishAsync(kind NotifyKind, userID int64, refKind string, refID int64, flagCount int64) {
	payload, _ := json.Marshal(map[string]any{
		"kind":       kind,
		"user_id":    userID,
		"ref_kind":   refKind,
		"ref_id":     refID,
		"flag_count": flagCount,
		"emitted_at": time.Now().Format(time.RFC3339),
	})

	go func() {
		var pc panics.Catcher
		pc.Try(func() {
			if err := s.Events.Publish(TopicModerationEvents, payload); err != nil {
				log.L.Warn("publish moderation event", zap.Error(err))
			}
		})
		if r := pc.Recovered(); r != nil {
			log.L.Error("moderation event publisher panic", zap.String("panic", r.String()))
		}
	}()
}

func (s *NotificationService) List(ctx context.Context, userID int64, page, pageSize int) (*types.ListNotificationsResponse, error) {
	limit, offset := pageToLimit(page, pageSize)
	items, total, err := s.NotifyDAO.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	rep := &types.ListNotificationsResponse{
		Items: make([]*types.NotificationItem, 0, len(items)),
		Total: total,
	}
	for _, n := range items {
		rep.Items = append(rep.Items, &types.NotificationItem{
			ID:        n.ID,
			Title:     n.Title,
			Body:      n.Body,
			Severity:  string(n.Severity),
			RefKind:   n.RefKind,
			RefID:     n.RefID,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}
	return rep, nil
}

// UnreadCount 未读数优先走缓存，未命中回源通知表并回填
func (s *NotificationService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	if cached := s.Unread.Get(ctx, userID); cached >= 0 {
		return cached, nil
	}

	count, err := s.NotifyDAO.CountUnread(ctx, userID)
	if err != nil {
		return 0, err
	}
	s.Unread.Set(ctx, userID, count)
	return count, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID int64, notifyID uint64) error {
	if err := s.NotifyDAO.MarkRead(ctx, userID, notifyID); err != nil {
		return err
	}
	// 标记已读后缓存失效，下次读取回源重建
	s.Unread.Reset(ctx, userID)
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	if err := s.NotifyDAO.MarkAllRead(ctx, userID); err != nil {
		return err
	}
	s.Unread.Reset(ctx, userID)
	return nil
}

func (s *NotificationService) Delete(ctx context.Context, userID int64, notifyID uint64) error {
	if err := s.NotifyDAO.Delete(ctx, userID, notifyID); err != nil {
		return err
	}
	s.Unread.Reset(ctx, userID)
	return nil
}

func renderNotify(kind NotifyKind, flagCount int64) (title, body string, severity models.NotifySeverity) {
	switch kind {
	case NotifyReviewFlagged:
		return "您的评价已转入人工审核",
			fmt.Sprintf("您的评价累计收到 %d 次举报，已暂时转入人工审核，审核结果会另行通知。", flagCount),
			models.NotifyWarning
	case NotifyReviewApproved:
		return "您的评价已通过复核",
			"经人工复核，您的评价不存在违规内容，已恢复正常展示。",
			models.NotifySuccess
	case NotifyReviewRemoved:
		return "您的评价已被移除",
			"经人工复核，您的评价违反社区规范，已被移除。",
			models.NotifyError
	default:
		return "您的评价举报已处理",
			"针对您的评价的举报已处理完结。",
			models.NotifyInfo
	}
}
