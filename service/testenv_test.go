package service

import (
	"Civix/config"
	"Civix/dao"
	"Civix/models"
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.Users{},
		&models.Office{},
		&models.Review{},
		&models.ReviewVote{},
		&models.OfficeVote{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// fakeUnread 内存版未读计数，Get 未命中返回 -1
type fakeUnread struct {
	counts map[int64]int64
}

func newFakeUnread() *fakeUnread {
	return &fakeUnread{counts: map[int64]int64{}}
}

func (f *fakeUnread) Incr(_ context.Context, uid int64) { f.counts[uid]++ }

func (f *fakeUnread) Get(_ context.Context, uid int64) int64 {
	if v, ok := f.counts[uid]; ok {
		return v
	}
	return -1
}

func (f *fakeUnread) Set(_ context.Context, uid int64, count int64) { f.counts[uid] = count }
func (f *fakeUnread) Reset(_ context.Context, uid int64)            { delete(f.counts, uid) }

type testEnv struct {
	db         *gorm.DB
	unread     *fakeUnread
	notify     *NotificationService
	moderation *ModerationService
	reviewVote *ReviewVoteService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := openTestDB(t)
	unread := newFakeUnread()

	notify := &NotificationService{
		NotifyDAO: dao.NewNotificationDAO(db),
		Unread:    unread,
		Events:    NewEventPublisher(nil),
	}
	moderation := &ModerationService{
		ReviewDAO: dao.NewReviewDAO(db),
		VoteDAO:   dao.NewReviewVoteDAO(db),
		Notify:    notify,
		Conf:      config.DefaultModeration(),
	}
	reviewVote := &ReviewVoteService{
		ReviewDAO:  dao.NewReviewDAO(db),
		VoteDAO:    dao.NewReviewVoteDAO(db),
		Moderation: moderation,
	}
	return &testEnv{
		db:         db,
		unread:     unread,
		notify:     notify,
		moderation: moderation,
		reviewVote: reviewVote,
	}
}

func (e *testEnv) seedOffice(t *testing.T, id int64, name string) *models.Office {
	t.Helper()
	office := &models.Office{ID: id, Code: name, Name: name}
	if err := e.db.Create(office).Error; err != nil {
		t.Fatalf("seed office: %v", err)
	}
	return office
}

func (e *testEnv) seedReview(t *testing.T, code string, author models.Author, status models.ReviewStatus) *models.Review {
	t.Helper()
	review := &models.Review{
		ID:       int64(len(code))*1000 + int64(code[len(code)-1]),
		Code:     code,
		OfficeID: 1,
		Author:   author,
		Rating:   4,
		Status:   status,
	}
	if err := e.db.Create(review).Error; err != nil {
		t.Fatalf("seed review: %v", err)
	}
	return review
}

func (e *testEnv) notificationCount(t *testing.T) int64 {
	t.Helper()
	var total int64
	if err := e.db.Model(&models.Notification{}).Count(&total).Error; err != nil {
		t.Fatalf("count notifications: %v", err)
	}
	return total
}

func (e *testEnv) reviewStatus(t *testing.T, id int64) models.ReviewStatus {
	t.Helper()
	var review models.Review
	if err := e.db.First(&review, "id = ?", id).Error; err != nil {
		t.Fatalf("load review: %v", err)
	}
	return review.Status
}
