package service

import (
	"Civix/dao"
	"Civix/models"
	"context"
	"testing"
	"time"
)

func newStatsService(env *testEnv) *StatsService {
	return &StatsService{
		StatsDAO:  dao.NewStatsDAO(env.db),
		OfficeDAO: dao.NewOfficeDAO(env.db),
	}
}

func (e *testEnv) seedOfficeVote(t *testing.T, officeID, userID int64, kind models.OfficeVoteKind, at time.Time) {
	t.Helper()
	vote := &models.OfficeVote{
		OfficeID:  officeID,
		UserID:    userID,
		Kind:      kind,
		CreatedAt: at,
		UpdatedAt: at,
	}
	if err := e.db.Create(vote).Error; err != nil {
		t.Fatalf("seed office vote: %v", err)
	}
}

func TestTopOffices_NameTiebreak(t *testing.T) {
	env := newTestEnv(t)
	svc := newStatsService(env)

	// 同票数的机构按名称升序
	for i, name := range []string{"delta", "alpha", "carol"} {
		office := &models.Office{ID: int64(i + 1), Code: name, Name: name, UpvoteCount: 5}
		if err := env.db.Create(office).Error; err != nil {
			t.Fatalf("seed office: %v", err)
		}
	}
	leader := &models.Office{ID: 10, Code: "zeta", Name: "zeta", UpvoteCount: 9}
	if err := env.db.Create(leader).Error; err != nil {
		t.Fatalf("seed office: %v", err)
	}

	items, err := svc.TopOffices(context.Background(), "upvote", 10)
	if err != nil {
		t.Fatalf("top offices: %v", err)
	}
	want := []string{"zeta", "alpha", "carol", "delta"}
	if len(items) != len(want) {
		t.Fatalf("items = %d, want %d", len(items), len(want))
	}
	for i, name := range want {
		if items[i].Name != name {
			t.Fatalf("rank %d = %s, want %s", i, items[i].Name, name)
		}
	}
}

func TestTopOffices_RankByTotal(t *testing.T) {
	env := newTestEnv(t)
	svc := newStatsService(env)

	// a: 3+0, b: 1+4 → total 榜 b 在前，upvote 榜 a 在前
	a := &models.Office{ID: 1, Code: "a", Name: "a", UpvoteCount: 3}
	b := &models.Office{ID: 2, Code: "b", Name: "b", UpvoteCount: 1, DownvoteCount: 4}
	for _, o := range []*models.Office{a, b} {
		if err := env.db.Create(o).Error; err != nil {
			t.Fatalf("seed office: %v", err)
		}
	}

	items, err := svc.TopOffices(context.Background(), "total", 10)
	if err != nil {
		t.Fatalf("top offices: %v", err)
	}
	if items[0].Name != "b" {
		t.Fatalf("total rank first = %s, want b", items[0].Name)
	}

	items, err = svc.TopOffices(context.Background(), "upvote", 10)
	if err != nil {
		t.Fatalf("top offices: %v", err)
	}
	if items[0].Name != "a" {
		t.Fatalf("upvote rank first = %s, want a", items[0].Name)
	}
}

func TestTopOffices_UnknownRank(t *testing.T) {
	env := newTestEnv(t)
	svc := newStatsService(env)

	if _, err := svc.TopOffices(context.Background(), "charisma", 10); err == nil {
		t.Fatal("expected error for unknown rank dimension")
	}
}

func TestVoteTrends_DailyOrder(t *testing.T) {
	env := newTestEnv(t)
	svc := newStatsService(env)
	office := env.seedOffice(t, 1, "office-a")

	now := time.Now().UTC()
	// 前天 1 up，昨天 2 down，今天 1 up 1 down
	env.seedOfficeVote(t, office.ID, 1, models.OfficeVoteUp, now.AddDate(0, 0, -2))
	env.seedOfficeVote(t, office.ID, 2, models.OfficeVoteDown, now.AddDate(0, 0, -1))
	env.seedOfficeVote(t, office.ID, 3, models.OfficeVoteDown, now.AddDate(0, 0, -1))
	env.seedOfficeVote(t, office.ID, 4, models.OfficeVoteUp, now)
	env.seedOfficeVote(t, office.ID, 5, models.OfficeVoteDown, now)

	buckets, err := svc.VoteTrends(context.Background(), office.Code, "daily", 7)
	if err != nil {
		t.Fatalf("vote trends: %v", err)
	}
	if len(buckets) != 3 {
		t.Fatalf("buckets = %d, want 3", len(buckets))
	}

	// 最旧的桶在前
	for i := 1; i < len(buckets); i++ {
		if !buckets[i-1].Bucket.Before(buckets[i].Bucket) {
			t.Fatalf("buckets not oldest-first: %v then %v", buckets[i-1].Bucket, buckets[i].Bucket)
		}
	}
	if buckets[0].Upvotes != 1 || buckets[0].Total != 1 {
		t.Fatalf("oldest bucket = %+v", buckets[0])
	}
	if buckets[1].Downvotes != 2 || buckets[1].Total != 2 {
		t.Fatalf("middle bucket = %+v", buckets[1])
	}
	if buckets[2].Upvotes != 1 || buckets[2].Downvotes != 1 || buckets[2].Total != 2 {
		t.Fatalf("latest bucket = %+v", buckets[2])
	}
}

func TestVoteTrends_LimitKeepsRecent(t *testing.T) {
	env := newTestEnv(t)
	svc := newStatsService(env)
	office := env.seedOffice(t, 1, "office-a")

	now := time.Now().UTC()
	for d := 0; d < 5; d++ {
		env.seedOfficeVote(t, office.ID, int64(d+1), models.OfficeVoteUp, now.AddDate(0, 0, -d))
	}

	buckets, err := svc.VoteTrends(context.Background(), office.Code, "daily", 2)
	if err != nil {
		t.Fatalf("vote trends: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("buckets = %d, want 2", len(buckets))
	}
	// 保留的是最近的两个桶
	wantLatest := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !buckets[1].Bucket.Equal(wantLatest) {
		t.Fatalf("latest bucket = %v, want %v", buckets[1].Bucket, wantLatest)
	}
}

func TestVoteTrends_MissingOffice(t *testing.T) {
	env := newTestEnv(t)
	svc := newStatsService(env)

	if _, err := svc.VoteTrends(context.Background(), "nope", "daily", 7); err == nil {
		t.Fatal("expected error for unknown office")
	}
}

func TestUserVoteStats(t *testing.T) {
	env := newTestEnv(t)
	svc := newStatsService(env)
	ctx := context.Background()
	env.seedOffice(t, 1, "office-a")
	review := env.seedReview(t, "rev-a", models.AuthorUser(100), models.ReviewStatusApproved)

	if _, err := env.reviewVote.Cast(ctx, 7, review.Code, models.ReviewVoteHelpful); err != nil {
		t.Fatalf("cast review vote: %v", err)
	}
	env.seedOfficeVote(t, 1, 7, models.OfficeVoteUp, time.Now())

	stats, err := svc.UserVoteStats(ctx, 7)
	if err != nil {
		t.Fatalf("user vote stats: %v", err)
	}
	if stats.ReviewVotes["helpful"] != 1 {
		t.Fatalf("review helpful = %d, want 1", stats.ReviewVotes["helpful"])
	}
	if stats.OfficeVotes["upvote"] != 1 {
		t.Fatalf("office upvote = %d, want 1", stats.OfficeVotes["upvote"])
	}
	if len(stats.VotedReviewIDs) != 1 || stats.VotedReviewIDs[0] != review.ID {
		t.Fatalf("voted review ids = %v", stats.VotedReviewIDs)
	}
	if len(stats.VotedOfficeIDs) != 1 || stats.VotedOfficeIDs[0] != 1 {
		t.Fatalf("voted office ids = %v", stats.VotedOfficeIDs)
	}
}
