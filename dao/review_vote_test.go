package dao

import (
	"Civix/models"
	"context"
	"testing"
)

func TestReviewVoteCast(t *testing.T) {
	db := openTestDB(t)
	d := NewReviewVoteDAO(db)
	ctx := context.Background()
	seedOffice(t, db, 1, "office-a")
	review := seedReview(t, db, 1, models.ReviewStatusApproved)

	vote, changed, err := d.Cast(ctx, review.ID, 7, models.ReviewVoteHelpful)
	if err != nil {
		t.Fatalf("cast: %v", err)
	}
	if !changed {
		t.Fatal("first cast should report changed")
	}
	if vote.Kind != models.ReviewVoteHelpful {
		t.Fatalf("kind = %s", vote.Kind)
	}

	// 同 kind 重复投票幂等
	again, changed, err := d.Cast(ctx, review.ID, 7, models.ReviewVoteHelpful)
	if err != nil {
		t.Fatalf("repeat cast: %v", err)
	}
	if changed {
		t.Fatal("repeat cast should be a no-op")
	}
	if again.ID != vote.ID {
		t.Fatalf("repeat cast created a new row: %d != %d", again.ID, vote.ID)
	}
}

func TestReviewVoteCast_SwitchKind(t *testing.T) {
	db := openTestDB(t)
	d := NewReviewVoteDAO(db)
	ctx := context.Background()
	seedOffice(t, db, 1, "office-a")
	review := seedReview(t, db, 1, models.ReviewStatusApproved)

	if _, _, err := d.Cast(ctx, review.ID, 7, models.ReviewVoteHelpful); err != nil {
		t.Fatalf("cast: %v", err)
	}
	_, changed, err := d.Cast(ctx, review.ID, 7, models.ReviewVoteFlag)
	if err != nil {
		t.Fatalf("switch cast: %v", err)
	}
	if !changed {
		t.Fatal("switching kind should report changed")
	}

	// 改票是原地更新，同一 (review, user) 始终只有一行
	var total int64
	if err := db.Model(&models.ReviewVote{}).Where("review_id = ? AND user_id = ?", review.ID, 7).Count(&total).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected single ledger row, got %d", total)
	}

	got, err := d.GetByReviewUser(ctx, review.ID, 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Kind != models.ReviewVoteFlag {
		t.Fatalf("kind = %s, want flag", got.Kind)
	}
}

func TestReviewVoteRetract(t *testing.T) {
	db := openTestDB(t)
	d := NewReviewVoteDAO(db)
	ctx := context.Background()
	seedOffice(t, db, 1, "office-a")
	review := seedReview(t, db, 1, models.ReviewStatusApproved)

	// 不存在的票：不是错误
	removed, err := d.Retract(ctx, review.ID, 7)
	if err != nil {
		t.Fatalf("retract absent: %v", err)
	}
	if removed {
		t.Fatal("retracting an absent vote should report false")
	}

	if _, _, err := d.Cast(ctx, review.ID, 7, models.ReviewVoteHelpful); err != nil {
		t.Fatalf("cast: %v", err)
	}
	removed, err = d.Retract(ctx, review.ID, 7)
	if err != nil {
		t.Fatalf("retract: %v", err)
	}
	if !removed {
		t.Fatal("expected retract to remove the vote")
	}
}

func TestReviewVoteCounts(t *testing.T) {
	db := openTestDB(t)
	d := NewReviewVoteDAO(db)
	ctx := context.Background()
	seedOffice(t, db, 1, "office-a")
	review := seedReview(t, db, 1, models.ReviewStatusApproved)

	for user := int64(1); user <= 3; user++ {
		if _, _, err := d.Cast(ctx, review.ID, user, models.ReviewVoteHelpful); err != nil {
			t.Fatalf("cast: %v", err)
		}
	}
	if _, _, err := d.Cast(ctx, review.ID, 4, models.ReviewVoteFlag); err != nil {
		t.Fatalf("cast flag: %v", err)
	}

	counts, err := d.Counts(ctx, review.ID)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts[models.ReviewVoteHelpful] != 3 {
		t.Fatalf("helpful = %d, want 3", counts[models.ReviewVoteHelpful])
	}
	if counts[models.ReviewVoteFlag] != 1 {
		t.Fatalf("flag = %d, want 1", counts[models.ReviewVoteFlag])
	}
	// 没有票的 kind 也要在结果里，值为 0
	if v, ok := counts[models.ReviewVoteNotHelpful]; !ok || v != 0 {
		t.Fatalf("not_helpful = %d (present=%v), want 0", v, ok)
	}
}

func TestFlaggedReviews_Order(t *testing.T) {
	db := openTestDB(t)
	d := NewReviewVoteDAO(db)
	ctx := context.Background()
	seedOffice(t, db, 1, "office-a")
	r1 := seedReview(t, db, 1, models.ReviewStatusFlagged)
	r2 := seedReview(t, db, 2, models.ReviewStatusFlagged)

	// r2 两票举报，r1 一票
	if _, _, err := d.Cast(ctx, r1.ID, 1, models.ReviewVoteFlag); err != nil {
		t.Fatalf("cast: %v", err)
	}
	for user := int64(1); user <= 2; user++ {
		if _, _, err := d.Cast(ctx, r2.ID, user, models.ReviewVoteFlag); err != nil {
			t.Fatalf("cast: %v", err)
		}
	}

	rows, err := d.FlaggedReviews(ctx, models.ReviewStatusFlagged, 10, 0)
	if err != nil {
		t.Fatalf("flagged reviews: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].ReviewID != r2.ID || rows[0].FlagCount != 2 {
		t.Fatalf("first row = review %d flags %d, want review %d flags 2", rows[0].ReviewID, rows[0].FlagCount, r2.ID)
	}
	if rows[1].ReviewID != r1.ID {
		t.Fatalf("second row = review %d, want %d", rows[1].ReviewID, r1.ID)
	}
}
