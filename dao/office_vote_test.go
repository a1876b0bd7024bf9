package dao

import (
	"Civix/models"
	"context"
	"testing"

	"gorm.io/gorm"
)

func officeCounters(t *testing.T, db *gorm.DB, officeID int64) (up, down int64) {
	t.Helper()
	var office models.Office
	if err := db.First(&office, "id = ?", officeID).Error; err != nil {
		t.Fatalf("load office: %v", err)
	}
	return office.UpvoteCount, office.DownvoteCount
}

func ledgerCounters(t *testing.T, db *gorm.DB, officeID int64) (up, down int64) {
	t.Helper()
	if err := db.Model(&models.OfficeVote{}).
		Where("office_id = ? AND kind = ?", officeID, models.OfficeVoteUp).Count(&up).Error; err != nil {
		t.Fatalf("count up: %v", err)
	}
	if err := db.Model(&models.OfficeVote{}).
		Where("office_id = ? AND kind = ?", officeID, models.OfficeVoteDown).Count(&down).Error; err != nil {
		t.Fatalf("count down: %v", err)
	}
	return up, down
}

// 每次提交后缓存计数都必须等于账本聚合
func assertCountersMatch(t *testing.T, db *gorm.DB, officeID int64) {
	t.Helper()
	cachedUp, cachedDown := officeCounters(t, db, officeID)
	realUp, realDown := ledgerCounters(t, db, officeID)
	if cachedUp != realUp || cachedDown != realDown {
		t.Fatalf("counters drifted: cached (%d,%d), ledger (%d,%d)", cachedUp, cachedDown, realUp, realDown)
	}
}

func TestOfficeVoteCast_Toggle(t *testing.T) {
	db := openTestDB(t)
	d := NewOfficeVoteDAO(db)
	ctx := context.Background()
	office := seedOffice(t, db, 1, "office-a")

	if _, _, err := d.Cast(ctx, office.ID, 7, models.OfficeVoteUp); err != nil {
		t.Fatalf("cast up: %v", err)
	}
	assertCountersMatch(t, db, office.ID)
	if up, down := officeCounters(t, db, office.ID); up != 1 || down != 0 {
		t.Fatalf("counters = (%d,%d), want (1,0)", up, down)
	}

	// 改票：up -> down，行数不变
	if _, changed, err := d.Cast(ctx, office.ID, 7, models.OfficeVoteDown); err != nil || !changed {
		t.Fatalf("toggle: changed=%v err=%v", changed, err)
	}
	assertCountersMatch(t, db, office.ID)
	if up, down := officeCounters(t, db, office.ID); up != 0 || down != 1 {
		t.Fatalf("counters = (%d,%d), want (0,1)", up, down)
	}

	// 同方向重复：账本与计数都不动
	if _, changed, err := d.Cast(ctx, office.ID, 7, models.OfficeVoteDown); err != nil || changed {
		t.Fatalf("repeat: changed=%v err=%v", changed, err)
	}
	assertCountersMatch(t, db, office.ID)
}

func TestOfficeVoteCast_MultipleUsers(t *testing.T) {
	db := openTestDB(t)
	d := NewOfficeVoteDAO(db)
	ctx := context.Background()
	office := seedOffice(t, db, 1, "office-a")

	for user := int64(1); user <= 5; user++ {
		kind := models.OfficeVoteUp
		if user%2 == 0 {
			kind = models.OfficeVoteDown
		}
		if _, _, err := d.Cast(ctx, office.ID, user, kind); err != nil {
			t.Fatalf("cast user %d: %v", user, err)
		}
		assertCountersMatch(t, db, office.ID)
	}

	if up, down := officeCounters(t, db, office.ID); up != 3 || down != 2 {
		t.Fatalf("counters = (%d,%d), want (3,2)", up, down)
	}
}

func TestOfficeVoteRetract(t *testing.T) {
	db := openTestDB(t)
	d := NewOfficeVoteDAO(db)
	ctx := context.Background()
	office := seedOffice(t, db, 1, "office-a")

	// 撤不存在的票：不是错误，计数不动
	removed, err := d.Retract(ctx, office.ID, 7)
	if err != nil {
		t.Fatalf("retract absent: %v", err)
	}
	if removed {
		t.Fatal("retracting an absent vote should report false")
	}

	if _, _, err := d.Cast(ctx, office.ID, 7, models.OfficeVoteUp); err != nil {
		t.Fatalf("cast: %v", err)
	}
	removed, err = d.Retract(ctx, office.ID, 7)
	if err != nil {
		t.Fatalf("retract: %v", err)
	}
	if !removed {
		t.Fatal("expected retract to remove the vote")
	}
	assertCountersMatch(t, db, office.ID)
	if up, down := officeCounters(t, db, office.ID); up != 0 || down != 0 {
		t.Fatalf("counters = (%d,%d), want (0,0)", up, down)
	}
}

func TestOfficeVoteCast_MissingOffice(t *testing.T) {
	db := openTestDB(t)
	d := NewOfficeVoteDAO(db)

	if _, _, err := d.Cast(context.Background(), 404, 7, models.OfficeVoteUp); err == nil {
		t.Fatal("expected error for missing office")
	}
}
