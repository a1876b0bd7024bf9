package dao

import (
	"Civix/models"
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

func seedOffice(t *testing.T, db *gorm.DB, id int64, name string) *models.Office {
	t.Helper()
	office := &models.Office{ID: id, Code: name, Name: name}
	if err := db.Create(office).Error; err != nil {
		t.Fatalf("seed office: %v", err)
	}
	return office
}

func seedReview(t *testing.T, db *gorm.DB, id int64, status models.ReviewStatus) *models.Review {
	t.Helper()
	review := &models.Review{
		ID:       id,
		Code:     "r" + string(rune('0'+id%10)),
		OfficeID: 1,
		Author:   models.AuthorUser(100),
		Rating:   4,
		Status:   status,
	}
	if err := db.Create(review).Error; err != nil {
		t.Fatalf("seed review: %v", err)
	}
	return review
}

// 索引名必须按表区分：sqlite 的索引命名空间是库级的，
// 同名索引会让整套表的建表迁移直接失败
func TestMigrateAllModels(t *testing.T) {
	db := openTestDB(t)
	if err := db.AutoMigrate(&models.Image{}); err != nil {
		t.Fatalf("migrate image: %v", err)
	}
}
