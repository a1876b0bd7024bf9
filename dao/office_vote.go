package dao

import (
	"Civix/models"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OfficeVoteDAO struct {
	Repo[models.OfficeVote]
}

func NewOfficeVoteDAO(db *gorm.DB) *OfficeVoteDAO {
	return &OfficeVoteDAO{Repo: NewRepo[models.OfficeVote](db)}
}

// GetByOfficeUser 查询指定用户对指定机构的投票记录
func (d *OfficeVoteDAO) GetByOfficeUser(ctx context.Context, officeID, userID int64) (*models.OfficeVote, error) {
	var item models.OfficeVote
	err := d.Db.WithContext(ctx).Where("office_id = ? AND user_id = ?", officeID, userID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// Cast 写入投票并在同一事务内重算机构计数
// 账本变更和计数更新要么一起提交要么一起回滚
func (d *OfficeVoteDAO) Cast(ctx context.Context, officeID, userID int64, kind models.OfficeVoteKind) (vote *models.OfficeVote, changed bool, err error) {
	var item models.OfficeVote
	err = d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先锁机构行，同一机构的并发投票在此串行化
		if err := lockOffice(tx, officeID); err != nil {
			return err
		}

		err := tx.Where("office_id = ? AND user_id = ?", officeID, userID).Limit(1).Find(&item).Error
		if err != nil {
			return err
		}
		now := time.Now()
		switch {
		case item.ID == 0: // create
			item = models.OfficeVote{OfficeID: officeID, UserID: userID, Kind: kind, CreatedAt: now, UpdatedAt: now}
			changed = true
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		case item.Kind == kind:
			// 同方向重复投票，账本与计数都不动
			return nil
		default: // 切换方向
			changed = true
			item.Kind = kind
			item.UpdatedAt = now
			if err := tx.Model(&models.OfficeVote{}).Where("id = ?", item.ID).
				Updates(map[string]any{"kind": kind, "updated_at": now}).Error; err != nil {
				return err
			}
		}

		return syncOfficeCounters(tx, officeID)
	})
	if err != nil {
		return nil, false, err
	}
	return &item, changed, nil
}

// Retract 撤票。记录不存在不是错误，计数不动
func (d *OfficeVoteDAO) Retract(ctx context.Context, officeID, userID int64) (removed bool, err error) {
	err = d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockOffice(tx, officeID); err != nil {
			return err
		}

		res := tx.Where("office_id = ? AND user_id = ?", officeID, userID).Delete(&models.OfficeVote{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		return syncOfficeCounters(tx, officeID)
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

func lockOffice(tx *gorm.DB, officeID int64) error {
	var office models.Office
	q := tx.Select("id")
	// sqlite 没有 SELECT ... FOR UPDATE，行锁只在 mysql 下生效
	if tx.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return q.First(&office, "id = ?", officeID).Error
}

// syncOfficeCounters 从账本重算缓存计数
// 不做增量加减：提交时计数恒等于账本的真实聚合，部分失败不会产生漂移
func syncOfficeCounters(tx *gorm.DB, officeID int64) error {
	var up, down int64
	if err := tx.Model(&models.OfficeVote{}).
		Where("office_id = ? AND kind = ?", officeID, models.OfficeVoteUp).
		Count(&up).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.OfficeVote{}).
		Where("office_id = ? AND kind = ?", officeID, models.OfficeVoteDown).
		Count(&down).Error; err != nil {
		return err
	}

	return tx.Model(&models.Office{}).Where("id = ?", officeID).
		Updates(map[string]any{
			"upvote_count":   up,
			"downvote_count": down,
			"updated_at":     time.Now(),
		}).Error
}
