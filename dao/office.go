package dao

import (
	"Civix/models"
	"context"

	"gorm.io/gorm"
)

type OfficeDAO struct {
	Repo[models.Office]
}

func NewOfficeDAO(db *gorm.DB) *OfficeDAO {
	return &OfficeDAO{Repo: NewRepo[models.Office](db)}
}

func (d *OfficeDAO) FindByCode(ctx context.Context, code string) (*models.Office, error) {
	return d.Repo.FindByWhere(ctx, "code = ?", code)
}

func (d *OfficeDAO) IsNameExist(ctx context.Context, name string) bool {
	exist, _ := d.Repo.IsExist(ctx, "name = ?", name)
	return exist
}

// List 机构列表，district 为空时不过滤
func (d *OfficeDAO) List(ctx context.Context, district string, limit, offset int) ([]*models.Office, int64, error) {
	q := d.Model(ctx)
	if district != "" {
		q = q.Where("district = ?", district)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []*models.Office
	err := q.Order("name ASC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}
