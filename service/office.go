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
	"encoding/json"
	"errors"
	"time"

	"github.com/tidwall/gjson"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var _ IOfficeService = (*OfficeService)(nil)

type IOfficeService interface {
	Create(ctx context.Context, req *types.CreateOfficeRequest) (*types.OfficeItem, error)
	List(ctx context.Context, district string, page, pageSize int) (*types.ListOfficesResponse, error)
	GetByCode(ctx context.Context, code string) (*types.OfficeItem, error)
	Import(ctx context.Context, req *types.ImportOfficesRequest) (*types.ImportOfficesResponse, error)
}

type OfficeService struct {
	OfficeDAO *dao.OfficeDAO
	Config    *config.Config
}

// Create 创建机构
func (s *OfficeService) Create(ctx context.Context, req *types.CreateOfficeRequest) (*types.OfficeItem, error) {
	if s.OfficeDAO.IsNameExist(ctx, req.Name) {
		return nil, response.Conflict("机构已存在")
	}

	id := snowflake.GenID()
	office := &models.Office{
		ID:        id,
		Code:      utils.GenHashID(s.Config.App.HashSalt, id),
		Name:      req.Name,
		District:  req.District,
		Contact:   datatypes.JSON(req.Contact),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.OfficeDAO.Create(ctx, office); err != nil {
		return nil, err
	}
	return toOfficeItem(office), nil
}

func (s *OfficeService) List(ctx context.Context, district string, page, pageSize int) (*types.ListOfficesResponse, error) {
	limit, offset := pageToLimit(page, pageSize)
	items, total, err := s.OfficeDAO.List(ctx, district, limit, offset)
	if err != nil {
		return nil, err
	}

	rep := &types.ListOfficesResponse{
		Items: make([]*types.OfficeItem, 0, len(items)),
		Total: total,
	}
	for _, o := range items {
		rep.Items = append(rep.Items, toOfficeItem(o))
	}
	return rep, nil
}

func (s *OfficeService) GetByCode(ctx context.Context, code string) (*types.OfficeItem, error) {
	office, err := s.OfficeDAO.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("机构不存在")
		}
		return nil, err
	}
	return toOfficeItem(office), nil
}

// Import 开放数据批量导入
// 各地数据源字段名不统一，按请求里给的 gjson 路径逐条提取
func (s *OfficeService) Import(ctx context.Context, req *types.ImportOfficesRequest) (*types.ImportOfficesResponse, error) {
	parsed := gjson.ParseBytes(req.Payload)
	if !parsed.IsArray() {
		return nil, response.NewError(400, "payload 必须是 JSON 数组")
	}

	rep := &types.ImportOfficesResponse{}
	for _, item := range parsed.Array() {
		name := item.Get(req.NamePath).String()
		if name == "" || s.OfficeDAO.IsNameExist(ctx, name) {
			rep.Skipped++
			continue
		}

		var contact datatypes.JSON
		if req.ContactPath != "" {
			if raw := item.Get(req.ContactPath).Raw; raw != "" {
				contact = datatypes.JSON(raw)
			}
		}

		id := snowflake.GenID()
		office := &models.Office{
			ID:        id,
			Code:      utils.GenHashID(s.Config.App.HashSalt, id),
			Name:      name,
			District:  item.Get(req.DistrictPath).String(),
			Contact:   contact,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.OfficeDAO.Create(ctx, office); err != nil {
			return nil, err
		}
		rep.Imported++
	}
	return rep, nil
}

func toOfficeItem(o *models.Office) *types.OfficeItem {
	return &types.OfficeItem{
		Code:          o.Code,
		Name:          o.Name,
		District:      o.District,
		Contact:       json.RawMessage(o.Contact),
		UpvoteCount:   o.UpvoteCount,
		DownvoteCount: o.DownvoteCount,
	}
}

func pageToLimit(page, pageSize int) (limit, offset int) {
	if page < types.DefaultPage {
		page = types.DefaultPage
	}
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}
	if pageSize > types.MaxPageSize {
		pageSize = types.MaxPageSize
	}
	return pageSize, (page - 1) * pageSize
}
