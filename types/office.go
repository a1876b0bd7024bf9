package types

import "encoding/json"

// Pagination 分页常量
const (
	DefaultPage     int = 1
	DefaultPageSize int = 20
	MaxPageSize     int = 100
)

type CreateOfficeRequest struct {
	Name     string          `json:"name" binding:"required,max=100"`
	District string          `json:"district" binding:"max=100"`
	Contact  json.RawMessage `json:"contact"` // {phone, address, hours}
}

type OfficeItem struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	District      string          `json:"district"`
	Contact       json.RawMessage `json:"contact,omitempty"`
	UpvoteCount   int64           `json:"upvote_count"`
	DownvoteCount int64           `json:"downvote_count"`
}

type ListOfficesResponse struct {
	Items []*OfficeItem `json:"items"`
	Total int64         `json:"total"`
}

// ImportOfficesRequest 开放数据批量导入，payload 为原始 JSON 数组，
// 字段名因数据源而异，由服务端用 gjson 按配置路径提取
type ImportOfficesRequest struct {
	Payload      json.RawMessage `json:"payload" binding:"required"`
	NamePath     string          `json:"name_path" binding:"required"`
	DistrictPath string          `json:"district_path"`
	ContactPath  string          `json:"contact_path"`
}

type ImportOfficesResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
