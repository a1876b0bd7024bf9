package types

type NotificationItem struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Severity  string `json:"severity"`
	RefKind   string `json:"ref_kind,omitempty"`
	RefID     int64  `json:"ref_id,omitempty"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

type ListNotificationsResponse struct {
	Items []*NotificationItem `json:"items"`
	Total int64               `json:"total"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
