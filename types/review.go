package types

type CreateReviewRequest struct {
	OfficeCode string `json:"office_code" binding:"required"`
	Rating     int8   `json:"rating" binding:"required,min=1,max=5"`
	Content    string `json:"content" binding:"max=2000"`
	PhotoKey   string `json:"photo_key" binding:"max=255"`
	Anonymous  bool   `json:"anonymous"`
}

type ReviewItem struct {
	Code      string `json:"code"`
	OfficeID  int64  `json:"-"`
	Rating    int8   `json:"rating"`
	Content   string `json:"content"`
	PhotoKey  string `json:"photo_key,omitempty"`
	Status    string `json:"status"`
	Anonymous bool   `json:"anonymous"`
	AuthorID  int64  `json:"author_id,omitempty"`
	CreatedAt string `json:"created_at"`
}

type ListReviewsResponse struct {
	Items []*ReviewItem `json:"items"`
	Total int64         `json:"total"`
}
