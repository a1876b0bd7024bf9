package types

import "time"

// FlaggedReview 举报处置列表行
type FlaggedReview struct {
	ReviewID  int64     `json:"review_id"`
	Code      string    `json:"code"`
	OfficeID  int64     `json:"office_id"`
	Status    string    `json:"status"`
	Rating    int8      `json:"rating"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	FlagCount int64     `json:"flag_count"`
}

type ModerateReviewRequest struct {
	Action string `json:"action" binding:"required,oneof=approve remove resolve"`
}

type ModerateReviewResponse struct {
	Code   string `json:"code"`
	Status string `json:"status"`
}
