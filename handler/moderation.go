package handler

import (
	"Civix/config"
	"Civix/middleware"
	"Civix/models"
	"Civix/pkg/context"
	"Civix/pkg/response"
	"Civix/service"
	"Civix/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Moderation struct {
	Config            *config.Config
	ModerationService service.IModerationService
}

func (h *Moderation) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/admin", authorize, middleware.RequireRole(models.RoleOfficial, models.RoleAdmin))
	g.GET("/flagged", context.Wrap(h.Flagged))
	g.POST("/review/:code", context.Wrap(h.Moderate))
}

// Flagged 待处置的被举报评价，按举报数降序
func (h *Moderation) Flagged(c *gin.Context) error {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	items, err := h.ModerationService.FlaggedReviews(c.Request.Context(), c.Query("status"), page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (h *Moderation) Moderate(c *gin.Context) error {
	var req types.ModerateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.ModerationService.Moderate(c.Request.Context(), c.Param("code"), req.Action)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
