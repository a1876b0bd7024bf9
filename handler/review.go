package handler

import (
	"Civix/config"
	"Civix/middleware"
	"Civix/models"
	"Civix/pkg/context"
	"Civix/pkg/response"
	"Civix/service"
	"Civix/types"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	_ "golang.org/x/image/webp"
)

type Review struct {
	Config        *config.Config
	ReviewService service.IReviewService
	VoteService   service.IReviewVoteService
	OssService    service.IOssService
}

func (h *Review) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	// 投票限频：同一用户 30 票/分钟
	limiter := middleware.VoteRateLimit(30, time.Minute)

	g := r.Group("/v1/review")
	g.GET("/list", context.Wrap(h.List))
	g.GET("/:code", context.Wrap(h.Get))
	g.GET("/:code/votes", context.Wrap(h.Counts))
	g.POST("/create", authorize, context.Wrap(h.Create))
	g.POST("/upload", authorize, context.Wrap(h.UploadPhoto))
	g.POST("/:code/vote", authorize, limiter, context.Wrap(h.CastVote))
	g.DELETE("/:code/vote", authorize, context.Wrap(h.RetractVote))
}

func (h *Review) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	item, err := h.ReviewService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

func (h *Review) List(c *gin.Context) error {
	officeCode := c.Query("office_code")
	if officeCode == "" {
		return response.NewError(http.StatusBadRequest, "office_code 不能为空")
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.ReviewService.ListByOffice(c.Request.Context(), officeCode, page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Review) Get(c *gin.Context) error {
	item, err := h.ReviewService.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

// UploadPhoto 评价配图上传
func (h *Review) UploadPhoto(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	header, err := c.FormFile("image")
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.OssService.UploadReviewPhoto(c.Request.Context(), userID, header)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}

func (h *Review) CastVote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.CastReviewVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	result, err := h.VoteService.Cast(c.Request.Context(), userID, c.Param("code"), models.ReviewVoteKind(req.Kind))
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *Review) RetractVote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	result, err := h.VoteService.Retract(c.Request.Context(), userID, c.Param("code"))
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *Review) Counts(c *gin.Context) error {
	result, err := h.VoteService.Counts(c.Request.Context(), c.Param("code"))
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}
