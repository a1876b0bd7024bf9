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
	"time"

	"github.com/gin-gonic/gin"
)

type Office struct {
	Config        *config.Config
	OfficeService service.IOfficeService
	VoteService   service.IOfficeVoteService
	StatsService  service.IStatsService
}

func (h *Office) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	// 投票限频：同一用户 30 票/分钟
	limiter := middleware.VoteRateLimit(30, time.Minute)

	g := r.Group("/v1/office")
	g.GET("/list", context.Wrap(h.List))
	g.GET("/top", context.Wrap(h.Top))
	g.GET("/:code", context.Wrap(h.Get))
	g.GET("/:code/votes", context.Wrap(h.Counts))
	g.POST("/create", authorize, middleware.RequireRole(models.RoleAdmin), context.Wrap(h.Create))
	g.POST("/import", authorize, middleware.RequireRole(models.RoleAdmin), context.Wrap(h.Import))
	g.POST("/:code/vote", authorize, limiter, context.Wrap(h.CastVote))
	g.DELETE("/:code/vote", authorize, context.Wrap(h.RetractVote))
}

func (h *Office) Create(c *gin.Context) error {
	var req types.CreateOfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	item, err := h.OfficeService.Create(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

func (h *Office) List(c *gin.Context) error {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.OfficeService.List(c.Request.Context(), c.Query("district"), page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Office) Get(c *gin.Context) error {
	item, err := h.OfficeService.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

// Import 管理员批量导入开放数据
func (h *Office) Import(c *gin.Context) error {
	var req types.ImportOfficesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.OfficeService.Import(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Office) CastVote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.CastOfficeVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	result, err := h.VoteService.Cast(c.Request.Context(), userID, c.Param("code"), models.OfficeVoteKind(req.Kind))
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *Office) RetractVote(c *gin.Context) error {
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

func (h *Office) Counts(c *gin.Context) error {
	result, err := h.VoteService.Counts(c.Request.Context(), c.Param("code"))
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

// Top 机构口碑排行
func (h *Office) Top(c *gin.Context) error {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	rankBy := c.DefaultQuery("rank_by", types.RankByUpvote)

	items, err := h.StatsService.TopOffices(c.Request.Context(), rankBy, limit)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}
