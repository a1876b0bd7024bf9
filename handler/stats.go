package handler

import (
	"Civix/config"
	"Civix/middleware"
	"Civix/models"
	"Civix/pkg/context"
	"Civix/pkg/response"
	"Civix/pkg/utils"
	"Civix/service"
	"Civix/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Stats struct {
	Config       *config.Config
	StatsService service.IStatsService
}

func (h *Stats) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/stats")
	g.GET("/me", authorize, context.Wrap(h.MyVoteStats))
	g.GET("/trends", authorize, middleware.RequireRole(models.RoleOfficial, models.RoleAdmin), context.Wrap(h.VoteTrends))
}

// MyVoteStats 当前用户的投票统计，管理员可用 user_id 查他人
func (h *Stats) MyVoteStats(c *gin.Context) error {
	var (
		userID int64
		err    error
	)
	if context.GetRole(c) == models.RoleAdmin {
		userID, err = utils.GetQueryOrTokenUserID(c)
	} else {
		userID, err = context.GetUserID(c)
	}
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	stats, err := h.StatsService.UserVoteStats(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, stats)
	return nil
}

// VoteTrends 投票趋势，office_code 为空时统计全站
func (h *Stats) VoteTrends(c *gin.Context) error {
	period := c.DefaultQuery("period", types.PeriodDaily)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))

	buckets, err := h.StatsService.VoteTrends(c.Request.Context(), c.Query("office_code"), period, limit)
	if err != nil {
		return err
	}
	response.Success(c, buckets)
	return nil
}
