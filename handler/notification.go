package handler

import (
	"Civix/config"
	"Civix/middleware"
	"Civix/pkg/context"
	"Civix/pkg/response"
	"Civix/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Notification struct {
	Config        *config.Config
	NotifyService service.INotificationService
}

func (h *Notification) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/notification", authorize)
	g.GET("/list", context.Wrap(h.List))
	g.GET("/unread", context.Wrap(h.UnreadCount))
	g.POST("/:id/read", context.Wrap(h.MarkRead))
	g.POST("/read-all", context.Wrap(h.MarkAllRead))
	g.DELETE("/:id", context.Wrap(h.Delete))
}

func (h *Notification) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.NotifyService.List(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Notification) UnreadCount(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	count, err := h.NotifyService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"count": count})
	return nil
}

func (h *Notification) MarkRead(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	notifyID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "非法的通知 ID")
	}

	if err := h.NotifyService.MarkRead(c.Request.Context(), userID, notifyID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Notification) MarkAllRead(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	if err := h.NotifyService.MarkAllRead(c.Request.Context(), userID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Notification) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	notifyID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "非法的通知 ID")
	}

	if err := h.NotifyService.Delete(c.Request.Context(), userID, notifyID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
