package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/revanth-raj24/AlmirahShop/models"
	"github.com/revanth-raj24/AlmirahShop/services"
)

// NotificationController serves the seller and admin notification inboxes.
type NotificationController struct {
	notificationService services.NotificationService
}

func NewNotificationController(svc services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: svc}
}

// SaveNotification handles POST /seller/notifications
func (nc *NotificationController) SaveNotification(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}

	var req models.SaveNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	n, svcErr := nc.notificationService.SaveForSeller(ctx.Request.Context(), c.ID, req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"notification": n})
}

// ListSellerNotifications handles GET /seller/notifications
func (nc *NotificationController) ListSellerNotifications(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	page, limit := parsePaginationParams(ctx)

	rows, total, svcErr := nc.notificationService.ListForSeller(ctx.Request.Context(), c.ID, ctx.Query("filter"), page, limit)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"notifications": rows,
		"pagination":    paginationMeta(page, limit, total),
	})
}

// MarkRead handles PATCH /seller/notifications/:id/read and
// PATCH /admin/notifications/:id/read
func (nc *NotificationController) MarkRead(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	id, ok := pathUUID(ctx, "id")
	if !ok {
		return
	}

	var req models.MarkReadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	n, svcErr := nc.notificationService.MarkRead(ctx.Request.Context(), c, id, *req.IsRead)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"notification": n})
}

// DeleteNotification handles DELETE /seller/notifications/:id and
// DELETE /admin/notifications/:id
func (nc *NotificationController) DeleteNotification(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	id, ok := pathUUID(ctx, "id")
	if !ok {
		return
	}

	if svcErr := nc.notificationService.Delete(ctx.Request.Context(), c, id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}

// UnreadCount handles GET /seller/notifications/unread/count and
// GET /admin/notifications/unread/count
func (nc *NotificationController) UnreadCount(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}

	count, svcErr := nc.notificationService.UnreadCount(ctx.Request.Context(), c)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"unread_count": count})
}

// CreateNotification handles POST /admin/notifications
func (nc *NotificationController) CreateNotification(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}

	var req models.CreateNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	n, svcErr := nc.notificationService.Create(ctx.Request.Context(), c, req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"notification": n})
}

// ListAllNotifications handles GET /admin/notifications
func (nc *NotificationController) ListAllNotifications(ctx *gin.Context) {
	c, ok := caller(ctx)
	if !ok {
		return
	}
	page, limit := parsePaginationParams(ctx)

	var isRead *bool
	if v := ctx.Query("is_read"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid is_read"})
			return
		}
		isRead = &b
	}

	rows, total, svcErr := nc.notificationService.ListAll(ctx.Request.Context(), c, ctx.Query("type"), isRead, page, limit)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"notifications": rows,
		"pagination":    paginationMeta(page, limit, total),
	})
}
