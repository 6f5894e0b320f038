package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/revanth-raj24/AlmirahShop/middleware"
	"github.com/revanth-raj24/AlmirahShop/services"
)

// parsePaginationParams extracts and validates page/limit query params.
func parsePaginationParams(ctx *gin.Context) (int, int) {
	const maxLimit = 100
	pageInt, limitInt := 1, 10
	if p, err := strconv.Atoi(ctx.DefaultQuery("page", "1")); err == nil && p > 0 {
		pageInt = p
	}
	if l, err := strconv.Atoi(ctx.DefaultQuery("limit", "10")); err == nil && l > 0 {
		if l > maxLimit {
			l = maxLimit
		}
		limitInt = l
	}
	return pageInt, limitInt
}

// paginationMeta is the standard list-response envelope.
func paginationMeta(page, limit int, total int64) gin.H {
	return gin.H{"page": page, "limit": limit, "total": total}
}

// bindOptionalJSON binds a JSON body when one is present. Endpoints whose
// fields are all optional accept a bare request; req keeps its zero value.
func bindOptionalJSON(ctx *gin.Context, req interface{}) bool {
	if ctx.Request.Body == nil || ctx.Request.ContentLength == 0 {
		return true
	}
	if err := ctx.ShouldBindJSON(req); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return false
	}
	return true
}

// pathUUID parses a :param path segment as a UUID, writing a 400 on failure.
func pathUUID(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// caller pulls the authenticated identity set by the auth middleware.
func caller(ctx *gin.Context) (services.Caller, bool) {
	c, ok := middleware.GetCaller(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return services.Caller{}, false
	}
	return c, true
}
