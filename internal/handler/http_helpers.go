package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/platelog/internal/service"
)

func respondError(c *gin.Context, status int, msg message) {
	c.JSON(status, gin.H{"error": localize(c, msg)})
}

func bindJSON(c *gin.Context, dst interface{}, msg message) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		requestLogger(c).Debug("bind request failed", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, msg)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

func parseDateParam(c *gin.Context, key string) (time.Time, error) {
	parsed, err := time.Parse(service.DateLayout, c.Param(key))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s", key)
	}
	return parsed, nil
}

// handleStoreError 将存储层错误映射为 HTTP 响应。
func handleStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFoodNotFound):
		respondError(c, http.StatusNotFound, msgFoodNotFound)
	case errors.Is(err, service.ErrRecipeNotFound):
		respondError(c, http.StatusNotFound, msgRecipeNotFound)
	case errors.Is(err, service.ErrInvalidLogTarget):
		respondError(c, http.StatusBadRequest, msgInvalidLogTarget)
	default:
		requestLogger(c).Error("store operation failed", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, msgInternalError)
	}
}
