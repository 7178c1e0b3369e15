package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondWithError maps service errors to status codes. Business errors carry their
// message to the caller; anything else is logged and answered with fallbackMsg.
func respondWithError(c *gin.Context, err error, fallbackMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflict with current state", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}

// respondBindError answers a request that failed binding or validation.
func respondBindError(c *gin.Context, err error, operation string) {
	middleware.GetLoggerFromCtx(c.Request.Context()).
		Warn("Failed to bind request for "+operation, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}

// actingUserID returns the authenticated user, or the system user when auth is disabled.
func actingUserID(c *gin.Context) string {
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		return userID
	}
	return domain.SystemUserID
}

const maxTenantIDLength = 64

// requireTenant rejects requests whose tenant path segment is unusable.
func requireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := c.Param("tenant_id")
		if tenantID == "" || len(tenantID) > maxTenantIDLength {
			middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid tenant id in path", slog.String("tenant_id", tenantID))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Tenant ID required in path (max 64 characters)"})
			return
		}
		ctx := middleware.WithLogger(c.Request.Context(),
			middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("tenant_id", tenantID)))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// requireUUIDParams answers 404 when a named path id is present but is not a UUID,
// since no tenant-scoped row can carry such an id.
func requireUUIDParams(names ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, name := range names {
			raw := c.Param(name)
			if raw == "" {
				continue
			}
			if _, err := uuid.Parse(raw); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Malformed id in path",
					slog.String("param", name), slog.String("value", raw))
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%v: %s %s", apperrors.ErrNotFound, name, raw)})
				return
			}
		}
		c.Next()
	}
}
