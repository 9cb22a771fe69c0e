package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/tidewatch/tidewatch-backend/models"
	"github.com/tidewatch/tidewatch-backend/utils"
)

// presentError maps domain errors to HTTP statuses and reports whether an
// error was rendered.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.UnprocessableEntityError):
		// Mutation rejections are transient and dismissible on the client.
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "transient": true})
	default:
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "unexpected error", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
	return true
}
