package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tidewatch/tidewatch-backend/dto"
	"github.com/tidewatch/tidewatch-backend/usecases"
)

func handleListNotifications(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		result := uc.NewNotificationUseCase().Aggregate(time.Now().UTC())
		c.JSON(http.StatusOK, dto.AdaptNotificationList(result.Items, result.DataAge))
	}
}
