package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tidewatch/tidewatch-backend/usecases"
)

// handleRefresh forces one refetch cycle outside the periodic schedule.
func handleRefresh(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if err := uc.NewRefreshUseCase().RefreshOnce(ctx); err != nil {
			// The previous snapshot stays valid; the client keeps rendering it.
			c.JSON(http.StatusBadGateway, gin.H{"error": "refresh failed", "transient": true})
			return
		}

		c.JSON(http.StatusOK, gin.H{"data_age": uc.Snapshot.DataAge()})
	}
}

func handleLivenessProbe(c *gin.Context) {
	c.Status(http.StatusOK)
}
