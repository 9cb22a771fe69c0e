package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tidewatch/tidewatch-backend/dto"
	"github.com/tidewatch/tidewatch-backend/usecases"
)

func handleListChokepoints(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		result := uc.NewChokepointUseCase().Derive()
		c.JSON(http.StatusOK, dto.AdaptChokepointList(result.States, result.DataAge))
	}
}
