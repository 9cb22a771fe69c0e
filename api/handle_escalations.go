package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tidewatch/tidewatch-backend/dto"
	"github.com/tidewatch/tidewatch-backend/models"
	"github.com/tidewatch/tidewatch-backend/usecases"
)

func handleListEscalations(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		decoded := dto.AdaptViewState(decodeViewStateParams(c), uc.Config.PaginationDefaults)

		now := time.Now().UTC()
		result := uc.NewViewUseCase().ListEscalations(now, decoded)

		c.JSON(http.StatusOK, dto.AdaptListPage(result.Page, func(e models.Escalation) dto.APIEscalation {
			return dto.AdaptEscalationDto(now, e, uc.Snapshot.IsPending(e.Id))
		}, result.State, uc.Config.PaginationDefaults, result.DataAge))
	}
}

type escalationMutationInput struct {
	Id string `uri:"escalation_id" binding:"required"`
}

func handleResolveEscalation(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var input escalationMutationInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var body dto.MutationBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		mutation, err := uc.NewActionUseCase().ResolveEscalation(ctx, input.Id, body.Actor, body.Confirm)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusAccepted, dto.AdaptMutationReceipt(mutation))
	}
}
