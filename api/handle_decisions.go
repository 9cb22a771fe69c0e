package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tidewatch/tidewatch-backend/dto"
	"github.com/tidewatch/tidewatch-backend/models"
	"github.com/tidewatch/tidewatch-backend/usecases"
)

func handleListDecisions(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		decoded := dto.AdaptViewState(decodeViewStateParams(c), uc.Config.PaginationDefaults)

		now := time.Now().UTC()
		result := uc.NewViewUseCase().ListDecisions(now, decoded)

		c.JSON(http.StatusOK, dto.AdaptListPage(result.Page, func(d models.Decision) dto.APIDecision {
			return dto.AdaptDecisionDto(now, d, uc.Snapshot.IsPending(d.Id))
		}, result.State, uc.Config.PaginationDefaults, result.DataAge))
	}
}

type decisionMutationInput struct {
	Id string `uri:"decision_id" binding:"required"`
}

func handleAcknowledgeDecision(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var input decisionMutationInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var body dto.MutationBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		mutation, err := uc.NewActionUseCase().AcknowledgeDecision(ctx, input.Id, body.Actor, body.Confirm)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusAccepted, dto.AdaptMutationReceipt(mutation))
	}
}

func handleOverrideDecision(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var input decisionMutationInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var body dto.MutationBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		mutation, err := uc.NewActionUseCase().OverrideDecision(ctx, input.Id, body.Actor, body.Confirm)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusAccepted, dto.AdaptMutationReceipt(mutation))
	}
}
