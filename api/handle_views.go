package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tidewatch/tidewatch-backend/dto"
	"github.com/tidewatch/tidewatch-backend/models"
	"github.com/tidewatch/tidewatch-backend/pure_utils"
	"github.com/tidewatch/tidewatch-backend/usecases"
)

func handleListViews(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		views := uc.NewSavedViewUseCase().List()
		c.JSON(http.StatusOK, gin.H{
			"items": pure_utils.Map(views, func(v models.SavedView) dto.APISavedView {
				return dto.AdaptSavedViewDto(v, uc.Config.PaginationDefaults)
			}),
		})
	}
}

func handleCreateView(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateSavedViewBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		filters, sort := body.Criteria()
		view, err := uc.NewSavedViewUseCase().Create(ctx, body.Name, filters, sort)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, dto.AdaptSavedViewDto(view, uc.Config.PaginationDefaults))
	}
}

type viewInput struct {
	Id string `uri:"view_id" binding:"required"`
}

func handleApplyView(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var input viewInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		state, err := uc.NewSavedViewUseCase().Apply(input.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"active_view": input.Id,
			"query":       dto.EncodeViewState(state, uc.Config.PaginationDefaults),
		})
	}
}

func handleDeleteView(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var input viewInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		if err := uc.NewSavedViewUseCase().Delete(ctx, input.Id); presentError(ctx, c, err) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}
