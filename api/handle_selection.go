package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tidewatch/tidewatch-backend/models"
	"github.com/tidewatch/tidewatch-backend/pure_utils"
	"github.com/tidewatch/tidewatch-backend/usecases"
)

type selectionKeyBody struct {
	Key string `json:"key" binding:"required"`
	// Surface names the list the selection moves over, "decisions" when empty.
	Surface string `json:"surface"`
	// EditableFocused is set by the rendering layer while focus is inside a
	// text or editable control; all key handling is suppressed then.
	EditableFocused bool `json:"editable_focused"`
}

// visibleRow is the surface-agnostic image of one selectable list row.
type visibleRow struct {
	id         string
	actionable bool
}

func visibleRows(uc usecases.Usecases, surface string, now time.Time) []visibleRow {
	viewUsecase := uc.NewViewUseCase()
	if surface == "escalations" {
		return pure_utils.Map(viewUsecase.VisibleEscalations(now), func(e models.Escalation) visibleRow {
			return visibleRow{id: e.Id, actionable: e.IsActionable()}
		})
	}
	return pure_utils.Map(viewUsecase.VisibleDecisions(now), func(d models.Decision) visibleRow {
		return visibleRow{id: d.Id, actionable: d.IsActionable()}
	})
}

// handleSelectionKey advances the keyboard selection over the current page
// and tells the caller what to dispatch: nothing, an open, or a primary
// action confirmation request.
func handleSelectionKey(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		var body selectionKeyBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		rows := visibleRows(uc, body.Surface, time.Now().UTC())
		uc.ViewStateStore.SetVisibleCount(len(rows))

		selection, action := uc.ViewStateStore.HandleKey(
			models.SelectionKey(body.Key),
			body.EditableFocused,
			func(index int) bool {
				return index < len(rows) && rows[index].actionable
			},
		)

		response := gin.H{
			"index":  selection.Index,
			"action": string(action),
		}
		if selection.HasSelection() && selection.Index < len(rows) {
			response["entity_id"] = rows[selection.Index].id
		}
		c.JSON(http.StatusOK, response)
	}
}

func handleGetSelection(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		selection := uc.ViewStateStore.Selection()
		c.JSON(http.StatusOK, gin.H{"index": selection.Index})
	}
}
