package api

import (
	"github.com/gin-gonic/gin"

	"github.com/tidewatch/tidewatch-backend/usecases"
)

func addRoutes(r *gin.Engine, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe)

	r.GET("/decisions", handleListDecisions(uc))
	r.POST("/decisions/:decision_id/acknowledge", handleAcknowledgeDecision(uc))
	r.POST("/decisions/:decision_id/override", handleOverrideDecision(uc))

	r.GET("/escalations", handleListEscalations(uc))
	r.POST("/escalations/:escalation_id/resolve", handleResolveEscalation(uc))

	r.GET("/notifications", handleListNotifications(uc))
	r.GET("/chokepoints", handleListChokepoints(uc))

	r.GET("/views", handleListViews(uc))
	r.POST("/views", handleCreateView(uc))
	r.POST("/views/:view_id/apply", handleApplyView(uc))
	r.DELETE("/views/:view_id", handleDeleteView(uc))

	r.GET("/selection", handleGetSelection(uc))
	r.POST("/selection/keys", handleSelectionKey(uc))

	r.POST("/refresh", handleRefresh(uc))
}
