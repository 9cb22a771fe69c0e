package dto

import (
	"time"

	"github.com/tidewatch/tidewatch-backend/models"
	"github.com/tidewatch/tidewatch-backend/pure_utils"
)

type APINotification struct {
	Id            string    `json:"id"`
	Type          string    `json:"type"`
	Bucket        string    `json:"bucket"`
	Headline      string    `json:"headline"`
	Exposure      float64   `json:"exposure"`
	ActionTag     string    `json:"action_tag,omitempty"`
	ActionCost    float64   `json:"action_cost,omitempty"`
	Savings       float64   `json:"savings"`
	InactionCost  float64   `json:"inaction_cost,omitempty"`
	TimeRemaining string    `json:"time_remaining,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type APINotificationList struct {
	Items         []APINotification `json:"items"`
	TotalExposure float64           `json:"total_exposure"`
	Counts        APIBadgeCounts    `json:"counts"`
	DataAge       time.Time         `json:"data_age"`
}

type APIBadgeCounts struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	Urgent   int `json:"urgent"`
	Normal   int `json:"normal"`
}

func AdaptNotificationDto(item models.NotificationItem) APINotification {
	return APINotification{
		Id:            item.Id,
		Type:          string(item.Type),
		Bucket:        string(item.Bucket),
		Headline:      item.Headline,
		Exposure:      item.Exposure,
		ActionTag:     item.ActionTag,
		ActionCost:    item.ActionCost,
		Savings:       item.Savings,
		InactionCost:  item.InactionCost,
		TimeRemaining: item.TimeRemaining,
		CreatedAt:     item.CreatedAt,
	}
}

func AdaptNotificationList(items []models.NotificationItem, dataAge time.Time) APINotificationList {
	counts := models.CountBadges(items)
	return APINotificationList{
		Items:         pure_utils.Map(items, AdaptNotificationDto),
		TotalExposure: models.TotalExposure(items),
		Counts: APIBadgeCounts{
			Total:    counts.Total,
			Critical: counts.Critical,
			Urgent:   counts.Urgent,
			Normal:   counts.Normal,
		},
		DataAge: dataAge,
	}
}
