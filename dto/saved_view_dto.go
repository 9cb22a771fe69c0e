package dto

import (
	"time"

	"github.com/tidewatch/tidewatch-backend/models"
)

type APISavedView struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Query     string    `json:"query"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

func AdaptSavedViewDto(v models.SavedView, defaults models.PaginationDefaults) APISavedView {
	state := models.DefaultViewState(defaults)
	state.Filters = v.Filters
	state.Sort = v.Sort
	return APISavedView{
		Id:        v.Id,
		Name:      v.Name,
		Kind:      string(v.Kind),
		Query:     EncodeViewState(state, defaults),
		CreatedAt: v.CreatedAt,
	}
}

type CreateSavedViewBody struct {
	Name     string `json:"name" binding:"required"`
	Status   string `json:"status"`
	Urgency  string `json:"urgency"`
	Severity string `json:"severity"`
	Customer string `json:"customer"`
	Search   string `json:"q"`
	Range    int    `json:"range"`
	Sort     string `json:"sort"`
}

func (b CreateSavedViewBody) Criteria() (models.FilterCriteria, models.SortingField) {
	criteria := models.FilterCriteria{
		Status:   validStatusParam(b.Status),
		Urgency:  validUrgencyParam(b.Urgency),
		Severity: validSeverityParam(b.Severity),
		Customer: b.Customer,
		Search:   b.Search,
	}
	if b.Range > 0 {
		criteria.RangeDays = b.Range
	}
	return criteria, models.SortingFieldFrom(b.Sort)
}
