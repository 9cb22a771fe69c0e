package dto

import (
	"time"

	"github.com/tidewatch/tidewatch-backend/models"
)

// ListPage is the rendered page every list surface consumes: one page of
// items plus enough context to paginate, re-link and show data freshness.
type ListPage[T any] struct {
	Items      []T       `json:"items"`
	Page       int       `json:"page"`
	Size       int       `json:"size"`
	Total      int       `json:"total"`
	TotalPages int       `json:"total_pages"`
	Query      string    `json:"query"`
	DataAge    time.Time `json:"data_age"`
	ActiveView string    `json:"active_view,omitempty"`
}

func AdaptListPage[M, T any](page models.Page[M], adapt func(M) T, state models.ViewState,
	defaults models.PaginationDefaults, dataAge time.Time,
) ListPage[T] {
	items := make([]T, len(page.Items))
	for i, item := range page.Items {
		items[i] = adapt(item)
	}
	out := ListPage[T]{
		Items:      items,
		Page:       page.Page,
		Size:       page.Size,
		Total:      page.Total,
		TotalPages: page.TotalPages,
		Query:      EncodeViewState(state, defaults),
		DataAge:    dataAge,
	}
	if id, ok := state.Active.Id(); ok {
		out.ActiveView = id
	}
	return out
}
