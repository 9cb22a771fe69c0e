package models

import (
	"slices"
	"time"
)

type SavedViewKind string

const (
	ViewBuiltIn SavedViewKind = "BUILT_IN"
	ViewUser    SavedViewKind = "USER"
)

// SavedView is a named, persisted filter+sort snapshot. Built-ins are seeded
// on load, immutable and never evicted; user views are appended and evicted
// oldest-first once the combined count exceeds the cap.
type SavedView struct {
	Id        string
	Name      string
	Kind      SavedViewKind
	Filters   FilterCriteria
	Sort      SortingField
	CreatedAt time.Time
}

func (v SavedView) IsBuiltIn() bool {
	return v.Kind == ViewBuiltIn
}

// BuiltInViews are re-seeded on every load and excluded from durable storage.
func BuiltInViews() []SavedView {
	return []SavedView{
		{
			Id:      "builtin:all",
			Name:    "All items",
			Kind:    ViewBuiltIn,
			Sort:    SortByUrgency,
			Filters: FilterCriteria{},
		},
		{
			Id:      "builtin:pending",
			Name:    "Pending review",
			Kind:    ViewBuiltIn,
			Sort:    SortByUrgency,
			Filters: FilterCriteria{Status: string(DecisionPending)},
		},
		{
			Id:      "builtin:immediate",
			Name:    "Immediate action",
			Kind:    ViewBuiltIn,
			Sort:    SortByExposure,
			Filters: FilterCriteria{Urgency: string(UrgencyImmediate)},
		},
		{
			Id:      "builtin:deadline",
			Name:    "Closest deadlines",
			Kind:    ViewBuiltIn,
			Sort:    SortByDeadline,
			Filters: FilterCriteria{Status: string(DecisionPending)},
		},
	}
}

// AppendUserView appends a user view, evicting the oldest user views first
// when the combined count would exceed maxViews. Built-ins are never candidates
// for eviction.
func AppendUserView(views []SavedView, view SavedView, maxViews int) []SavedView {
	out := append(slices.Clone(views), view)
	if maxViews < 1 {
		return out
	}
	for len(out) > maxViews {
		evicted := false
		for i, v := range out {
			if !v.IsBuiltIn() && v.Id != view.Id {
				out = append(out[:i], out[i+1:]...)
				evicted = true
				break
			}
		}
		if !evicted {
			break
		}
	}
	return out
}

func FindView(views []SavedView, id string) (SavedView, bool) {
	for _, v := range views {
		if v.Id == id {
			return v, true
		}
	}
	return SavedView{}, false
}

func UserViews(views []SavedView) []SavedView {
	out := make([]SavedView, 0, len(views))
	for _, v := range views {
		if !v.IsBuiltIn() {
			out = append(out, v)
		}
	}
	return out
}
