package dto

import (
	"net/url"
	"slices"
	"strconv"

	"github.com/tidewatch/tidewatch-backend/models"
)

// ViewStateParams is the query-parameter image of the filter/sort/page state.
// Each parameter decodes independently and forgivingly: an invalid or unknown
// value falls back to that parameter's default, the rest are untouched, and
// the request never fails. Encoding omits parameters equal to their default so
// shared URLs stay minimal.
type ViewStateParams struct {
	Status   string
	Urgency  string
	Severity string
	Sort     string
	Customer string
	Search   string
	Range    int
	Page     int
	Size     int
}

// AdaptViewState seeds state from query parameters, URL-wins semantics: any
// present, valid parameter overrides the default; everything else stays at
// its default value.
func AdaptViewState(params ViewStateParams, defaults models.PaginationDefaults) models.ViewState {
	state := models.DefaultViewState(defaults)

	state.Filters = models.FilterCriteria{
		Status:   validStatusParam(params.Status),
		Urgency:  validUrgencyParam(params.Urgency),
		Severity: validSeverityParam(params.Severity),
		Customer: params.Customer,
		Search:   params.Search,
	}
	if params.Range > 0 {
		state.Filters.RangeDays = params.Range
	}
	if params.Sort != "" {
		state.Sort = models.SortingFieldFrom(params.Sort)
	}
	if params.Page >= 1 {
		state.Pagination.Page = params.Page
	}
	if params.Size >= 1 {
		state.Pagination.Size = params.Size
	}
	return state
}

// EncodeViewState is the state→URL direction: the canonical, minimal query
// string for a state, suitable for history replacement or share links.
func EncodeViewState(state models.ViewState, defaults models.PaginationDefaults) string {
	values := url.Values{}
	setNonEmpty(values, "status", state.Filters.Status)
	setNonEmpty(values, "urgency", state.Filters.Urgency)
	setNonEmpty(values, "severity", state.Filters.Severity)
	setNonEmpty(values, "customer", state.Filters.Customer)
	setNonEmpty(values, "q", state.Filters.Search)
	if state.Filters.RangeDays > 0 {
		values.Set("range", strconv.Itoa(state.Filters.RangeDays))
	}
	if state.Sort != models.SortByUrgency {
		values.Set("sort", string(state.Sort))
	}
	if state.Pagination.Page > 1 {
		values.Set("page", strconv.Itoa(state.Pagination.Page))
	}
	if state.Pagination.Size >= 1 && state.Pagination.Size != defaults.Size {
		values.Set("size", strconv.Itoa(state.Pagination.Size))
	}
	return values.Encode()
}

func setNonEmpty(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

// The filter params keep "" for unset or unrecognized values rather than
// defaulting to a real enum member: a garbled filter must widen the view,
// not silently narrow it.
func validStatusParam(s string) string {
	if slices.Contains(models.ValidDecisionStatuses, models.DecisionStatus(s)) ||
		slices.Contains(models.ValidEscalationStatuses, models.EscalationStatus(s)) {
		return s
	}
	return ""
}

func validUrgencyParam(s string) string {
	switch models.Urgency(s) {
	case models.UrgencyImmediate, models.UrgencyUrgent, models.UrgencySoon, models.UrgencyWatch:
		return s
	default:
		return ""
	}
}

func validSeverityParam(s string) string {
	switch models.Severity(s) {
	case models.SeverityCritical, models.SeverityHigh, models.SeverityMedium, models.SeverityLow:
		return s
	default:
		return ""
	}
}
