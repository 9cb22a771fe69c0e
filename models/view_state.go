package models

// ViewState is the single filter/sort/page state shared by the saved-view
// store and the URL synchronizer. Transitions are pure: each returns the next
// state and never mutates the receiver, so every surface reading the state
// converges on the same view.
type ViewState struct {
	Filters    FilterCriteria
	Sort       SortingField
	Pagination Pagination
	Active     ActiveView
}

// ActiveView is a tagged union: either no named view is active, or exactly
// one saved view id is. Comparing ids by value avoids the false "named view"
// badge a nullable pointer comparison would produce after an edit.
type ActiveView struct {
	set bool
	id  string
}

func NoActiveView() ActiveView {
	return ActiveView{}
}

func ActiveViewId(id string) ActiveView {
	return ActiveView{set: true, id: id}
}

func (a ActiveView) Id() (string, bool) {
	return a.id, a.set
}

func DefaultViewState(defaults PaginationDefaults) ViewState {
	return ViewState{
		Sort:       SortByUrgency,
		Pagination: Pagination{Page: defaults.Page, Size: defaults.Size},
		Active:     NoActiveView(),
	}
}

// WithFilters applies a manual filter edit: cardinality changed, so the page
// resets to 1, and any active named view no longer describes the state.
func (s ViewState) WithFilters(f FilterCriteria) ViewState {
	s.Filters = f
	s.Pagination.Page = 1
	s.Active = NoActiveView()
	return s
}

// WithSort changes ordering only; the current page number is preserved.
func (s ViewState) WithSort(field SortingField) ViewState {
	s.Sort = field
	s.Active = NoActiveView()
	return s
}

func (s ViewState) WithPage(page int) ViewState {
	if page < 1 {
		page = 1
	}
	s.Pagination.Page = page
	return s
}

func (s ViewState) WithPageSize(size int) ViewState {
	if size >= 1 && size != s.Pagination.Size {
		s.Pagination.Size = size
		s.Pagination.Page = 1
	}
	return s
}

// WithAppliedView copies a saved view's snapshot into the state and marks it
// active. The snapshot is stored by value, so later changes to filter
// definitions never retroactively alter what the view means.
func (s ViewState) WithAppliedView(v SavedView) ViewState {
	s.Filters = v.Filters
	s.Sort = v.Sort
	s.Pagination.Page = 1
	s.Active = ActiveViewId(v.Id)
	return s
}
