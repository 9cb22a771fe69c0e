package models

type Pagination struct {
	Page int
	Size int
}

type PaginationDefaults struct {
	Page int
	Size int
}

func WithPaginationDefaults(p Pagination, defaults PaginationDefaults) Pagination {
	if p.Page < 1 {
		p.Page = defaults.Page
	}
	if p.Size < 1 {
		p.Size = defaults.Size
	}
	return p
}

// TotalPages is never zero: an empty result still renders page 1 of 1.
func (p Pagination) TotalPages(total int) int {
	if p.Size < 1 || total <= 0 {
		return 1
	}
	return (total + p.Size - 1) / p.Size
}

// Bounds returns the half-open slice range [(page-1)*size, page*size)
// clamped to [0, total].
func (p Pagination) Bounds(total int) (start, end int) {
	if p.Size < 1 {
		return 0, total
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	start = (page - 1) * p.Size
	if start > total {
		start = total
	}
	end = start + p.Size
	if end > total {
		end = total
	}
	return start, end
}

// Paginate slices one page out of the full filtered+sorted sequence.
func Paginate[T any](items []T, p Pagination) []T {
	start, end := p.Bounds(len(items))
	return items[start:end]
}

type Page[T any] struct {
	Items      []T
	Page       int
	Size       int
	Total      int
	TotalPages int
}

func NewPage[T any](items []T, p Pagination) Page[T] {
	return Page[T]{
		Items:      Paginate(items, p),
		Page:       p.Page,
		Size:       p.Size,
		Total:      len(items),
		TotalPages: p.TotalPages(len(items)),
	}
}
