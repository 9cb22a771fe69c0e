package models

// Selection is the keyboard navigation state: a single index into the
// current page's visible items. -1 means nothing selected. Transitions are
// pure so the rendering layer can replay them on every key event.
type Selection struct {
	Index     int
	LastIndex int
}

// SelectionAction is what a key transition asks the caller to do.
type SelectionAction string

const (
	SelectionNone          SelectionAction = ""
	SelectionOpen          SelectionAction = "open"
	SelectionPrimaryAction SelectionAction = "primary_action"
)

type SelectionKey string

const (
	KeyNext     SelectionKey = "next"
	KeyPrevious SelectionKey = "previous"
	KeyOpen     SelectionKey = "open"
	KeyPrimary  SelectionKey = "primary"
)

func NewSelection(visibleCount int) Selection {
	return Selection{Index: -1, LastIndex: visibleCount - 1}
}

// Reset is applied whenever the visible page or the active filters change:
// the old index no longer points at the same entity.
func (s Selection) Reset(visibleCount int) Selection {
	return NewSelection(visibleCount)
}

func (s Selection) HasSelection() bool {
	return s.Index >= 0 && s.Index <= s.LastIndex
}

// Handle applies one key event. editableFocused suppresses all handling while
// focus is inside a text control; actionable reports whether the currently
// selected entity is in a status that allows the primary action.
func (s Selection) Handle(key SelectionKey, editableFocused bool, actionable func(index int) bool) (Selection, SelectionAction) {
	if editableFocused || s.LastIndex < 0 {
		return s, SelectionNone
	}
	switch key {
	case KeyNext:
		next := s.Index + 1
		if next > s.LastIndex {
			next = s.LastIndex
		}
		s.Index = next
		return s, SelectionNone
	case KeyPrevious:
		prev := s.Index - 1
		if prev < 0 {
			prev = 0
		}
		s.Index = prev
		return s, SelectionNone
	case KeyOpen:
		if !s.HasSelection() {
			return s, SelectionNone
		}
		return s, SelectionOpen
	case KeyPrimary:
		if !s.HasSelection() || actionable == nil || !actionable(s.Index) {
			return s, SelectionNone
		}
		return s, SelectionPrimaryAction
	default:
		return s, SelectionNone
	}
}
