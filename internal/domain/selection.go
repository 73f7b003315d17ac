package domain

// Selection maps a single focus index over a composite list: a fixed prefix
// of action items followed by a dynamic-length suffix (foods, templates).
// It also owns the scroll window over the dynamic suffix.
//
// Invariants: 0 <= Index < Fixed+Dynamic whenever the list is non-empty, and
// 0 <= Scroll <= max(0, Dynamic-visibleSlots).
type Selection struct {
	Fixed   int // number of fixed action items at the top
	Dynamic int // current length of the dynamic suffix
	Index   int // focused index over the whole composite list
	Scroll  int // scroll offset into the dynamic suffix
}

// Total returns the number of selectable entries.
func (s *Selection) Total() int {
	return s.Fixed + s.Dynamic
}

// DynamicIndex returns the index into the dynamic suffix, or -1 when a
// fixed item is focused.
func (s *Selection) DynamicIndex() int {
	if s.Index < s.Fixed {
		return -1
	}
	return s.Index - s.Fixed
}

// Next advances the focus, wrapping to the top past the last entry.
func (s *Selection) Next(visibleSlots int) {
	if s.Total() == 0 {
		return
	}
	s.Index = (s.Index + 1) % s.Total()
	s.clampScroll(visibleSlots)
}

// Prev retreats the focus, wrapping to the last entry from the top.
func (s *Selection) Prev(visibleSlots int) {
	if s.Total() == 0 {
		return
	}
	s.Index = (s.Index - 1 + s.Total()) % s.Total()
	s.clampScroll(visibleSlots)
}

// clampScroll keeps the focused dynamic entry inside the visible window.
// Focusing the fixed prefix resets the window to the top.
func (s *Selection) clampScroll(visibleSlots int) {
	di := s.DynamicIndex()
	if di < 0 {
		s.Scroll = 0
		return
	}
	if visibleSlots < 0 {
		visibleSlots = 0
	}
	if di >= s.Scroll+visibleSlots {
		s.Scroll = di - visibleSlots + 1
	}
	if di < s.Scroll {
		s.Scroll = di
	}
}

// Resize records a new dynamic suffix length and re-clamps both the focus
// and the scroll window, e.g. after a deletion or a filter change. The
// focus lands on the nearest surviving entry; when the suffix empties it
// falls back into the fixed prefix.
func (s *Selection) Resize(dynamic, visibleSlots int) {
	s.Dynamic = dynamic
	if s.Total() == 0 {
		s.Index = 0
		s.Scroll = 0
		return
	}
	if s.Index >= s.Total() {
		s.Index = s.Total() - 1
	}
	max := s.Dynamic - visibleSlots
	if max < 0 {
		max = 0
	}
	if s.Scroll > max {
		s.Scroll = max
	}
	if s.Scroll < 0 {
		s.Scroll = 0
	}
	s.clampScroll(visibleSlots)
}

// Reset moves the focus back to the first entry and the window to the top.
func (s *Selection) Reset() {
	s.Index = 0
	s.Scroll = 0
}
