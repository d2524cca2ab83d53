package timer

// TagRegistry is an insertion-ordered set of unique tag names with a
// distinguished selection. The zero value is empty with no selection.
type TagRegistry struct {
	names    []string
	selected int // index into names; -1 when empty
}

// NewTagRegistry builds a registry from an ordered name list, selecting
// the first entry. Duplicates and empty names are skipped.
func NewTagRegistry(names []string) *TagRegistry {
	r := &TagRegistry{selected: -1}
	for _, n := range names {
		_ = r.Add(n)
	}
	return r
}

// Add appends a tag. The first tag added to an empty registry becomes
// the selection.
func (r *TagRegistry) Add(name string) error {
	if name == "" {
		return ErrUnknownTag
	}
	if r.indexOf(name) >= 0 {
		return ErrDuplicateTag
	}
	r.names = append(r.names, name)
	if r.selected < 0 {
		r.selected = 0
	}
	return nil
}

// Remove deletes a tag. When the selected tag is removed the selection
// moves to the next tag in insertion order, or the previous one if the
// removed tag was last, so it never dangles.
func (r *TagRegistry) Remove(name string) error {
	i := r.indexOf(name)
	if i < 0 {
		return ErrUnknownTag
	}

	r.names = append(r.names[:i], r.names[i+1:]...)

	switch {
	case len(r.names) == 0:
		r.selected = -1
	case i < r.selected:
		r.selected--
	case i == r.selected && r.selected >= len(r.names):
		r.selected = len(r.names) - 1
	}
	return nil
}

// Select makes name the current selection.
func (r *TagRegistry) Select(name string) error {
	i := r.indexOf(name)
	if i < 0 {
		return ErrUnknownTag
	}
	r.selected = i
	return nil
}

// SelectNext cycles the selection forward, wrapping around.
func (r *TagRegistry) SelectNext() {
	if len(r.names) > 0 {
		r.selected = (r.selected + 1) % len(r.names)
	}
}

// SelectPrev cycles the selection backward, wrapping around.
func (r *TagRegistry) SelectPrev() {
	if len(r.names) > 0 {
		r.selected = (r.selected + len(r.names) - 1) % len(r.names)
	}
}

// Selected returns the current tag name, or "" when the registry is
// empty.
func (r *TagRegistry) Selected() string {
	if r.selected < 0 {
		return ""
	}
	return r.names[r.selected]
}

// List returns the tag names in insertion order. The caller owns the
// returned slice.
func (r *TagRegistry) List() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len reports the number of tags.
func (r *TagRegistry) Len() int { return len(r.names) }

func (r *TagRegistry) indexOf(name string) int {
	for i, n := range r.names {
		if n == name {
			return i
		}
	}
	return -1
}
