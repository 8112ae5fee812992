package narrow

import (
	"sort"
	"strings"
)

// Set is an ordered collection of unique item labels. Labels are opaque and
// compared with exact, case-sensitive string equality. A Set is never mutated
// after construction; narrowing steps build replacement sets.
type Set struct {
	items []string
}

// NewSet builds a Set from labels, preserving first-seen order and dropping
// duplicates and empty labels.
func NewSet(labels ...string) Set {
	seen := make(map[string]bool, len(labels))
	items := make([]string, 0, len(labels))
	for _, l := range labels {
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		items = append(items, l)
	}
	return Set{items: items}
}

// Len returns the number of items in the set.
func (s Set) Len() int { return len(s.items) }

// Items returns a copy of the labels in order.
func (s Set) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// At returns the label at position i (zero-based).
func (s Set) At(i int) string { return s.items[i] }

// Contains reports whether label is a member of the set.
func (s Set) Contains(label string) bool {
	for _, l := range s.items {
		if l == label {
			return true
		}
	}
	return false
}

// Equal reports whether both sets hold exactly the same labels, ignoring order.
func (s Set) Equal(other Set) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for _, l := range s.items {
		if !other.Contains(l) {
			return false
		}
	}
	return true
}

// Intersect returns the members of s that appear in labels, keeping s's order.
func (s Set) Intersect(labels []string) Set {
	want := make(map[string]bool, len(labels))
	for _, l := range labels {
		want[l] = true
	}
	items := make([]string, 0, len(s.items))
	for _, l := range s.items {
		if want[l] {
			items = append(items, l)
		}
	}
	return Set{items: items}
}

// Without returns the members of s that do not appear in other.
func (s Set) Without(other Set) Set {
	items := make([]string, 0, len(s.items))
	for _, l := range s.items {
		if !other.Contains(l) {
			items = append(items, l)
		}
	}
	return Set{items: items}
}

// Key returns a canonical, order-insensitive snapshot key for cycle detection.
func (s Set) Key() string {
	sorted := s.Items()
	sort.Strings(sorted)
	return strings.Join(sorted, "\x1f")
}

// String renders the set as a bracketed list for prompts and diagnostics.
func (s Set) String() string {
	return "[" + strings.Join(s.items, ", ") + "]"
}
