package lessonplan

import (
	"slices"
	"strings"
)

// LabelSet is an immutable set of opaque labels. It keeps first-insertion
// order so anything rendered from it is deterministic.
type LabelSet struct {
	labels []string
}

// NewLabelSet builds a set from labels, dropping blanks and duplicates.
func NewLabelSet(labels ...string) LabelSet {
	var s LabelSet
	for _, l := range labels {
		s = s.With(l)
	}
	return s
}

// With returns a copy of s that contains label.
func (s LabelSet) With(label string) LabelSet {
	label = strings.TrimSpace(label)
	if label == "" || s.Contains(label) {
		return s
	}
	out := make([]string, len(s.labels), len(s.labels)+1)
	copy(out, s.labels)
	return LabelSet{labels: append(out, label)}
}

// Without returns a copy of s that does not contain label.
func (s LabelSet) Without(label string) LabelSet {
	label = strings.TrimSpace(label)
	idx := slices.Index(s.labels, label)
	if idx < 0 {
		return s
	}
	out := make([]string, 0, len(s.labels)-1)
	out = append(out, s.labels[:idx]...)
	out = append(out, s.labels[idx+1:]...)
	return LabelSet{labels: out}
}

func (s LabelSet) Contains(label string) bool {
	return slices.Contains(s.labels, label)
}

func (s LabelSet) Len() int { return len(s.labels) }

func (s LabelSet) IsEmpty() bool { return len(s.labels) == 0 }

// Labels returns a copy of the members in insertion order.
func (s LabelSet) Labels() []string {
	return slices.Clone(s.labels)
}

// Join renders the members as a single string for embedding in prose.
func (s LabelSet) Join(sep string) string {
	return strings.Join(s.labels, sep)
}

// Equal reports whether both sets hold the same members, ignoring order.
func (s LabelSet) Equal(other LabelSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, l := range s.labels {
		if !other.Contains(l) {
			return false
		}
	}
	return true
}
