// Package vocabulary aggregates vocabulary identifiers referenced by, or
// installed in, a CARDS repository.
package vocabulary

import (
	"sort"

	"github.com/veronikaslc/cards/internal/client/cards"
)

// Set is a set of unique vocabulary identifiers.
type Set struct {
	members map[string]struct{}
}

// NewSet returns a set holding ids.
func NewSet(ids ...string) Set {
	s := Set{members: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id. Adding an existing member is a no-op.
func (s *Set) Add(id string) {
	if s.members == nil {
		s.members = make(map[string]struct{})
	}
	s.members[id] = struct{}{}
}

// Has reports whether id is a member.
func (s Set) Has(id string) bool {
	_, ok := s.members[id]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s.members)
}

// Members returns the members in ascending order.
func (s Set) Members() []string {
	out := make([]string, 0, len(s.members))
	for id := range s.members {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Difference returns the members of s that are not in other.
func (s Set) Difference(other Set) Set {
	out := NewSet()
	for id := range s.members {
		if !other.Has(id) {
			out.Add(id)
		}
	}
	return out
}

// Required collects every source vocabulary referenced by rows.
func Required(rows []cards.QuestionRow) Set {
	s := NewSet()
	for _, row := range rows {
		for _, id := range row.SourceVocabularies {
			s.Add(id)
		}
	}
	return s
}

// Installed collects the identifiers of installed vocabularies.
func Installed(rows []cards.VocabularyRow) Set {
	s := NewSet()
	for _, row := range rows {
		s.Add(row.Identifier)
	}
	return s
}
