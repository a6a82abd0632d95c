package sortedset

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NewCollated creates an empty set of strings ordered by the collation rules
// of a language, e.g.
//
//	s := NewCollated(language.German)
//	s.Insert("Äpfel") // sorts between "Apfel" and "Birne"
//
// Options (collate.IgnoreCase, collate.Numeric, …) adjust the collation.
// Strings which the collator considers equal are equivalent elements, so
// with collate.IgnoreCase "Go" and "go" occupy a single slot.
//
// A collator is not safe for concurrent use; neither is the resulting set.
func NewCollated(tag language.Tag, opts ...collate.Option) *Set[string] {
	c := collate.New(tag, opts...)
	s, err := NewFunc(func(a, b string) bool {
		return c.CompareString(a, b) < 0
	})
	must(err == nil, "NewCollated: cannot create set")
	return s
}
