package domain

import (
	"sort"
	"strings"
)

// TemplateSet is a session-scoped, name-ordered collection of food
// templates. It is owned by whoever runs the template picker and passed in
// explicitly; nothing in the process holds it as shared global state.
type TemplateSet struct {
	templates []Template
}

// NewTemplateSet returns an empty template set.
func NewTemplateSet() *TemplateSet {
	return &TemplateSet{}
}

// Add inserts a template, keeping the set ordered by name.
func (ts *TemplateSet) Add(t Template) {
	t.Name = TruncateName(t.Name)
	ts.templates = append(ts.templates, t)
	sort.Slice(ts.templates, func(i, j int) bool {
		return ts.templates[i].Name < ts.templates[j].Name
	})
}

// Remove deletes every template whose name matches exactly. Equality is by
// name only.
func (ts *TemplateSet) Remove(name string) {
	kept := ts.templates[:0]
	for _, t := range ts.templates {
		if t.Name != name {
			kept = append(kept, t)
		}
	}
	ts.templates = kept
}

// Filter returns the templates whose names contain the search term as a
// case-sensitive substring, in name order. An empty term matches all.
func (ts *TemplateSet) Filter(term string) []Template {
	if term == "" {
		return append([]Template(nil), ts.templates...)
	}
	var out []Template
	for _, t := range ts.templates {
		if strings.Contains(t.Name, term) {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of templates in the set.
func (ts *TemplateSet) Len() int {
	return len(ts.templates)
}
