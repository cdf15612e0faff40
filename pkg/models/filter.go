package models

import (
	"fmt"
	"strings"
)

type Filter string

const FilterAll Filter = "all"

// ParseFilter accepts "all" or a registry category name, case-insensitively.
// An empty value is treated as "all".
func ParseFilter(s string) (Filter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 0 || s == string(FilterAll) {
		return FilterAll, nil
	}

	if !IsCategory(s) {
		return "", fmt.Errorf("unknown category, %s", s)
	}

	return Filter(s), nil
}

func (f Filter) IsAll() bool {
	return f == FilterAll
}

// Category returns the category the filter selects, or "" for "all".
func (f Filter) Category() string {
	if f.IsAll() {
		return ""
	}
	return string(f)
}

// Matches reports whether a fact belongs in the feed for this filter.
func (f Filter) Matches(fact Fact) bool {
	return f.IsAll() || fact.Category == string(f)
}
