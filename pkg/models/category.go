package models

import "strings"

type Category struct {
	Name  string
	Color string
}

var categories = []Category{
	{Name: "technology", Color: "#3b82f6"},
	{Name: "science", Color: "#16a34a"},
	{Name: "finance", Color: "#ef4444"},
	{Name: "society", Color: "#eab308"},
	{Name: "entertainment", Color: "#db2777"},
	{Name: "health", Color: "#14b8a6"},
	{Name: "history", Color: "#f97316"},
	{Name: "news", Color: "#8b5cf6"},
}

// Categories returns the registry in display order.
func Categories() []Category {
	c := make([]Category, len(categories))
	copy(c, categories)
	return c
}

func LookupCategory(name string) (Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

func IsCategory(name string) bool {
	_, ok := LookupCategory(name)
	return ok
}

// DisplayName is the upper-cased label used in the submission form.
func (c Category) DisplayName() string {
	return strings.ToUpper(c.Name)
}
