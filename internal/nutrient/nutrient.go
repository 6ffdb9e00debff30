// Package nutrient parses the packed nutrient field printed on product
// labels: a comma-separated list of "name(quantity)" items where the
// quantity may itself contain commas as decimal separators, e.g.
// "Bílkoviny(1 g), Tuky(0,5 g), Nasycené mastné kyseliny(0,1 g)".
package nutrient

import "strings"

// Entry is one parsed nutrient item. Quantity keeps the raw label text,
// decimal commas included.
type Entry struct {
	Name     string
	Quantity string
}

// Parse splits a packed nutrient field into its entries, in input order.
// A comma only terminates an item while no parenthesis group is open, so
// decimal commas inside "(...)" stay part of the quantity. An item without
// a parenthesis pair degrades to an entry with the whole trimmed item as
// the name and an empty quantity. Empty or blank input yields no entries.
func Parse(text string) []Entry {
	var entries []Entry
	for _, item := range splitItems(text) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		entries = append(entries, splitItem(item))
	}
	return entries
}

// splitItems cuts the text at commas that sit outside any parenthesis
// group. The first ')' closes an open group; the label grammar has no
// nesting.
func splitItems(text string) []string {
	var items []string
	start := 0
	open := false
	for i, r := range text {
		switch r {
		case '(':
			open = true
		case ')':
			open = false
		case ',':
			if !open {
				items = append(items, text[start:i])
				start = i + 1
			}
		}
	}
	if start < len(text) {
		items = append(items, text[start:])
	}
	return items
}

// splitItem separates "Name(quantity)" into its parts. Anything after the
// quantity's closing parenthesis is discarded.
func splitItem(item string) Entry {
	openIdx := strings.IndexByte(item, '(')
	if openIdx < 0 {
		return Entry{Name: item}
	}
	closeIdx := strings.IndexByte(item[openIdx:], ')')
	if closeIdx < 0 {
		return Entry{Name: item}
	}
	return Entry{
		Name:     strings.TrimSpace(item[:openIdx]),
		Quantity: strings.TrimSpace(item[openIdx+1 : openIdx+closeIdx]),
	}
}
