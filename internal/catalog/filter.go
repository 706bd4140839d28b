package catalog

import "strings"

// Project returns the subset of cars matching the free-text term and the
// category, preserving input order. A car matches when the term is a
// case-insensitive substring of its name, vin or color, AND the category is
// either empty or equal to the car's category exactly. The result is
// recomputed from scratch on every call; the catalog is small enough that
// incremental diffing would buy nothing.
func Project(cars []Car, term, category string) []Car {
	needle := strings.ToLower(term)

	matched := make([]Car, 0, len(cars))
	for _, car := range cars {
		if !matchesTerm(car, needle) {
			continue
		}
		if category != "" && car.Category != category {
			continue
		}
		matched = append(matched, car)
	}
	return matched
}

// matchesTerm checks the lowercased term against name, vin and color.
// Empty optional fields never match a non-empty term.
func matchesTerm(car Car, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(car.Name), needle) {
		return true
	}
	if car.Vin != "" && strings.Contains(strings.ToLower(car.Vin), needle) {
		return true
	}
	if car.Color != "" && strings.Contains(strings.ToLower(car.Color), needle) {
		return true
	}
	return false
}
