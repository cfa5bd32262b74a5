package domain

import (
	"sort"
	"strings"
)

// DeriveServiceTypes returns the set of service categories implied by package names.
// The category is the first whitespace-delimited token of the name, so "YouTube Pro"
// contributes "YouTube". The result is sorted; callers must not rely on any other order.
func DeriveServiceTypes(packages []Package) []string {
	seen := make(map[string]struct{}, len(packages))
	for _, p := range packages {
		if t := ServiceTypeOf(p); t != "" {
			seen[t] = struct{}{}
		}
	}

	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// ServiceTypeOf returns the service category of a single package, or "" for an empty name.
func ServiceTypeOf(p Package) string {
	fields := strings.Fields(p.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
