// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package listing

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/MKhiriev/go-employee-registry/models"
)

// ApplySearch keeps the records whose name or email contains term, ignoring
// case. A blank term returns records unchanged.
func ApplySearch(records []models.Employee, term string) []models.Employee {
	term = strings.TrimSpace(term)
	if term == "" {
		return records
	}

	needle := strings.ToLower(term)
	out := make([]models.Employee, 0, len(records))
	for _, e := range records {
		if strings.Contains(strings.ToLower(e.Name), needle) ||
			strings.Contains(strings.ToLower(e.Email), needle) {
			out = append(out, e)
		}
	}
	return out
}

// ApplyDesignationFilter keeps the records whose designation equals filter
// exactly. [models.DesignationAll] and the empty filter return records
// unchanged.
func ApplyDesignationFilter(records []models.Employee, filter string) []models.Employee {
	if filter == "" || filter == models.DesignationAll {
		return records
	}

	out := make([]models.Employee, 0, len(records))
	for _, e := range records {
		if e.Designation == filter {
			out = append(out, e)
		}
	}
	return out
}

// ApplySort returns a copy of records sorted by name with the root collation.
// Equal names keep their input order in both directions.
func ApplySort(records []models.Employee, order models.SortOrder) []models.Employee {
	return ApplySortLocale(records, order, language.Und)
}

// ApplySortLocale is ApplySort with the collation rules of tag.
func ApplySortLocale(records []models.Employee, order models.SortOrder, tag language.Tag) []models.Employee {
	out := slices.Clone(records)
	if out == nil {
		out = []models.Employee{}
	}

	c := collate.New(tag)
	slices.SortStableFunc(out, func(a, b models.Employee) int {
		cmp := c.CompareString(a.Name, b.Name)
		if order == models.SortDesc {
			return -cmp
		}
		return cmp
	})
	return out
}

// Derive runs search, designation filter and sort for q. The page is not
// applied.
func Derive(records []models.Employee, q models.ListingQuery) []models.Employee {
	return ApplySort(ApplyDesignationFilter(ApplySearch(records, q.Search), q.Designation), q.Sort)
}

// Apply runs the whole pipeline and returns page q.Page of size pageSize.
func Apply(records []models.Employee, q models.ListingQuery, pageSize int) models.Page[models.Employee] {
	return Paginate(Derive(records, q), q.Page, pageSize)
}

// Designations returns the distinct non-empty designations of records in
// ascending order.
func Designations(records []models.Employee) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0)
	for _, e := range records {
		if e.Designation == "" {
			continue
		}
		if _, ok := seen[e.Designation]; ok {
			continue
		}
		seen[e.Designation] = struct{}{}
		out = append(out, e.Designation)
	}
	sort.Strings(out)
	return out
}
