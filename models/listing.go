package models

// SortOrder is the direction of the name sort in listings.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// DesignationAll is the designation filter value that disables filtering.
const DesignationAll = "all"

// ListingQuery is the query state of the employee listing.
//
// Search and Designation are mirrored in the "search" and "designation" URL
// query parameters; Sort and Page stay local.
type ListingQuery struct {
	Search      string
	Designation string
	Sort        SortOrder
	Page        int
}

// DefaultListingQuery returns the query state of a freshly opened listing.
func DefaultListingQuery() ListingQuery {
	return ListingQuery{
		Designation: DesignationAll,
		Sort:        SortAsc,
		Page:        1,
	}
}

// Page is one page of a paginated collection.
type Page[T any] struct {
	Items      []T
	Page       int
	TotalPages int
	TotalItems int
}

// DashboardStats aggregates what the admin dashboard displays.
type DashboardStats struct {
	TotalEmployees  int
	ByDesignation   map[string]int
	RecentAdditions []ActivityLog
}
