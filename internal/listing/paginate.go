package listing

import "github.com/MKhiriev/go-employee-registry/models"

// Page sizes of the two paginated screens.
const (
	PageSizeEmployees    = 6
	PageSizeActivityLogs = 10
)

// TotalPages returns ceil(n/size). A non-positive size yields 0.
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Paginate returns the 1-indexed page of records. A page outside
// [1, TotalPages] is not corrected and yields no items.
func Paginate[T any](records []T, page, size int) models.Page[T] {
	total := TotalPages(len(records), size)
	result := models.Page[T]{
		Items:      []T{},
		Page:       page,
		TotalPages: total,
		TotalItems: len(records),
	}

	if page < 1 || page > total {
		return result
	}

	start := (page - 1) * size
	end := min(start+size, len(records))
	result.Items = append(result.Items, records[start:end]...)
	return result
}

// ClampPage bounds page to [1, totalPages]. An empty collection has page 1.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	return max(1, min(page, totalPages))
}

// NextPage is the page the Next control moves to.
func NextPage(page, totalPages int) int {
	return ClampPage(page+1, totalPages)
}

// PrevPage is the page the Previous control moves to.
func PrevPage(page, totalPages int) int {
	return ClampPage(page-1, totalPages)
}
