// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package listing

import (
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-employee-registry/models"
)

// URL query parameters owned by the listing.
const (
	ParamSearch      = "search"
	ParamDesignation = "designation"
)

// Status is the fetch state of the listing.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// View is a snapshot of the controller for rendering.
type View struct {
	Status       Status
	Err          error
	Query        models.ListingQuery
	Page         models.Page[models.Employee]
	Designations []string
}

// Controller owns the listing state. Every input goes through one of its
// methods; derived data is recomputed eagerly so View is always consistent.
//
// URL → state happens only in Navigate, state → URL only through the
// URLChanged result of SetSearch and SetDesignation. The last URL the
// controller has seen or produced is remembered so that echoing a navigation
// back never reports a change.
type Controller struct {
	mu sync.Mutex

	pageSize int
	seq      uint64

	status  Status
	err     error
	records []models.Employee
	derived []models.Employee
	query   models.ListingQuery

	lastURL string
}

// NewController returns a controller in the loading state. A non-positive
// pageSize falls back to [PageSizeEmployees].
func NewController(pageSize int) *Controller {
	if pageSize <= 0 {
		pageSize = PageSizeEmployees
	}
	c := &Controller{
		pageSize: pageSize,
		status:   StatusLoading,
		query:    models.DefaultListingQuery(),
		records:  []models.Employee{},
		derived:  []models.Employee{},
	}
	c.lastURL = c.encodeLocked()
	return c
}

// BeginFetch marks the listing as loading and returns the sequence number the
// caller must hand back to Loaded or Failed.
func (c *Controller) BeginFetch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.status = StatusLoading
	c.err = nil
	return c.seq
}

// Loaded installs records fetched for seq. Responses for an older sequence
// are discarded and false is returned.
func (c *Controller) Loaded(seq uint64, records []models.Employee) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		return false
	}

	c.records = append([]models.Employee{}, records...)
	c.status = StatusReady
	c.err = nil
	c.rederiveLocked()
	return true
}

// Failed records the fetch error for seq. Stale sequences are discarded.
// The previously loaded records are kept.
func (c *Controller) Failed(seq uint64, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		return false
	}

	c.status = StatusFailed
	c.err = err
	return true
}

// SetSearch changes the search term. It reports whether the owned URL query
// changed and the host should navigate to [Controller.Query].
func (c *Controller) SetSearch(term string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if term == c.query.Search {
		return false
	}
	c.query.Search = term
	c.rederiveLocked()
	return c.syncURLLocked()
}

// SetDesignation changes the designation filter; "" means all. It reports
// whether the owned URL query changed.
func (c *Controller) SetDesignation(designation string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if designation == "" {
		designation = models.DesignationAll
	}
	if designation == c.query.Designation {
		return false
	}
	c.query.Designation = designation
	c.rederiveLocked()
	return c.syncURLLocked()
}

// SetSort changes the sort order. Unknown orders are ignored.
func (c *Controller) SetSort(order models.SortOrder) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if order != models.SortAsc && order != models.SortDesc {
		return
	}
	if order == c.query.Sort {
		return
	}
	c.query.Sort = order
	c.rederiveLocked()
}

// ToggleSort flips between ascending and descending order.
func (c *Controller) ToggleSort() {
	c.mu.Lock()
	current := c.query.Sort
	c.mu.Unlock()

	if current == models.SortDesc {
		c.SetSort(models.SortAsc)
		return
	}
	c.SetSort(models.SortDesc)
}

// SetPage moves to page as given. Out-of-range pages render empty.
func (c *Controller) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.query.Page = page
}

// Next moves one page forward, clamped to the last page.
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.query.Page = NextPage(c.query.Page, TotalPages(len(c.derived), c.pageSize))
}

// Prev moves one page back, clamped to the first page.
func (c *Controller) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.query.Page = PrevPage(c.query.Page, TotalPages(len(c.derived), c.pageSize))
}

// Navigate seeds search and designation from URL query values. It never
// asks for a URL write back.
func (c *Controller) Navigate(values url.Values) {
	c.mu.Lock()
	defer c.mu.Unlock()

	search := values.Get(ParamSearch)
	designation := values.Get(ParamDesignation)
	if designation == "" {
		designation = models.DesignationAll
	}

	changed := false
	if search != c.query.Search {
		c.query.Search = search
		changed = true
	}
	if designation != c.query.Designation {
		c.query.Designation = designation
		changed = true
	}
	if changed {
		c.rederiveLocked()
	}
	c.lastURL = c.encodeLocked()
}

// Query returns the URL query values owned by the listing. "designation" is
// omitted for all designations and "search" for a blank term.
func (c *Controller) Query() url.Values {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.valuesLocked()
}

// View returns the current page and query state.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	return View{
		Status:       c.status,
		Err:          c.err,
		Query:        c.query,
		Page:         Paginate(c.derived, c.query.Page, c.pageSize),
		Designations: Designations(c.records),
	}
}

func (c *Controller) rederiveLocked() {
	c.derived = Derive(c.records, c.query)
	c.query.Page = 1
}

func (c *Controller) valuesLocked() url.Values {
	values := url.Values{}
	if term := strings.TrimSpace(c.query.Search); term != "" {
		values.Set(ParamSearch, c.query.Search)
	}
	if c.query.Designation != "" && c.query.Designation != models.DesignationAll {
		values.Set(ParamDesignation, c.query.Designation)
	}
	return values
}

func (c *Controller) encodeLocked() string {
	return c.valuesLocked().Encode()
}

func (c *Controller) syncURLLocked() bool {
	encoded := c.encodeLocked()
	if encoded == c.lastURL {
		return false
	}
	c.lastURL = encoded
	return true
}
