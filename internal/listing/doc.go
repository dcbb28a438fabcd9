// Package listing holds the employee listing pipeline: the pure
// search, designation filter, sort and paginate steps, and the Controller
// that keeps their derived page consistent with fetch results and with the
// "search" and "designation" URL query parameters.
package listing
