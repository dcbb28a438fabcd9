package listing

import (
	"slices"

	"github.com/MKhiriev/go-employee-registry/models"
)

// SortLogsByTimestampDesc returns a copy of logs, newest first. Entries with
// the same timestamp keep their input order.
func SortLogsByTimestampDesc(logs []models.ActivityLog) []models.ActivityLog {
	out := slices.Clone(logs)
	if out == nil {
		out = []models.ActivityLog{}
	}
	slices.SortStableFunc(out, func(a, b models.ActivityLog) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return out
}

// FilterLogsByAction keeps the entries with the given action.
// [models.ActionAll] and the empty action return logs unchanged.
func FilterLogsByAction(logs []models.ActivityLog, action models.Action) []models.ActivityLog {
	if action == "" || action == models.ActionAll {
		return logs
	}

	out := make([]models.ActivityLog, 0, len(logs))
	for _, l := range logs {
		if l.Action == action {
			out = append(out, l)
		}
	}
	return out
}
