package models

import (
	"cmp"
	"slices"
)

// CompareTasks is the listing order of tasks: priority descending, then due
// date ascending with undated tasks last, then creation time descending.
// Ties on all three keys fall back to ascending ID so the order is total.
func CompareTasks(a, b Task) int {
	if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
		return c
	}

	switch {
	case a.DueDate != nil && b.DueDate == nil:
		return -1
	case a.DueDate == nil && b.DueDate != nil:
		return 1
	case a.DueDate != nil && b.DueDate != nil:
		if c := a.DueDate.Compare(b.DueDate.Time); c != 0 {
			return c
		}
	}

	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}

	return cmp.Compare(a.ID, b.ID)
}

// SortTasks orders tasks in place using [CompareTasks].
func SortTasks(tasks []Task) {
	slices.SortStableFunc(tasks, CompareTasks)
}
