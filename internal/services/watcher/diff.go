package watcher

import "github.com/amonetti/nocwatch/internal/models"

// NewItems returns the items of curr whose ID was absent from prev, in
// curr's order. Identity is the only criterion: an existing ID whose fields
// changed is not new. The function is pure.
func NewItems(prev, curr models.Snapshot) []models.Item {
	known := make(map[string]struct{}, len(prev.Items))
	for _, item := range prev.Items {
		known[item.ID] = struct{}{}
	}

	var added []models.Item
	for _, item := range curr.Items {
		if _, found := known[item.ID]; !found {
			added = append(added, item)
		}
	}

	return added
}
