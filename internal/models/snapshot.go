package models

import "time"

// Snapshot is the listing set of one brand in one category, captured at a
// point in time. Item IDs are unique within a snapshot.
type Snapshot struct {
	Brand      string
	Category   Category
	Items      []Item
	CapturedAt time.Time
}

// EmptySnapshot returns a zero-item snapshot for the given brand and category.
// Fetch failures are represented this way so a cycle can continue.
func EmptySnapshot(brand string, category Category) Snapshot {
	return Snapshot{Brand: brand, Category: category, CapturedAt: time.Now()}
}
