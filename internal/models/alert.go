package models

import "time"

// Alert is one notified listing, as stored in the journal.
type Alert struct {
	Brand     string
	Category  string
	Model     string
	Price     float64
	Status    string
	CreatedAt time.Time
}

// AlertsFromItems converts a batch of newly detected items into journal rows.
func AlertsFromItems(category Category, items []Item) []Alert {
	alerts := make([]Alert, 0, len(items))
	for _, item := range items {
		alerts = append(alerts, Alert{
			Brand:    item.Brand,
			Category: category.String(),
			Model:    item.Model,
			Price:    item.EffectivePrice(),
			Status:   item.Status,
		})
	}
	return alerts
}
