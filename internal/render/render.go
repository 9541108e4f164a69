// Package render turns a batch of newly detected listings into the two
// operator-facing forms: a console table and a Telegram HTML alert.
package render

import (
	"fmt"
	"html"
	"io"
	"strconv"

	"github.com/amonetti/nocwatch/internal/models"
	"github.com/olekukonko/tablewriter"
)

// FormatPrice renders an effective price with the shop's currency suffix.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64) + "€"
}

// Table writes one row per new item to w.
func Table(w io.Writer, brand string, items []models.Item) {
	fmt.Fprintf(w, "New products for %s\n", brand)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Brand", "Model", "Price", "Status", "Reserved"})

	for _, item := range items {
		table.Append([]string{
			item.Brand,
			item.Model,
			FormatPrice(item.EffectivePrice()),
			item.Status,
			strconv.FormatBool(item.Reserved),
		})
	}

	table.Render()
}

// AlertMessage builds the Telegram HTML alert for a batch of new items.
// Untrusted upstream strings are escaped so they cannot break the markup.
func AlertMessage(brand string, category models.Category, items []models.Item) string {
	message := fmt.Sprintf("New <b>%s</b> added for <b><i>%s</i></b>\nHere's a list:",
		category.Plural(), html.EscapeString(brand))

	for _, item := range items {
		message += fmt.Sprintf("\n    <b>%s</b> (<i>%s</i>) - %s",
			html.EscapeString(item.Model),
			html.EscapeString(item.Status),
			FormatPrice(item.EffectivePrice()))
	}

	return message
}
