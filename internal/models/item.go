package models

// Item is one product listing from the upstream catalog.
type Item struct {
	ID         string  // opaque upstream identifier, unique within a brand snapshot
	Brand      string
	Model      string
	PromoPrice float64 // 0 means no promotion
	ListPrice  float64
	Reserved   bool
	Status     string // free-text condition, e.g. "mint", "used"
}

// ResolvePrice returns the price to display: the promotional price when one
// is set (strictly positive), the list price otherwise.
func ResolvePrice(promo, list float64) float64 {
	if promo > 0 {
		return promo
	}
	return list
}

// EffectivePrice resolves the item's display price.
func (i Item) EffectivePrice() float64 {
	return ResolvePrice(i.PromoPrice, i.ListPrice)
}
