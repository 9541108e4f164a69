package fetcher

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/amonetti/nocwatch/internal/models"
)

// normalizeItem maps one raw upstream record onto an Item. Missing or
// mistyped fields coerce to zero values instead of failing the record.
func normalizeItem(record map[string]any, brand string) models.Item {
	itemBrand := asString(record["marca"])
	if itemBrand == "" {
		itemBrand = brand
	}

	return models.Item{
		ID:         asString(record["ID"]),
		Brand:      itemBrand,
		Model:      asString(record["modello"]),
		PromoPrice: asFloat(record["prezzopromozione"]),
		ListPrice:  asFloat(record["prezzovendita"]),
		Reserved:   asBool(record["prenotato"]),
		Status:     asString(record["stato"]),
	}
}

// asString renders scalar values as strings; numeric IDs keep their exact
// integer form.
func asString(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

// asFloat coerces numeric-looking values to a non-negative float64.
func asFloat(value any) float64 {
	var parsed float64
	switch v := value.(type) {
	case float64:
		parsed = v
	case json.Number:
		parsed, _ = v.Float64()
	case int:
		parsed = float64(v)
	case int64:
		parsed = float64(v)
	case string:
		parsed, _ = strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0
	}

	if parsed < 0 {
		return 0
	}
	return parsed
}

// asBool coerces the upstream 0/1 reserved flag. Anything that cannot be
// read as a number fails closed to false.
func asBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case json.Number:
		parsed, err := v.Float64()
		return err == nil && parsed != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return err == nil && parsed != 0
	default:
		return false
	}
}
