package postgres

import (
	"encoding/json"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormJSON encodes v for a jsonb column in map-based updates, which bypass
// the model's json serializer.
func gormJSON(v any) clause.Expr {
	raw, err := json.Marshal(v)
	if err != nil {
		raw = []byte("null")
	}

	return gorm.Expr("?::jsonb", string(raw))
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
