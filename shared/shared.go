package shared

import (
	"stay/shared/dto"
	"strings"
)

// FilterByID builds the single-equality filter group used by the
// lookup-by-identifier repository calls.
func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins key parts with the redis convention separator.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}
