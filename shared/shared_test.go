package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stay/shared"
	"stay/shared/dto"
)

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(int64(42), "user_id", "enrollments")

	assert.Len(t, group.Filters, 1)

	filter, ok := group.Filters[0].(dto.Filter)
	assert.True(t, ok)
	assert.Equal(t, "user_id", filter.Field)
	assert.Equal(t, "enrollments", filter.Table)
	assert.Equal(t, dto.FilterOperatorEq, filter.Operator)
	assert.Equal(t, int64(42), filter.Value)

	where, args := group.GetWhereClause()
	assert.Equal(t, "(enrollments.user_id = :user_id)", where)
	assert.Equal(t, map[string]any{"user_id": int64(42)}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "limiter:10.0.0.1:curl", shared.BuildCacheKey("limiter", "10.0.0.1", "curl"))
	assert.Equal(t, "limiter", shared.BuildCacheKey("limiter"))
}
