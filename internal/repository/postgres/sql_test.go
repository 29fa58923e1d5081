package postgres

import (
	"testing"

	"github.com/maxviazov/talent-agency-service/internal/listing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhereEq(t *testing.T) {
	where, args, err := whereEq(listing.Filter{}, modelFilters, 1)
	require.NoError(t, err)
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args, err = whereEq(listing.Category("INTOWN"), modelFilters, 1)
	require.NoError(t, err)
	assert.Equal(t, " WHERE category = $1", where)
	assert.Equal(t, []any{"INTOWN"}, args)

	where, _, err = whereEq(listing.Equal(listing.FieldModelID, "m1"), archiveFilters, 3)
	require.NoError(t, err)
	assert.Equal(t, " WHERE a.model_id = $3", where)

	_, _, err = whereEq(listing.Equal("name; DROP TABLE models", "x"), modelFilters, 1)
	assert.Error(t, err)
}

func TestWindowArgs(t *testing.T) {
	sql, args, err := windowArgs(listing.Window{Offset: 20, Limit: 10}, 2)
	require.NoError(t, err)
	assert.Equal(t, " LIMIT $2 OFFSET $3", sql)
	assert.Equal(t, []any{10, 20}, args)

	_, args, err = windowArgs(listing.Window{Offset: 0, Limit: 0}, 1)
	require.NoError(t, err)
	assert.Equal(t, []any{listing.DefaultLimit, 0}, args)
}

func TestWindowArgs_RejectsNegativeOffset(t *testing.T) {
	_, _, err := windowArgs(listing.Window{Offset: -1, Limit: 10}, 1)
	assert.Error(t, err)
}

func TestWindowArgs_HugePageKeepsItsOffset(t *testing.T) {
	pr := listing.ParsePageRequest("100000000000000000", "100", 10)
	_, args, err := windowArgs(pr.Window(), 1)
	require.NoError(t, err)
	require.Len(t, args, 2)
	assert.Equal(t, 100, args[0])
	assert.Positive(t, args[1].(int))
	assert.Equal(t, pr.Offset(), args[1])
}

func TestNonNil(t *testing.T) {
	assert.NotNil(t, nonNil(nil))
	assert.Equal(t, []string{"a"}, nonNil([]string{"a"}))
}
