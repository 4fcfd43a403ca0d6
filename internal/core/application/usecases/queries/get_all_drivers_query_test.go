package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllDriversQuery_Valid(t *testing.T) {
	query := queries.NewGetAllDriversQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetAllDriversQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllDriversQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllDriversQueryIsNotConstructed)
}
