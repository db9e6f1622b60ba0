package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationCreate_RequiresName(t *testing.T) {
	s := NewLocationService(newTestDB(t))

	_, err := s.Create("", "a@x.com")
	assert.ErrorIs(t, err, ErrLocationNameRequired)
}

func TestLocationCreateAndList(t *testing.T) {
	s := NewLocationService(newTestDB(t))

	loc, err := s.Create("Downtown depot", "a@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, loc.ID)
	assert.Equal(t, "a@x.com", loc.CreatedBy)
	assert.False(t, loc.CreatedAt.IsZero())

	locations, err := s.List()
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, loc.ID, locations[0].ID)
	assert.Equal(t, "Downtown depot", locations[0].Name)
}
