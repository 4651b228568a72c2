package application

import (
	"testing"
	"time"

	"github.com/ansmoore/UrentScoutsBot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookups(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry(testRoster())
	require.NoError(t, err)

	assert.True(t, registry.IsAuthorized(ownerID))
	assert.True(t, registry.IsAuthorized(scoutID))
	assert.False(t, registry.IsAuthorized("999"))

	role, err := registry.Role(ownerID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleOwner, role)

	role, err = registry.Role(scout2ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleScout, role)

	_, err = registry.Role("999")
	assert.ErrorIs(t, err, domain.ErrUnknownWorker)

	allowance, err := registry.Allowance(scout2ID)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, allowance)

	_, err = registry.Allowance(ownerID)
	assert.ErrorIs(t, err, domain.ErrNotScout)

	assert.Equal(t, 12*time.Hour, registry.MinimumShift(scoutID))
	assert.Zero(t, registry.MinimumShift(ownerID))

	assert.Equal(t, "Anna (@anna)", registry.DisplayName(ownerID))
	assert.Equal(t, "Ivan (@ivan)", registry.DisplayName(scoutID))
	assert.Equal(t, "User", registry.DisplayName("999"))

	assert.Equal(t, groupID, registry.GroupChat())
	scouts := registry.Scouts()
	require.Len(t, scouts, 2)
	assert.Equal(t, scoutID, scouts[0].ID)
	assert.Equal(t, scout2ID, scouts[1].ID)
}

func TestNewRegistryRejectsInvalidRoster(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry(domain.Roster{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate roster")
}
