package services

import (
	"testing"

	"github.com/promptdeck/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowUpdatesCountersAndNotifies(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	require.NoError(t, env.follows.Follow(alice.ID, bob.ID))

	assert.Equal(t, 1, env.reloadUser(t, alice.ID).FollowingCount)
	assert.Equal(t, 1, env.reloadUser(t, bob.ID).FollowerCount)

	notifications := env.notificationsFor(t, bob.ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationTypeUserFollowed, notifications[0].Type)
	assert.Contains(t, notifications[0].Message, "alice")
}

func TestFollowSelfForbidden(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")

	err := env.follows.Follow(alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfFollow)
}

func TestFollowDuplicateConflicts(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	require.NoError(t, env.follows.Follow(alice.ID, bob.ID))
	err := env.follows.Follow(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrAlreadyFollowing)

	// Counters moved exactly once.
	assert.Equal(t, 1, env.reloadUser(t, alice.ID).FollowingCount)
	assert.Equal(t, 1, env.reloadUser(t, bob.ID).FollowerCount)
}

func TestFollowUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")

	assert.ErrorIs(t, env.follows.Follow(alice.ID, 999), ErrUserNotFound)
	assert.ErrorIs(t, env.follows.Follow(999, alice.ID), ErrUserNotFound)
}

func TestUnfollowRestoresCounters(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	require.NoError(t, env.follows.Follow(alice.ID, bob.ID))
	require.NoError(t, env.follows.Unfollow(alice.ID, bob.ID))

	assert.Equal(t, 0, env.reloadUser(t, alice.ID).FollowingCount)
	assert.Equal(t, 0, env.reloadUser(t, bob.ID).FollowerCount)
}

func TestUnfollowWithoutEdge(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	err := env.follows.Unfollow(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFollowing)
	assert.Equal(t, 0, env.reloadUser(t, alice.ID).FollowingCount)
}

func TestFollowStatusBothDirections(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	require.NoError(t, env.follows.Follow(alice.ID, bob.ID))

	status, err := env.follows.Status(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, status.IsFollowing)
	assert.False(t, status.IsFollowedBy)

	status, err = env.follows.Status(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, status.IsFollowing)
	assert.True(t, status.IsFollowedBy)
}

func TestListFollowersAnnotatesRequesterEdge(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	carol := env.createUser(t, "carol")

	require.NoError(t, env.follows.Follow(bob.ID, alice.ID))
	require.NoError(t, env.follows.Follow(carol.ID, alice.ID))
	// Carol also follows bob, so bob shows up annotated for her.
	require.NoError(t, env.follows.Follow(carol.ID, bob.ID))

	entries, total, err := env.follows.ListFollowers(alice.ID, carol.ID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, entries, 2)

	byNickname := make(map[string]models.FollowUserEntry)
	for _, e := range entries {
		byNickname[e.Nickname] = e
	}
	assert.True(t, byNickname["bob"].IsFollowing)
	assert.False(t, byNickname["carol"].IsFollowing)
}

func TestListFollowingPaginates(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	for _, name := range []string{"u1", "u2", "u3"} {
		target := env.createUser(t, name)
		require.NoError(t, env.follows.Follow(alice.ID, target.ID))
	}

	entries, total, err := env.follows.ListFollowing(alice.ID, 0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, entries, 2)

	entries, _, err = env.follows.ListFollowing(alice.ID, 0, 2, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
