package services

import (
	"testing"

	"github.com/promptdeck/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.users.Register(&models.CreateUserRequest{
		Email:    "alice@example.com",
		Nickname: "alice",
		Bio:      "prompt tinkerer",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, 0, user.FollowerCount)
}

func TestRegisterUserUniqueness(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "alice")

	_, err := env.users.Register(&models.CreateUserRequest{Email: "alice@example.com", Nickname: "alice2"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = env.users.Register(&models.CreateUserRequest{Email: "new@example.com", Nickname: "alice"})
	assert.ErrorIs(t, err, ErrNicknameTaken)
}

func TestGetUser(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")

	user, err := env.users.Get(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Nickname)

	_, err = env.users.Get(999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSearchUsers(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "alice")
	env.createUser(t, "alicia")
	env.createUser(t, "bob")

	users, total, err := env.users.Search("ali", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, users, 2)
}
