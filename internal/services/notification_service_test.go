package services

import (
	"testing"
	"time"

	"github.com/promptdeck/backend/internal/models"
	"github.com/promptdeck/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) createNotification(t *testing.T, recipientID uint, notifType string, isRead bool, age time.Duration) *models.Notification {
	t.Helper()
	createdAt := time.Now().Add(-age)
	notification := &models.Notification{
		RecipientID: recipientID,
		Type:        notifType,
		Title:       "test",
		Message:     "test",
		IsRead:      isRead,
		CreatedAt:   createdAt,
	}
	if isRead {
		notification.ReadAt = &createdAt
	}
	require.NoError(t, e.db.Create(notification).Error)
	return notification
}

func TestListNotificationsFilters(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user")

	env.createNotification(t, user.ID, models.NotificationTypePromptLiked, false, 0)
	env.createNotification(t, user.ID, models.NotificationTypePromptLiked, true, time.Hour)
	env.createNotification(t, user.ID, models.NotificationTypeUserFollowed, false, 2*time.Hour)

	all, total, err := env.notifs.List(user.ID, repositories.NotificationFilter{}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)

	unread, total, err := env.notifs.List(user.ID, repositories.NotificationFilter{UnreadOnly: true}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, unread, 2)

	follows, total, err := env.notifs.List(user.ID, repositories.NotificationFilter{Type: models.NotificationTypeUserFollowed}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, follows, 1)
	assert.Equal(t, models.NotificationTypeUserFollowed, follows[0].Type)
}

func TestMarkAsReadSetsTimestamp(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user")
	notification := env.createNotification(t, user.ID, models.NotificationTypePromptLiked, false, 0)

	require.NoError(t, env.notifs.MarkAsRead(user.ID, notification.ID))

	rows := env.notificationsFor(t, user.ID)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsRead)
	assert.NotNil(t, rows[0].ReadAt)

	// Marking again is a no-op, not an error.
	assert.NoError(t, env.notifs.MarkAsRead(user.ID, notification.ID))
}

func TestMarkAsReadOwnership(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user")
	other := env.createUser(t, "other")
	notification := env.createNotification(t, user.ID, models.NotificationTypePromptLiked, false, 0)

	assert.ErrorIs(t, env.notifs.MarkAsRead(other.ID, notification.ID), ErrNotificationAccessDenied)
	assert.ErrorIs(t, env.notifs.MarkAsRead(user.ID, 999), ErrNotificationNotFound)
}

func TestMarkAllAsReadReportsCount(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user")
	other := env.createUser(t, "other")

	env.createNotification(t, user.ID, models.NotificationTypePromptLiked, false, 0)
	env.createNotification(t, user.ID, models.NotificationTypeUserFollowed, false, 0)
	env.createNotification(t, user.ID, models.NotificationTypePromptRated, true, 0)
	env.createNotification(t, other.ID, models.NotificationTypePromptLiked, false, 0)

	updated, err := env.notifs.MarkAllAsRead(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	count, err := env.notifs.UnreadCount(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// The other user's unread notification is untouched.
	count, err = env.notifs.UnreadCount(other.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDeleteNotificationOwnership(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user")
	other := env.createUser(t, "other")
	notification := env.createNotification(t, user.ID, models.NotificationTypePromptLiked, false, 0)

	assert.ErrorIs(t, env.notifs.Delete(other.ID, notification.ID), ErrNotificationAccessDenied)
	require.NoError(t, env.notifs.Delete(user.ID, notification.ID))
	assert.Empty(t, env.notificationsFor(t, user.ID))
}

func TestCleanupRetentionWindows(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user")

	// Read: kept inside 30 days, dropped past it.
	env.createNotification(t, user.ID, models.NotificationTypePromptLiked, true, 29*24*time.Hour)
	env.createNotification(t, user.ID, models.NotificationTypePromptLiked, true, 31*24*time.Hour)
	// Unread: kept inside 90 days, dropped past it.
	env.createNotification(t, user.ID, models.NotificationTypeUserFollowed, false, 89*24*time.Hour)
	env.createNotification(t, user.ID, models.NotificationTypeUserFollowed, false, 91*24*time.Hour)

	deleted, err := env.notifs.Cleanup(time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	remaining := env.notificationsFor(t, user.ID)
	require.Len(t, remaining, 2)
	for _, n := range remaining {
		if n.IsRead {
			assert.Equal(t, models.NotificationTypePromptLiked, n.Type)
		} else {
			assert.Equal(t, models.NotificationTypeUserFollowed, n.Type)
		}
	}
}

func TestStarString(t *testing.T) {
	assert.Equal(t, "★★★☆☆", StarString(3))
	assert.Equal(t, "★★★★★", StarString(5))
	assert.Equal(t, "☆☆☆☆☆", StarString(0))
}
