package services

import (
	"fmt"
	"testing"

	"github.com/promptdeck/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) findBookmark(t *testing.T, promptID, userID uint) *models.Bookmark {
	t.Helper()
	var bookmark models.Bookmark
	require.NoError(t, e.db.Where("prompt_id = ? AND user_id = ?", promptID, userID).First(&bookmark).Error)
	return &bookmark
}

func TestToggleBookmarkRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author")
	reader := env.createUser(t, "reader")
	prompt := env.createPrompt(t, author.ID, "Summarizer")

	bookmarked, count, err := env.bookmarks.Toggle(prompt.ID, reader.ID)
	require.NoError(t, err)
	assert.True(t, bookmarked)
	assert.Equal(t, 1, count)

	notifications := env.notificationsFor(t, author.ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationTypePromptBookmarked, notifications[0].Type)

	bookmarked, count, err = env.bookmarks.Toggle(prompt.ID, reader.ID)
	require.NoError(t, err)
	assert.False(t, bookmarked)
	assert.Equal(t, 0, count)
}

func TestToggleBookmarkOwnPromptForbidden(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author")
	prompt := env.createPrompt(t, author.ID, "Summarizer")

	_, _, err := env.bookmarks.Toggle(prompt.ID, author.ID)
	assert.ErrorIs(t, err, ErrSelfBookmark)
}

func TestToggleBookmarkRemovalDecrementsFolderCount(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author")
	reader := env.createUser(t, "reader")
	prompt := env.createPrompt(t, author.ID, "Summarizer")

	_, _, err := env.bookmarks.Toggle(prompt.ID, reader.ID)
	require.NoError(t, err)
	folder, err := env.bookmarks.CreateFolder(reader.ID, "Favorites", "")
	require.NoError(t, err)

	bookmark := env.findBookmark(t, prompt.ID, reader.ID)
	require.NoError(t, env.bookmarks.Move(bookmark.ID, reader.ID, &folder.ID))

	// Removing the bookmark releases its folder slot too.
	_, _, err = env.bookmarks.Toggle(prompt.ID, reader.ID)
	require.NoError(t, err)

	var reloaded models.BookmarkFolder
	require.NoError(t, env.db.First(&reloaded, folder.ID).Error)
	assert.Equal(t, 0, reloaded.BookmarkCount)
}

func TestCreateFolderLimit(t *testing.T) {
	env := newTestEnv(t)
	reader := env.createUser(t, "reader")

	for i := 0; i < models.MaxBookmarkFolders; i++ {
		_, err := env.bookmarks.CreateFolder(reader.ID, fmt.Sprintf("folder-%d", i), "")
		require.NoError(t, err)
	}

	_, err := env.bookmarks.CreateFolder(reader.ID, "one-too-many", "")
	assert.ErrorIs(t, err, ErrFolderLimitReached)
}

func TestCreateFolderDuplicateName(t *testing.T) {
	env := newTestEnv(t)
	reader := env.createUser(t, "reader")

	_, err := env.bookmarks.CreateFolder(reader.ID, "Favorites", "")
	require.NoError(t, err)

	_, err = env.bookmarks.CreateFolder(reader.ID, "Favorites", "")
	assert.ErrorIs(t, err, ErrFolderNameTaken)

	// Collision is case-sensitive, so a different casing passes.
	_, err = env.bookmarks.CreateFolder(reader.ID, "favorites", "")
	assert.NoError(t, err)

	// Another user may reuse the name.
	other := env.createUser(t, "other")
	_, err = env.bookmarks.CreateFolder(other.ID, "Favorites", "")
	assert.NoError(t, err)
}

func TestUpdateFolderKeepOwnName(t *testing.T) {
	env := newTestEnv(t)
	reader := env.createUser(t, "reader")
	folder, err := env.bookmarks.CreateFolder(reader.ID, "Favorites", "")
	require.NoError(t, err)

	updated, err := env.bookmarks.UpdateFolder(folder.ID, reader.ID, "Favorites", "new description")
	require.NoError(t, err)
	assert.Equal(t, "new description", updated.Description)

	_, err = env.bookmarks.CreateFolder(reader.ID, "Work", "")
	require.NoError(t, err)
	_, err = env.bookmarks.UpdateFolder(folder.ID, reader.ID, "Work", "")
	assert.ErrorIs(t, err, ErrFolderNameTaken)
}

func TestDeleteFolderKeepsBookmarks(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author")
	reader := env.createUser(t, "reader")
	prompt := env.createPrompt(t, author.ID, "Summarizer")

	_, _, err := env.bookmarks.Toggle(prompt.ID, reader.ID)
	require.NoError(t, err)
	folder, err := env.bookmarks.CreateFolder(reader.ID, "Favorites", "")
	require.NoError(t, err)
	bookmark := env.findBookmark(t, prompt.ID, reader.ID)
	require.NoError(t, env.bookmarks.Move(bookmark.ID, reader.ID, &folder.ID))

	require.NoError(t, env.bookmarks.DeleteFolder(folder.ID, reader.ID))

	// Bookmark survives, re-parented to uncategorized.
	surviving := env.findBookmark(t, prompt.ID, reader.ID)
	assert.Nil(t, surviving.FolderID)

	folders, err := env.bookmarks.ListFolders(reader.ID)
	require.NoError(t, err)
	assert.Empty(t, folders)
}

func TestDeleteFolderOwnership(t *testing.T) {
	env := newTestEnv(t)
	reader := env.createUser(t, "reader")
	other := env.createUser(t, "other")
	folder, err := env.bookmarks.CreateFolder(reader.ID, "Favorites", "")
	require.NoError(t, err)

	assert.ErrorIs(t, env.bookmarks.DeleteFolder(folder.ID, other.ID), ErrFolderNotFound)
}

func TestMoveBookmarkAdjustsBothCounters(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author")
	reader := env.createUser(t, "reader")
	prompt := env.createPrompt(t, author.ID, "Summarizer")

	_, _, err := env.bookmarks.Toggle(prompt.ID, reader.ID)
	require.NoError(t, err)
	source, err := env.bookmarks.CreateFolder(reader.ID, "Source", "")
	require.NoError(t, err)
	target, err := env.bookmarks.CreateFolder(reader.ID, "Target", "")
	require.NoError(t, err)

	bookmark := env.findBookmark(t, prompt.ID, reader.ID)
	require.NoError(t, env.bookmarks.Move(bookmark.ID, reader.ID, &source.ID))
	require.NoError(t, env.bookmarks.Move(bookmark.ID, reader.ID, &target.ID))

	var src, dst models.BookmarkFolder
	require.NoError(t, env.db.First(&src, source.ID).Error)
	require.NoError(t, env.db.First(&dst, target.ID).Error)
	assert.Equal(t, 0, src.BookmarkCount)
	assert.Equal(t, 1, dst.BookmarkCount)
}

func TestMoveBookmarkNoOp(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author")
	reader := env.createUser(t, "reader")
	prompt := env.createPrompt(t, author.ID, "Summarizer")

	_, _, err := env.bookmarks.Toggle(prompt.ID, reader.ID)
	require.NoError(t, err)
	folder, err := env.bookmarks.CreateFolder(reader.ID, "Favorites", "")
	require.NoError(t, err)
	bookmark := env.findBookmark(t, prompt.ID, reader.ID)

	require.NoError(t, env.bookmarks.Move(bookmark.ID, reader.ID, &folder.ID))
	require.NoError(t, env.bookmarks.Move(bookmark.ID, reader.ID, &folder.ID))

	var reloaded models.BookmarkFolder
	require.NoError(t, env.db.First(&reloaded, folder.ID).Error)
	assert.Equal(t, 1, reloaded.BookmarkCount)
}

func TestMoveBookmarkForeignFolder(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author")
	reader := env.createUser(t, "reader")
	other := env.createUser(t, "other")
	prompt := env.createPrompt(t, author.ID, "Summarizer")

	_, _, err := env.bookmarks.Toggle(prompt.ID, reader.ID)
	require.NoError(t, err)
	foreign, err := env.bookmarks.CreateFolder(other.ID, "Theirs", "")
	require.NoError(t, err)

	bookmark := env.findBookmark(t, prompt.ID, reader.ID)
	assert.ErrorIs(t, env.bookmarks.Move(bookmark.ID, reader.ID, &foreign.ID), ErrFolderNotFound)
}

func TestListBookmarksByFolder(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author")
	reader := env.createUser(t, "reader")
	first := env.createPrompt(t, author.ID, "First")
	second := env.createPrompt(t, author.ID, "Second")

	_, _, err := env.bookmarks.Toggle(first.ID, reader.ID)
	require.NoError(t, err)
	_, _, err = env.bookmarks.Toggle(second.ID, reader.ID)
	require.NoError(t, err)

	folder, err := env.bookmarks.CreateFolder(reader.ID, "Favorites", "")
	require.NoError(t, err)
	bookmark := env.findBookmark(t, first.ID, reader.ID)
	require.NoError(t, env.bookmarks.Move(bookmark.ID, reader.ID, &folder.ID))

	all, total, err := env.bookmarks.List(reader.ID, nil, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)

	filed, total, err := env.bookmarks.List(reader.ID, &folder.ID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, filed, 1)
	assert.Equal(t, "First", filed[0].Title)
	assert.Equal(t, "author", filed[0].Author.Nickname)
}
