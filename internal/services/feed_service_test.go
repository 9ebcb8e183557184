package services

import (
	"testing"
	"time"

	"github.com/promptdeck/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedEmptyWhenFollowingNobody(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author")
	reader := env.createUser(t, "reader")
	env.createPrompt(t, author.ID, "Summarizer")

	feed, total, err := env.feed.GetFeed(reader.ID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, feed)
}

func TestFeedNewestFirstFromFollowedAuthors(t *testing.T) {
	env := newTestEnv(t)
	followed := env.createUser(t, "followed")
	stranger := env.createUser(t, "stranger")
	reader := env.createUser(t, "reader")
	require.NoError(t, env.follows.Follow(reader.ID, followed.ID))

	base := time.Now().Add(-time.Hour)
	older := env.createPrompt(t, followed.ID, "Older")
	newer := env.createPrompt(t, followed.ID, "Newer")
	env.createPrompt(t, stranger.ID, "Unfollowed")
	require.NoError(t, env.db.Model(older).Update("created_at", base).Error)
	require.NoError(t, env.db.Model(newer).Update("created_at", base.Add(time.Minute)).Error)

	feed, total, err := env.feed.GetFeed(reader.ID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, feed, 2)
	assert.Equal(t, "Newer", feed[0].Title)
	assert.Equal(t, "Older", feed[1].Title)
	assert.Equal(t, "followed", feed[0].Author.Nickname)
}

func TestFeedExcludesPrivatePrompts(t *testing.T) {
	env := newTestEnv(t)
	followed := env.createUser(t, "followed")
	reader := env.createUser(t, "reader")
	require.NoError(t, env.follows.Follow(reader.ID, followed.ID))

	env.createPrompt(t, followed.ID, "Public")
	private := &models.Prompt{
		AuthorID: followed.ID,
		Title:    "Private",
		Content:  "secret",
		Category: "general",
		IsPublic: false,
	}
	require.NoError(t, env.db.Create(private).Error)

	feed, total, err := env.feed.GetFeed(reader.ID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, feed, 1)
	assert.Equal(t, "Public", feed[0].Title)
}

func TestFeedAnnotatesCallerEngagement(t *testing.T) {
	env := newTestEnv(t)
	followed := env.createUser(t, "followed")
	reader := env.createUser(t, "reader")
	require.NoError(t, env.follows.Follow(reader.ID, followed.ID))

	liked := env.createPrompt(t, followed.ID, "Liked")
	rated := env.createPrompt(t, followed.ID, "Rated")
	saved := env.createPrompt(t, followed.ID, "Saved")
	env.createPrompt(t, followed.ID, "Plain")

	_, _, err := env.likes.Toggle(liked.ID, reader.ID)
	require.NoError(t, err)
	_, err = env.ratings.Create(rated.ID, reader.ID, 4, "")
	require.NoError(t, err)
	_, _, err = env.bookmarks.Toggle(saved.ID, reader.ID)
	require.NoError(t, err)

	feed, _, err := env.feed.GetFeed(reader.ID, 1, 20)
	require.NoError(t, err)
	require.Len(t, feed, 4)

	byTitle := make(map[string]models.PromptSummary)
	for _, s := range feed {
		byTitle[s.Title] = s
	}
	assert.True(t, byTitle["Liked"].IsLiked)
	assert.Equal(t, 4, byTitle["Rated"].UserRating)
	assert.True(t, byTitle["Saved"].IsBookmarked)
	assert.False(t, byTitle["Plain"].IsLiked)
	assert.False(t, byTitle["Plain"].IsBookmarked)
	assert.Zero(t, byTitle["Plain"].UserRating)
}

func TestFeedPaginates(t *testing.T) {
	env := newTestEnv(t)
	followed := env.createUser(t, "followed")
	reader := env.createUser(t, "reader")
	require.NoError(t, env.follows.Follow(reader.ID, followed.ID))

	for i := 0; i < 5; i++ {
		env.createPrompt(t, followed.ID, "Prompt")
	}

	page, total, err := env.feed.GetFeed(reader.ID, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page, 2)

	page, _, err = env.feed.GetFeed(reader.ID, 3, 2)
	require.NoError(t, err)
	assert.Len(t, page, 1)
}
