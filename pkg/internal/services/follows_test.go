package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwelldev/inkwell/pkg/internal/database"
	"github.com/inkwelldev/inkwell/pkg/internal/models"
	"github.com/inkwelldev/inkwell/pkg/internal/services"
)

func countFollows(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, database.C.Model(&models.Follow{}).Count(&count).Error)
	return count
}

func TestFollowToggle(t *testing.T) {
	useTestDatabase(t)

	user, err := services.NewAccount("alice", "Alice")
	require.NoError(t, err)
	author, err := services.NewAccount("bob", "Bob")
	require.NoError(t, err)

	assert.False(t, services.IsFollowing(user, author))

	require.NoError(t, services.FollowAccount(user, author))
	assert.True(t, services.IsFollowing(user, author))
	assert.EqualValues(t, 1, countFollows(t))

	// Repeating converges to the same state
	require.NoError(t, services.FollowAccount(user, author))
	assert.EqualValues(t, 1, countFollows(t))

	require.NoError(t, services.UnfollowAccount(user, author))
	assert.False(t, services.IsFollowing(user, author))
	assert.EqualValues(t, 0, countFollows(t))

	// Unfollowing without an edge stays silent
	require.NoError(t, services.UnfollowAccount(user, author))
	assert.EqualValues(t, 0, countFollows(t))
}

func TestSelfFollowRejectedSilently(t *testing.T) {
	useTestDatabase(t)

	user, err := services.NewAccount("alice", "Alice")
	require.NoError(t, err)

	require.NoError(t, services.FollowAccount(user, user))
	assert.EqualValues(t, 0, countFollows(t))
}

func TestFollowTimeline(t *testing.T) {
	useTestDatabase(t)

	user, err := services.NewAccount("alice", "Alice")
	require.NoError(t, err)
	author, err := services.NewAccount("bob", "Bob")
	require.NoError(t, err)

	_, err = services.NewPost(author, models.Post{Text: "hello, my followers!"})
	require.NoError(t, err)

	fb := services.NewFeedBuilder(useTestCache(t))

	page, err := fb.FollowTimeline(user, 1)
	require.NoError(t, err)
	assert.Empty(t, page.Data)

	require.NoError(t, services.FollowAccount(user, author))

	page, err = fb.FollowTimeline(user, 1)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "hello, my followers!", page.Data[0].Text)
	assert.Equal(t, "bob", page.Data[0].Author.Name)
}
