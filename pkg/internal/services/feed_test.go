package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwelldev/inkwell/pkg/internal/cache"
	"github.com/inkwelldev/inkwell/pkg/internal/models"
	"github.com/inkwelldev/inkwell/pkg/internal/services"
)

func TestAuthorTimelinePagination(t *testing.T) {
	useTestDatabase(t)

	author, err := services.NewAccount("alice", "Alice")
	require.NoError(t, err)

	var last models.Post
	for i := 0; i < 25; i++ {
		last, err = services.NewPost(author, models.Post{Text: fmt.Sprintf("entry number %d", i)})
		require.NoError(t, err)
	}

	fb := services.NewFeedBuilder(useTestCache(t))

	page, err := fb.AuthorTimeline(author, 1)
	require.NoError(t, err)
	assert.Len(t, page.Data, services.FeedPageSize)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 3, page.Pages)
	assert.EqualValues(t, 25, page.Count)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrevious)
	assert.Equal(t, last.ID, page.Data[0].ID, "newest post comes first")

	// Out-of-range pages clamp instead of erroring
	page, err = fb.AuthorTimeline(author, 99)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)
	assert.Len(t, page.Data, 5)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrevious)

	page, err = fb.AuthorTimeline(author, -4)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
}

func TestHomeTimelineStaleness(t *testing.T) {
	useTestDatabase(t)

	author, err := services.NewAccount("alice", "Alice")
	require.NoError(t, err)
	_, err = services.NewPost(author, models.Post{Text: "the first entry"})
	require.NoError(t, err)

	fb := services.NewFeedBuilder(useTestCache(t))
	ctx := context.Background()

	page, err := fb.HomeTimeline(ctx, 1)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	cache.R.Wait()

	_, err = services.NewPost(author, models.Post{Text: "the second entry"})
	require.NoError(t, err)

	// Still served from cache, the fresh post is invisible
	page, err = fb.HomeTimeline(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)

	// Uncached timelines see it immediately
	profile, err := fb.AuthorTimeline(author, 1)
	require.NoError(t, err)
	assert.Len(t, profile.Data, 2)

	require.NoError(t, fb.ClearHomeTimeline(ctx))
	cache.R.Wait()

	page, err = fb.HomeTimeline(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, "the second entry", page.Data[0].Text)
}

func TestGroupTimelineFiltering(t *testing.T) {
	useTestDatabase(t)

	author, err := services.NewAccount("alice", "Alice")
	require.NoError(t, err)
	group, err := services.NewGroup("Test Group", "test-group", "just for tests")
	require.NoError(t, err)

	_, err = services.NewPost(author, models.Post{Text: "grouped entry", GroupID: &group.ID})
	require.NoError(t, err)
	_, err = services.NewPost(author, models.Post{Text: "loose entry"})
	require.NoError(t, err)

	fb := services.NewFeedBuilder(useTestCache(t))

	page, err := fb.GroupTimeline(group, 1)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "grouped entry", page.Data[0].Text)
}
