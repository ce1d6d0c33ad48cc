package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/inkwelldev/inkwell/pkg/internal/cache"
	"github.com/inkwelldev/inkwell/pkg/internal/database"
	"github.com/inkwelldev/inkwell/pkg/internal/models"
)

const FeedPageSize = 10

const homeTimelineCacheKey = "home-timeline"

type FeedPage struct {
	Data        []models.Post `json:"data"`
	Page        int           `json:"page"`
	Pages       int           `json:"pages"`
	Count       int64         `json:"count"`
	HasNext     bool          `json:"has_next"`
	HasPrevious bool          `json:"has_previous"`
}

// FeedBuilder assembles paginated timelines. The cache service is injected
// so the home timeline's staleness window stays visible in one place.
type FeedBuilder struct {
	cache cache.Service
	ttl   time.Duration
}

func NewFeedBuilder(source cache.Service) *FeedBuilder {
	ttl := viper.GetDuration("cache.feed_ttl")
	return &FeedBuilder{
		cache: source,
		ttl:   lo.Ternary(ttl > 0, ttl, 20*time.Second),
	}
}

// HomeTimeline returns one page of the unfiltered post list. The full list
// is cached for a short window, so fresh posts may lag here while group,
// profile and follow timelines stay live.
func (fb *FeedBuilder) HomeTimeline(ctx context.Context, page int) (FeedPage, error) {
	posts, err := fb.homeTimelineSource(ctx)
	if err != nil {
		return FeedPage{}, err
	}
	return paginateSlice(posts, page), nil
}

func (fb *FeedBuilder) homeTimelineSource(ctx context.Context) ([]models.Post, error) {
	if cached, err := fb.cache.Get(ctx, homeTimelineCacheKey, new([]models.Post)); err == nil {
		if posts, ok := cached.(*[]models.Post); ok {
			return *posts, nil
		}
	}

	posts, err := ListPost(database.C, -1, -1, FeedOrder)
	if err != nil {
		return nil, fmt.Errorf("unable to build home timeline: %v", err)
	}

	if err := fb.cache.Set(ctx, homeTimelineCacheKey, posts, fb.ttl); err != nil {
		log.Warn().Err(err).Msg("An error occurred when caching home timeline...")
	}

	return posts, nil
}

// ClearHomeTimeline drops the cached post list, the hook for external cache
// flush triggers and test teardown.
func (fb *FeedBuilder) ClearHomeTimeline(ctx context.Context) error {
	return fb.cache.Delete(ctx, homeTimelineCacheKey)
}

func (fb *FeedBuilder) GroupTimeline(group models.Group, page int) (FeedPage, error) {
	return fb.paginate(FilterPostWithGroup(database.C, group.ID), page)
}

func (fb *FeedBuilder) AuthorTimeline(author models.Account, page int) (FeedPage, error) {
	return fb.paginate(FilterPostWithAuthor(database.C, author.ID), page)
}

func (fb *FeedBuilder) FollowTimeline(user models.Account, page int) (FeedPage, error) {
	return fb.paginate(FilterPostFromFollowed(database.C, user), page)
}

func (fb *FeedBuilder) paginate(tx *gorm.DB, page int) (FeedPage, error) {
	countTx := tx
	count, err := CountPost(countTx)
	if err != nil {
		return FeedPage{}, fmt.Errorf("unable to count posts: %v", err)
	}

	pages := totalPages(count)
	page = clampPage(page, pages)

	items, err := ListPost(tx, FeedPageSize, (page-1)*FeedPageSize, FeedOrder)
	if err != nil {
		return FeedPage{}, fmt.Errorf("unable to list posts: %v", err)
	}

	return FeedPage{
		Data:        items,
		Page:        page,
		Pages:       pages,
		Count:       count,
		HasNext:     page < pages,
		HasPrevious: page > 1,
	}, nil
}

func paginateSlice(posts []models.Post, page int) FeedPage {
	count := int64(len(posts))
	pages := totalPages(count)
	page = clampPage(page, pages)

	start := (page - 1) * FeedPageSize
	return FeedPage{
		Data:        lo.Slice(posts, start, start+FeedPageSize),
		Page:        page,
		Pages:       pages,
		Count:       count,
		HasNext:     page < pages,
		HasPrevious: page > 1,
	}
}

func totalPages(count int64) int {
	pages := int((count + FeedPageSize - 1) / FeedPageSize)
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Out-of-range page numbers fall back to the nearest valid page instead of
// erroring.
func clampPage(page int, pages int) int {
	if page < 1 {
		return 1
	}
	if page > pages {
		return pages
	}
	return page
}
