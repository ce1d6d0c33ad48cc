package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
)

var (
	S store.StoreInterface
	R *ristretto.Cache
)

func NewStore() error {
	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     1 << 27,
		BufferItems: 64,
	})
	if err != nil {
		return err
	}

	R = client
	S = ristretto_store.NewRistretto(client)
	return nil
}

// Service is the cache surface handed to consumers such as the feed builder,
// so they never touch the process-wide store directly.
type Service interface {
	Get(ctx context.Context, key string, target any) (any, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

type marshaledService struct {
	marshal *marshaler.Marshaler
}

func NewService(source store.StoreInterface) Service {
	manager := cache.New[any](source)
	return &marshaledService{marshal: marshaler.New(manager)}
}

func (s *marshaledService) Get(ctx context.Context, key string, target any) (any, error) {
	return s.marshal.Get(ctx, key, target)
}

func (s *marshaledService) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return s.marshal.Set(ctx, key, value, store.WithExpiration(ttl))
}

func (s *marshaledService) Delete(ctx context.Context, key string) error {
	return s.marshal.Delete(ctx, key)
}

func (s *marshaledService) Clear(ctx context.Context) error {
	return s.marshal.Clear(ctx)
}
