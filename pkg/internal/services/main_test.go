package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inkwelldev/inkwell/pkg/internal/cache"
	"github.com/inkwelldev/inkwell/pkg/internal/database"
)

func useTestDatabase(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	source, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("unable to open test database: %v", err)
	}
	if err := database.RunMigration(source); err != nil {
		t.Fatalf("unable to migrate test database: %v", err)
	}

	database.C = source
}

func useTestCache(t *testing.T) cache.Service {
	t.Helper()

	if err := cache.NewStore(); err != nil {
		t.Fatalf("unable to build cache store: %v", err)
	}

	service := cache.NewService(cache.S)
	t.Cleanup(func() {
		_ = service.Clear(context.Background())
	})
	return service
}

func init() {
	viper.Set("security.jwt_secret", "test-secret")
	viper.Set("cache.feed_ttl", "20s")
}
