//go:build integration

package postalcode

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"workplace-geo/internal/types"
)

type RedisCacheSuite struct {
	suite.Suite
	container *tcredis.RedisContainer
	client    *redis.Client
	cache     *RedisCache
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	s.container = container
	s.Require().NoError(err)

	url, err := container.ConnectionString(ctx)
	s.Require().NoError(err)

	client, err := NewRedisClient(ctx, url)
	s.Require().NoError(err)
	s.client = client
	s.cache = NewRedisCache(client, WithKeyPrefix("test:postal:"))
}

func (s *RedisCacheSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
	s.NoError(testcontainers.TerminateContainer(s.container))
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.client.FlushAll(context.Background()).Err())
}

func (s *RedisCacheSuite) TestRoundTrip() {
	ctx := context.Background()
	data := []types.PostalCodeOption{types.NewPostalCodeOption("10115", "Berlin", "zippopotam")}
	entry := NewEntry(data, "zippopotam", SearchParams{CountryCode: "DE", City: "Berlin"}, time.Now(), time.Hour)

	s.Require().NoError(s.cache.Set(ctx, Key("DE", "Berlin"), entry))

	got, ok, err := s.cache.Get(ctx, Key("de", "berlin"))
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(data, got.Data)
	s.True(got.ExpiresAt.Equal(entry.ExpiresAt))

	ttl, err := s.client.TTL(ctx, "test:postal:"+Key("DE", "Berlin")).Result()
	s.Require().NoError(err)
	s.Greater(ttl, 59*time.Minute)
}

func (s *RedisCacheSuite) TestEnumerateAndClear() {
	ctx := context.Background()
	for _, city := range []string{"Berlin", "Hamburg", "Munich"} {
		entry := NewEntry(nil, "zippopotam", SearchParams{CountryCode: "DE", City: city}, time.Now(), time.Hour)
		s.Require().NoError(s.cache.Set(ctx, Key("DE", city), entry))
	}
	// keys outside the prefix are left alone
	s.Require().NoError(s.client.Set(ctx, "unrelated", "1", 0).Err())

	n, err := s.cache.Len(ctx)
	s.Require().NoError(err)
	s.Equal(3, n)

	entries, err := s.cache.Entries(ctx)
	s.Require().NoError(err)
	s.Len(entries, 3)

	s.Require().NoError(s.cache.Delete(ctx, Key("DE", "Munich")))
	n, _ = s.cache.Len(ctx)
	s.Equal(2, n)

	s.Require().NoError(s.cache.Clear(ctx))
	n, _ = s.cache.Len(ctx)
	s.Equal(0, n)

	exists, err := s.client.Exists(ctx, "unrelated").Result()
	s.Require().NoError(err)
	s.Equal(int64(1), exists)
}
