// Package service maintains the near-sold-out announcement in the cache.
// The entry is rebuilt out of band by the cron manager and read by the
// announcement endpoint.
package service

import (
	"context"
	"strings"

	"github.com/confcloud/confhub/internal/cache"
	"github.com/confcloud/confhub/internal/store"
	"github.com/confcloud/confhub/pkg/logger"
)

// CacheKey is the cache entry holding the current announcement.
const CacheKey = "confhub:announcement"

// Conferences with this many seats or fewer (but not sold out) make the
// announcement.
const almostSoldOutThreshold = 5

const announcementPrefix = "Last chance to attend! The following conferences are nearly sold out: "

// Service maintains and serves the announcement.
type Service struct {
	store *store.Store
	cache cache.Cache
	log   *logger.Logger
}

// New creates an announcement service.
func New(s *store.Store, c cache.Cache, log *logger.Logger) *Service {
	return &Service{store: s, cache: c, log: log}
}

// Rebuild recomputes the announcement and stores it in the cache, or clears
// the entry when no conference is close to selling out. Returns the new
// announcement.
func (s *Service) Rebuild(ctx context.Context) (string, error) {
	names, err := s.store.AlmostSoldOut(ctx, almostSoldOutThreshold)
	if err != nil {
		return "", err
	}

	if len(names) == 0 {
		if err := s.cache.Delete(ctx, CacheKey); err != nil {
			return "", err
		}
		return "", nil
	}

	message := announcementPrefix + strings.Join(names, ", ")
	if err := s.cache.Set(ctx, CacheKey, message); err != nil {
		return "", err
	}
	return message, nil
}

// Get returns the cached announcement, "" when none is set.
func (s *Service) Get(ctx context.Context) (string, error) {
	return s.cache.Get(ctx, CacheKey)
}
