package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"accorcia/internal/model"
	"accorcia/internal/repository"

	"github.com/rs/zerolog/log"
)

// RedirectService resolves short codes for anonymous visitors, records the
// visit and notifies live subscribers
type RedirectService struct {
	links     LinkRepository
	visits    VisitRepository
	cache     LinkCache
	publisher VisitPublisher
	now       func() time.Time
}

// NewRedirectService creates a new RedirectService. cache and publisher may be nil.
func NewRedirectService(
	links LinkRepository,
	visits VisitRepository,
	cache LinkCache,
	publisher VisitPublisher,
) *RedirectService {
	return &RedirectService{
		links:     links,
		visits:    visits,
		cache:     cache,
		publisher: publisher,
		now:       time.Now,
	}
}

// Visit returns the redirect target of shortCode. Absent links yield
// ErrLinkNotFound and expired ones ErrLinkExpired; neither records a visit.
func (s *RedirectService) Visit(ctx context.Context, shortCode, clientIP, userAgent string) (string, error) {
	link, err := s.resolve(ctx, shortCode)
	if err != nil {
		return "", err
	}

	now := s.now().UTC()
	if link.IsExpired(now) {
		return "", ErrLinkExpired
	}

	visit := &model.Visit{
		LinkID:    link.ID,
		VisitedAt: now,
		IPAddress: clientIP,
		UserAgent: userAgent,
	}
	if err := s.visits.SaveVisit(ctx, visit); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Deleted after it was resolved, possibly served from a stale cache entry
			s.evict(ctx, shortCode)
			return "", ErrLinkNotFound
		}
		log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to record visit")
		return "", fmt.Errorf("failed to record visit: %w", err)
	}

	s.notify(ctx, link, visit)

	return link.OriginalURL, nil
}

// resolve reads through the cache to the link store
func (s *RedirectService) resolve(ctx context.Context, shortCode string) (*model.Link, error) {
	if s.cache != nil {
		link, err := s.cache.GetCachedLink(ctx, shortCode)
		if err == nil {
			return link, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			log.Warn().Err(err).Str("short_code", shortCode).Msg("Link cache unavailable")
		}
	}

	link, err := s.links.GetLinkByCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to load short link: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.CacheLink(ctx, link); err != nil {
			log.Warn().Err(err).Str("short_code", shortCode).Msg("Failed to cache link")
		}
	}
	return link, nil
}

// notify publishes the visit event. Failures are logged and never reach the visitor.
func (s *RedirectService) notify(ctx context.Context, link *model.Link, visit *model.Visit) {
	if s.publisher == nil {
		return
	}

	count, err := s.visits.CountVisits(ctx, link.ID)
	if err != nil {
		log.Warn().Err(err).Str("short_code", link.ShortCode).Msg("Failed to count visits for notification")
		return
	}

	evt := &model.VisitEvent{
		ShortCode:  link.ShortCode,
		VisitCount: count,
		LastVisit: model.LastVisit{
			VisitDate: visit.VisitedAt,
			IPAddress: visit.IPAddress,
			UserAgent: visit.UserAgent,
		},
	}
	if err := s.publisher.PublishVisit(ctx, model.LinkTopic(link.ShortCode), evt); err != nil {
		log.Warn().Err(err).Str("short_code", link.ShortCode).Msg("Failed to publish visit notification")
	}
}

func (s *RedirectService) evict(ctx context.Context, shortCode string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.EvictLink(ctx, shortCode); err != nil {
		log.Warn().Err(err).Str("short_code", shortCode).Msg("Failed to evict cached link")
	}
}
