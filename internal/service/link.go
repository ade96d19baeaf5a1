package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"accorcia/internal/encoder"
	"accorcia/internal/model"
	"accorcia/internal/repository"

	"github.com/rs/zerolog/log"
)

// LinkService handles short link management for their owners
type LinkService struct {
	links     LinkRepository
	visits    VisitRepository
	cache     LinkCache
	generator CodeGenerator
	baseURL   string
	now       func() time.Time
}

// NewLinkService creates a new LinkService. cache may be nil.
func NewLinkService(
	links LinkRepository,
	visits VisitRepository,
	cache LinkCache,
	generator CodeGenerator,
	baseURL string,
) *LinkService {
	return &LinkService{
		links:     links,
		visits:    visits,
		cache:     cache,
		generator: generator,
		baseURL:   baseURL,
		now:       time.Now,
	}
}

// Create stores a new link. An empty ShortCode gets a random one; a collision
// is reported as ErrDuplicateCode without retrying. A malformed expiration
// date is ignored and the link never expires.
func (s *LinkService) Create(ctx context.Context, ownerID int64, req *model.CreateLinkRequest) (*model.LinkView, error) {
	shortCode := req.ShortCode
	if shortCode == "" {
		code, err := s.generator.Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate short code: %w", err)
		}
		shortCode = code
	} else if !encoder.IsValid(shortCode) {
		return nil, ErrInvalidCode
	}

	var expiresAt *time.Time
	if req.ExpirationDate != "" {
		t, err := ParseDate(req.ExpirationDate)
		if err != nil {
			log.Debug().Err(err).Str("short_code", shortCode).Msg("Ignoring malformed expiration date")
		} else {
			expiresAt = &t
		}
	}

	link := &model.Link{
		ShortCode:   shortCode,
		OriginalURL: req.OriginalURL,
		UserID:      ownerID,
		CreatedAt:   s.now().UTC(),
		ExpiresAt:   expiresAt,
	}

	if err := s.links.CreateLink(ctx, link); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateCode
		}
		log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to save short link")
		return nil, fmt.Errorf("failed to save short link: %w", err)
	}

	// Drop any entry a redirect cached for a previous owner of the code
	s.evict(ctx, shortCode)

	log.Info().Str("short_code", shortCode).Int64("owner_id", ownerID).Msg("Short link created")

	view := model.NewLinkView(link, s.baseURL, 0)
	return &view, nil
}

// Edit overwrites the original URL and expiration of an owned link.
// A nil or empty ExpirationDate clears the expiration.
func (s *LinkService) Edit(ctx context.Context, ownerID int64, shortCode string, req *model.EditLinkRequest) (*model.LinkView, error) {
	link, err := s.ownedLink(ctx, ownerID, shortCode)
	if err != nil {
		return nil, err
	}

	var expiresAt *time.Time
	if req.ExpirationDate != nil && *req.ExpirationDate != "" {
		t, err := ParseDate(*req.ExpirationDate)
		if err != nil {
			return nil, err
		}
		expiresAt = &t
	}

	link.OriginalURL = req.OriginalURL
	link.ExpiresAt = expiresAt
	if err := s.links.UpdateLink(ctx, link); err != nil {
		return nil, fmt.Errorf("failed to update short link: %w", err)
	}
	s.evict(ctx, shortCode)

	count, err := s.visits.CountVisits(ctx, link.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count visits: %w", err)
	}

	view := model.NewLinkView(link, s.baseURL, count)
	return &view, nil
}

// Delete removes an owned link and all of its visits
func (s *LinkService) Delete(ctx context.Context, ownerID int64, shortCode string) error {
	link, err := s.ownedLink(ctx, ownerID, shortCode)
	if err != nil {
		return err
	}

	if err := s.links.DeleteLink(ctx, link.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLinkNotFound
		}
		return fmt.Errorf("failed to delete short link: %w", err)
	}
	s.evict(ctx, shortCode)

	log.Info().Str("short_code", shortCode).Int64("owner_id", ownerID).Msg("Short link deleted")
	return nil
}

// ListByOwner returns every link of the owner with its visit count
func (s *LinkService) ListByOwner(ctx context.Context, ownerID int64) ([]model.LinkView, error) {
	links, err := s.links.ListLinksByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list short links: %w", err)
	}

	ids := make([]int64, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.ID)
	}

	counts, err := s.links.CountVisitsByLinks(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count visits: %w", err)
	}

	views := make([]model.LinkView, 0, len(links))
	for i := range links {
		views = append(views, model.NewLinkView(&links[i], s.baseURL, counts[links[i].ID]))
	}
	return views, nil
}

// CheckOwner reports ErrLinkNotFound or ErrForbidden unless ownerID owns shortCode
func (s *LinkService) CheckOwner(ctx context.Context, ownerID int64, shortCode string) error {
	_, err := s.ownedLink(ctx, ownerID, shortCode)
	return err
}

// ownedLink loads a link and checks that ownerID owns it
func (s *LinkService) ownedLink(ctx context.Context, ownerID int64, shortCode string) (*model.Link, error) {
	link, err := s.links.GetLinkByCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to load short link: %w", err)
	}
	if !link.OwnedBy(ownerID) {
		return nil, ErrForbidden
	}
	return link, nil
}

func (s *LinkService) evict(ctx context.Context, shortCode string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.EvictLink(ctx, shortCode); err != nil {
		log.Warn().Err(err).Str("short_code", shortCode).Msg("Failed to evict cached link")
	}
}
