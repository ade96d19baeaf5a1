package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"accorcia/internal/model"
	"accorcia/internal/repository"
)

// RecentWindow is the period covered by the default link statistics
const RecentWindow = 7 * 24 * time.Hour

// StatsService aggregates visit statistics for link owners
type StatsService struct {
	links  LinkRepository
	visits VisitRepository
	now    func() time.Time
}

// NewStatsService creates a new StatsService
func NewStatsService(links LinkRepository, visits VisitRepository) *StatsService {
	return &StatsService{
		links:  links,
		visits: visits,
		now:    time.Now,
	}
}

// StatsForLink returns the visits of an owned link within the inclusive range
func (s *StatsService) StatsForLink(ctx context.Context, ownerID int64, shortCode string, req *model.DateRangeRequest) (*model.LinkStats, error) {
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	return s.linkStats(ctx, ownerID, shortCode, start, end)
}

// RecentStats returns the visits of an owned link during the last RecentWindow
func (s *StatsService) RecentStats(ctx context.Context, ownerID int64, shortCode string) (*model.LinkStats, error) {
	end := s.now().UTC()
	return s.linkStats(ctx, ownerID, shortCode, end.Add(-RecentWindow), end)
}

// StatsForOwner returns the visits across all links of the owner within the
// inclusive range, with per short code counts
func (s *StatsService) StatsForOwner(ctx context.Context, ownerID int64, req *model.DateRangeRequest) (*model.AccountStats, error) {
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	stats := &model.AccountStats{
		VisitDetailedCounter: map[string]int64{},
		Visits:               []model.VisitView{},
	}
	if start.After(end) {
		return stats, nil
	}

	visits, err := s.visits.ListVisitsByOwner(ctx, ownerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	counts, err := s.visits.CountVisitsByOwner(ctx, ownerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to count visits: %w", err)
	}

	for _, v := range visits {
		stats.Visits = append(stats.Visits, model.VisitView{
			ID:        v.ID,
			ShortCode: v.ShortCode,
			VisitDate: v.VisitedAt,
			IPAddress: v.IPAddress,
			UserAgent: v.UserAgent,
		})
	}
	stats.VisitCount = int64(len(stats.Visits))
	for code, n := range counts {
		stats.VisitDetailedCounter[code] = n
	}
	return stats, nil
}

func (s *StatsService) linkStats(ctx context.Context, ownerID int64, shortCode string, start, end time.Time) (*model.LinkStats, error) {
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

	stats := &model.LinkStats{
		ShortCode: link.ShortCode,
		Visits:    []model.VisitView{},
	}
	if start.After(end) {
		return stats, nil
	}

	visits, err := s.visits.ListVisitsByLink(ctx, link.ID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}

	for _, v := range visits {
		stats.Visits = append(stats.Visits, model.VisitView{
			ID:        v.ID,
			VisitDate: v.VisitedAt,
			IPAddress: v.IPAddress,
			UserAgent: v.UserAgent,
		})
	}
	stats.VisitCount = int64(len(stats.Visits))
	return stats, nil
}
