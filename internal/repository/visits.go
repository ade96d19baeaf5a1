package repository

import (
	"context"
	"time"

	"accorcia/internal/model"
)

// SaveVisit inserts a visit. A link deleted in the meantime yields ErrNotFound.
func (r *SQLRepository) SaveVisit(ctx context.Context, v *model.Visit) error {
	return translateError(r.db.WithContext(ctx).Omit("Link").Create(v).Error)
}

// CountVisits returns the number of visits of a link
func (r *SQLRepository) CountVisits(ctx context.Context, linkID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Visit{}).
		Where("link_id = ?", linkID).
		Count(&count).Error
	return count, err
}

// ListVisitsByLink returns the visits of a link within [start, end], newest first
func (r *SQLRepository) ListVisitsByLink(ctx context.Context, linkID int64, start, end time.Time) ([]model.Visit, error) {
	var visits []model.Visit
	err := r.db.WithContext(ctx).
		Where("link_id = ? AND visited_at BETWEEN ? AND ?", linkID, start.UTC(), end.UTC()).
		Order("visited_at DESC").
		Order("id DESC").
		Find(&visits).Error
	return visits, err
}

// ListVisitsByOwner returns the visits across all links of a user within [start, end], newest first
func (r *SQLRepository) ListVisitsByOwner(ctx context.Context, ownerID int64, start, end time.Time) ([]model.OwnerVisit, error) {
	var visits []model.OwnerVisit
	err := r.db.WithContext(ctx).
		Model(&model.Visit{}).
		Select("visits.id, visits.link_id, links.short_code, visits.visited_at, visits.ip_address, visits.user_agent").
		Joins("JOIN links ON links.id = visits.link_id").
		Where("links.user_id = ? AND visits.visited_at BETWEEN ? AND ?", ownerID, start.UTC(), end.UTC()).
		Order("visits.visited_at DESC").
		Order("visits.id DESC").
		Scan(&visits).Error
	return visits, err
}

// CountVisitsByOwner groups the visits of a user's links within [start, end] by short code
func (r *SQLRepository) CountVisitsByOwner(ctx context.Context, ownerID int64, start, end time.Time) (map[string]int64, error) {
	var rows []struct {
		ShortCode string
		Total     int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Visit{}).
		Select("links.short_code AS short_code, COUNT(visits.id) AS total").
		Joins("JOIN links ON links.id = visits.link_id").
		Where("links.user_id = ? AND visits.visited_at BETWEEN ? AND ?", ownerID, start.UTC(), end.UTC()).
		Group("links.short_code").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.ShortCode] = row.Total
	}
	return counts, nil
}
