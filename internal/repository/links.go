package repository

import (
	"context"

	"accorcia/internal/model"

	"gorm.io/gorm"
)

// CreateLink inserts a link; a taken short code yields ErrDuplicateKey
func (r *SQLRepository) CreateLink(ctx context.Context, l *model.Link) error {
	return translateError(r.db.WithContext(ctx).Create(l).Error)
}

// GetLinkByCode retrieves a link by its short code
func (r *SQLRepository) GetLinkByCode(ctx context.Context, shortCode string) (*model.Link, error) {
	var l model.Link
	err := r.db.WithContext(ctx).
		Where("short_code = ?", shortCode).
		First(&l).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &l, nil
}

// UpdateLink overwrites the original URL and expiration of a link.
// A nil ExpiresAt is written as NULL. MySQL reports zero affected rows
// for an unchanged row, so callers check existence beforehand.
func (r *SQLRepository) UpdateLink(ctx context.Context, l *model.Link) error {
	return r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("id = ?", l.ID).
		Updates(map[string]interface{}{
			"original_url": l.OriginalURL,
			"expires_at":   l.ExpiresAt,
		}).Error
}

// DeleteLink removes a link together with all of its visits
func (r *SQLRepository) DeleteLink(ctx context.Context, linkID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("link_id = ?", linkID).Delete(&model.Visit{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", linkID).Delete(&model.Link{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ListLinksByOwner returns every link of a user
func (r *SQLRepository) ListLinksByOwner(ctx context.Context, ownerID int64) ([]model.Link, error) {
	var links []model.Link
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&links).Error
	return links, err
}

// CountVisitsByLinks returns the visit count of each link id; links without visits are absent
func (r *SQLRepository) CountVisitsByLinks(ctx context.Context, linkIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(linkIDs))
	if len(linkIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		LinkID int64
		Total  int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Visit{}).
		Select("link_id, COUNT(*) AS total").
		Where("link_id IN ?", linkIDs).
		Group("link_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.LinkID] = row.Total
	}
	return counts, nil
}
