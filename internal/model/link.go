package model

import (
	"time"
)

// Link represents a shortened URL owned by a user
type Link struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	ShortCode   string     `json:"short_code" gorm:"type:varchar(32);uniqueIndex;not null"`
	OriginalURL string     `json:"original_url" gorm:"type:text;not null"`
	UserID      int64      `json:"user_id" gorm:"index;not null"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at" gorm:"index"`
}

// TableName returns the table name for Link
func (Link) TableName() string {
	return "links"
}

// IsExpired reports whether the link expired before now
func (l *Link) IsExpired(now time.Time) bool {
	return l.ExpiresAt != nil && now.After(*l.ExpiresAt)
}

// OwnedBy reports whether userID owns the link
func (l *Link) OwnedBy(userID int64) bool {
	return l.UserID == userID
}

// CreateLinkRequest represents the request to create a short link.
// ExpirationDate stays a string so a malformed value can be ignored.
type CreateLinkRequest struct {
	OriginalURL    string `json:"originalUrl" binding:"required"`
	ShortCode      string `json:"shortCode"`
	ExpirationDate string `json:"expirationDate"`
}

// EditLinkRequest represents the request to edit a short link.
// An empty or null ExpirationDate clears the expiration.
type EditLinkRequest struct {
	OriginalURL    string  `json:"originalUrl" binding:"required"`
	ExpirationDate *string `json:"expirationDate"`
}

// LinkView is the API representation of a link
type LinkView struct {
	ID             int64     `json:"id"`
	OriginalURL    string    `json:"originalUrl"`
	ShortCode      string    `json:"shortCode"`
	ShortURL       string    `json:"shortUrl"`
	CreatedAt      time.Time `json:"createdAt"`
	ExpirationDate string    `json:"expirationDate"`
	VisitCount     int64     `json:"visitCount"`
}

// NeverExpires is rendered in place of a missing expiration date
const NeverExpires = "never"

// NewLinkView builds the API view of a link
func NewLinkView(l *Link, baseURL string, visitCount int64) LinkView {
	expiration := NeverExpires
	if l.ExpiresAt != nil {
		expiration = l.ExpiresAt.UTC().Format(time.RFC3339)
	}
	return LinkView{
		ID:             l.ID,
		OriginalURL:    l.OriginalURL,
		ShortCode:      l.ShortCode,
		ShortURL:       baseURL + "/" + l.ShortCode,
		CreatedAt:      l.CreatedAt,
		ExpirationDate: expiration,
		VisitCount:     visitCount,
	}
}
