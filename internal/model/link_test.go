package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "users", User{}.TableName())
	assert.Equal(t, "links", Link{}.TableName())
	assert.Equal(t, "visits", Visit{}.TableName())
}

func TestLink_IsExpired(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name      string
		expiresAt *time.Time
		expected  bool
	}{
		{
			name:      "without expiration",
			expiresAt: nil,
			expected:  false,
		},
		{
			name:      "future expiration",
			expiresAt: &future,
			expected:  false,
		},
		{
			name:      "past expiration",
			expiresAt: &past,
			expected:  true,
		},
		{
			name:      "expiring exactly now",
			expiresAt: &now,
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Link{ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.expected, l.IsExpired(now))
		})
	}
}

func TestLink_OwnedBy(t *testing.T) {
	l := Link{UserID: 7}
	assert.True(t, l.OwnedBy(7))
	assert.False(t, l.OwnedBy(8))
}

func TestNewLinkView(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("without expiration", func(t *testing.T) {
		l := &Link{ID: 3, ShortCode: "abc123", OriginalURL: "https://example.com", CreatedAt: created}

		view := NewLinkView(l, "https://acc.it", 5)

		assert.Equal(t, int64(3), view.ID)
		assert.Equal(t, "https://acc.it/abc123", view.ShortURL)
		assert.Equal(t, NeverExpires, view.ExpirationDate)
		assert.Equal(t, int64(5), view.VisitCount)
		assert.Equal(t, created, view.CreatedAt)
	})

	t.Run("with expiration", func(t *testing.T) {
		exp := time.Date(2025, 4, 1, 12, 30, 0, 0, time.UTC)
		l := &Link{ShortCode: "abc123", ExpiresAt: &exp}

		view := NewLinkView(l, "https://acc.it", 0)

		assert.Equal(t, "2025-04-01T12:30:00Z", view.ExpirationDate)
	})
}

func TestLinkTopic(t *testing.T) {
	assert.Equal(t, "url/abc123", LinkTopic("abc123"))
}
