package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accorcia/internal/mocks"
	"accorcia/internal/model"
	"accorcia/internal/repository"
)

type redirectMocks struct {
	links     *mocks.MockLinkRepository
	visits    *mocks.MockVisitRepository
	cache     *mocks.MockLinkCache
	publisher *mocks.MockVisitPublisher
}

func newRedirectService(ctrl *gomock.Controller) (*RedirectService, redirectMocks) {
	m := redirectMocks{
		links:     mocks.NewMockLinkRepository(ctrl),
		visits:    mocks.NewMockVisitRepository(ctrl),
		cache:     mocks.NewMockLinkCache(ctrl),
		publisher: mocks.NewMockVisitPublisher(ctrl),
	}
	svc := NewRedirectService(m.links, m.visits, m.cache, m.publisher)
	svc.now = func() time.Time { return fixedNow }
	return svc, m
}

func TestRedirectService_Visit(t *testing.T) {
	active := &model.Link{ID: 5, ShortCode: "abc123", OriginalURL: "https://example.com", UserID: 7}

	t.Run("cache hit records and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newRedirectService(ctrl)
		m.cache.EXPECT().GetCachedLink(gomock.Any(), "abc123").Return(active, nil)
		m.visits.EXPECT().SaveVisit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v *model.Visit) error {
				assert.Equal(t, int64(5), v.LinkID)
				assert.Equal(t, fixedNow, v.VisitedAt)
				assert.Equal(t, "203.0.113.7", v.IPAddress)
				assert.Equal(t, "curl/8.0", v.UserAgent)
				return nil
			})
		m.visits.EXPECT().CountVisits(gomock.Any(), int64(5)).Return(int64(4), nil)
		m.publisher.EXPECT().PublishVisit(gomock.Any(), "url/abc123", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, evt *model.VisitEvent) error {
				assert.Equal(t, "abc123", evt.ShortCode)
				assert.Equal(t, int64(4), evt.VisitCount)
				assert.Equal(t, fixedNow, evt.LastVisit.VisitDate)
				assert.Equal(t, "203.0.113.7", evt.LastVisit.IPAddress)
				assert.Equal(t, "curl/8.0", evt.LastVisit.UserAgent)
				return nil
			})

		target, err := svc.Visit(context.Background(), "abc123", "203.0.113.7", "curl/8.0")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", target)
	})

	t.Run("cache miss reads through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newRedirectService(ctrl)
		m.cache.EXPECT().GetCachedLink(gomock.Any(), "abc123").Return(nil, repository.ErrNotFound)
		m.links.EXPECT().GetLinkByCode(gomock.Any(), "abc123").Return(active, nil)
		m.cache.EXPECT().CacheLink(gomock.Any(), active).Return(nil)
		m.visits.EXPECT().SaveVisit(gomock.Any(), gomock.Any()).Return(nil)
		m.visits.EXPECT().CountVisits(gomock.Any(), int64(5)).Return(int64(1), nil)
		m.publisher.EXPECT().PublishVisit(gomock.Any(), "url/abc123", gomock.Any()).Return(nil)

		target, err := svc.Visit(context.Background(), "abc123", "10.0.0.1", "")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", target)
	})

	t.Run("unknown code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newRedirectService(ctrl)
		m.cache.EXPECT().GetCachedLink(gomock.Any(), "nope").Return(nil, repository.ErrNotFound)
		m.links.EXPECT().GetLinkByCode(gomock.Any(), "nope").Return(nil, repository.ErrNotFound)

		_, err := svc.Visit(context.Background(), "nope", "10.0.0.1", "ua")
		assert.ErrorIs(t, err, ErrLinkNotFound)
	})

	t.Run("expired link records nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		past := fixedNow.Add(-time.Minute)
		expired := &model.Link{ID: 6, ShortCode: "old001", OriginalURL: "https://example.com", UserID: 7, ExpiresAt: &past}

		svc, m := newRedirectService(ctrl)
		m.cache.EXPECT().GetCachedLink(gomock.Any(), "old001").Return(expired, nil)

		_, err := svc.Visit(context.Background(), "old001", "10.0.0.1", "ua")
		assert.ErrorIs(t, err, ErrLinkExpired)
	})

	t.Run("publish failure does not fail the redirect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newRedirectService(ctrl)
		m.cache.EXPECT().GetCachedLink(gomock.Any(), "abc123").Return(active, nil)
		m.visits.EXPECT().SaveVisit(gomock.Any(), gomock.Any()).Return(nil)
		m.visits.EXPECT().CountVisits(gomock.Any(), int64(5)).Return(int64(2), nil)
		m.publisher.EXPECT().PublishVisit(gomock.Any(), "url/abc123", gomock.Any()).Return(errors.New("broker unavailable"))

		target, err := svc.Visit(context.Background(), "abc123", "10.0.0.1", "ua")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", target)
	})

	t.Run("count failure skips notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newRedirectService(ctrl)
		m.cache.EXPECT().GetCachedLink(gomock.Any(), "abc123").Return(active, nil)
		m.visits.EXPECT().SaveVisit(gomock.Any(), gomock.Any()).Return(nil)
		m.visits.EXPECT().CountVisits(gomock.Any(), int64(5)).Return(int64(0), errors.New("timeout"))

		_, err := svc.Visit(context.Background(), "abc123", "10.0.0.1", "ua")
		assert.NoError(t, err)
	})

	t.Run("visit store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newRedirectService(ctrl)
		m.cache.EXPECT().GetCachedLink(gomock.Any(), "abc123").Return(active, nil)
		m.visits.EXPECT().SaveVisit(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		_, err := svc.Visit(context.Background(), "abc123", "10.0.0.1", "ua")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrLinkNotFound)
	})

	t.Run("stale cache entry of a deleted link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newRedirectService(ctrl)
		m.cache.EXPECT().GetCachedLink(gomock.Any(), "abc123").Return(active, nil)
		m.visits.EXPECT().SaveVisit(gomock.Any(), gomock.Any()).Return(repository.ErrNotFound)
		m.cache.EXPECT().EvictLink(gomock.Any(), "abc123").Return(nil)

		_, err := svc.Visit(context.Background(), "abc123", "10.0.0.1", "ua")
		assert.ErrorIs(t, err, ErrLinkNotFound)
	})

	t.Run("cache error falls back to store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newRedirectService(ctrl)
		m.cache.EXPECT().GetCachedLink(gomock.Any(), "abc123").Return(nil, errors.New("redis down"))
		m.links.EXPECT().GetLinkByCode(gomock.Any(), "abc123").Return(active, nil)
		m.cache.EXPECT().CacheLink(gomock.Any(), active).Return(errors.New("redis down"))
		m.visits.EXPECT().SaveVisit(gomock.Any(), gomock.Any()).Return(nil)
		m.visits.EXPECT().CountVisits(gomock.Any(), int64(5)).Return(int64(1), nil)
		m.publisher.EXPECT().PublishVisit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		target, err := svc.Visit(context.Background(), "abc123", "10.0.0.1", "ua")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", target)
	})
}

func TestRedirectService_Visit_NoCacheNoPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	links := mocks.NewMockLinkRepository(ctrl)
	visits := mocks.NewMockVisitRepository(ctrl)
	svc := NewRedirectService(links, visits, nil, nil)

	links.EXPECT().GetLinkByCode(gomock.Any(), "abc123").Return(&model.Link{ID: 5, ShortCode: "abc123", OriginalURL: "https://example.com"}, nil)
	visits.EXPECT().SaveVisit(gomock.Any(), gomock.Any()).Return(nil)

	target, err := svc.Visit(context.Background(), "abc123", "10.0.0.1", "ua")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", target)
}
