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

type linkMocks struct {
	links     *mocks.MockLinkRepository
	visits    *mocks.MockVisitRepository
	cache     *mocks.MockLinkCache
	generator *mocks.MockCodeGenerator
}

var fixedNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func newLinkService(ctrl *gomock.Controller) (*LinkService, linkMocks) {
	m := linkMocks{
		links:     mocks.NewMockLinkRepository(ctrl),
		visits:    mocks.NewMockVisitRepository(ctrl),
		cache:     mocks.NewMockLinkCache(ctrl),
		generator: mocks.NewMockCodeGenerator(ctrl),
	}
	svc := NewLinkService(m.links, m.visits, m.cache, m.generator, "https://acc.io")
	svc.now = func() time.Time { return fixedNow }
	return svc, m
}

func TestNewLinkService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLinkService(ctrl)

	assert.NotNil(t, svc)
	assert.Equal(t, m.links, svc.links)
	assert.Equal(t, m.cache, svc.cache)
	assert.Equal(t, "https://acc.io", svc.baseURL)
}

func TestLinkService_Create(t *testing.T) {
	tests := []struct {
		name        string
		req         *model.CreateLinkRequest
		setup       func(m linkMocks)
		wantErr     error
		wantCode    string
		wantExpires string
	}{
		{
			name: "generated code",
			req:  &model.CreateLinkRequest{OriginalURL: "https://example.com"},
			setup: func(m linkMocks) {
				m.generator.EXPECT().Generate().Return("Xy12Ab", nil)
				m.links.EXPECT().CreateLink(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode:    "Xy12Ab",
			wantExpires: model.NeverExpires,
		},
		{
			name: "custom code",
			req:  &model.CreateLinkRequest{OriginalURL: "https://example.com", ShortCode: "abc123"},
			setup: func(m linkMocks) {
				m.links.EXPECT().CreateLink(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode:    "abc123",
			wantExpires: model.NeverExpires,
		},
		{
			name: "custom code taken",
			req:  &model.CreateLinkRequest{OriginalURL: "https://example.com", ShortCode: "abc123"},
			setup: func(m linkMocks) {
				m.links.EXPECT().CreateLink(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicateKey)
			},
			wantErr: ErrDuplicateCode,
		},
		{
			name: "generated code collision is not retried",
			req:  &model.CreateLinkRequest{OriginalURL: "https://example.com"},
			setup: func(m linkMocks) {
				m.generator.EXPECT().Generate().Return("Xy12Ab", nil).Times(1)
				m.links.EXPECT().CreateLink(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicateKey).Times(1)
			},
			wantErr: ErrDuplicateCode,
		},
		{
			name:    "custom code with symbols",
			req:     &model.CreateLinkRequest{OriginalURL: "https://example.com", ShortCode: "ab-12"},
			setup:   func(m linkMocks) {},
			wantErr: ErrInvalidCode,
		},
		{
			name:    "reserved custom code",
			req:     &model.CreateLinkRequest{OriginalURL: "https://example.com", ShortCode: "api"},
			setup:   func(m linkMocks) {},
			wantErr: ErrInvalidCode,
		},
		{
			name: "valid expiration",
			req:  &model.CreateLinkRequest{OriginalURL: "https://example.com", ShortCode: "exp001", ExpirationDate: "2030-01-01T00:00:00"},
			setup: func(m linkMocks) {
				m.links.EXPECT().CreateLink(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode:    "exp001",
			wantExpires: "2030-01-01T00:00:00Z",
		},
		{
			name: "malformed expiration is ignored",
			req:  &model.CreateLinkRequest{OriginalURL: "https://example.com", ShortCode: "exp002", ExpirationDate: "next tuesday"},
			setup: func(m linkMocks) {
				m.links.EXPECT().CreateLink(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, l *model.Link) error {
						assert.Nil(t, l.ExpiresAt)
						return nil
					})
			},
			wantCode:    "exp002",
			wantExpires: model.NeverExpires,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newLinkService(ctrl)
			tt.setup(m)
			if tt.wantErr == nil {
				m.cache.EXPECT().EvictLink(gomock.Any(), tt.wantCode).Return(nil)
			}

			view, err := svc.Create(context.Background(), 7, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, view.ShortCode)
			assert.Equal(t, "https://acc.io/"+tt.wantCode, view.ShortURL)
			assert.Equal(t, tt.wantExpires, view.ExpirationDate)
			assert.Equal(t, fixedNow, view.CreatedAt)
			assert.Zero(t, view.VisitCount)
		})
	}
}

func TestLinkService_Create_StoresOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLinkService(ctrl)
	m.links.EXPECT().CreateLink(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l *model.Link) error {
			assert.Equal(t, int64(7), l.UserID)
			assert.Equal(t, "https://example.com", l.OriginalURL)
			l.ID = 42
			return nil
		})
	m.cache.EXPECT().EvictLink(gomock.Any(), "abc123").Return(nil)

	view, err := svc.Create(context.Background(), 7, &model.CreateLinkRequest{OriginalURL: "https://example.com", ShortCode: "abc123"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), view.ID)
}

func TestLinkService_Edit(t *testing.T) {
	ptr := func(s string) *string { return &s }
	existing := func() *model.Link {
		expires := time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC)
		return &model.Link{ID: 5, ShortCode: "abc123", OriginalURL: "https://old.example", UserID: 7, ExpiresAt: &expires}
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newLinkService(ctrl)
		m.links.EXPECT().GetLinkByCode(gomock.Any(), "nope").Return(nil, repository.ErrNotFound)

		_, err := svc.Edit(context.Background(), 7, "nope", &model.EditLinkRequest{OriginalURL: "https://x"})
		assert.ErrorIs(t, err, ErrLinkNotFound)
	})

	t.Run("not owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newLinkService(ctrl)
		m.links.EXPECT().GetLinkByCode(gomock.Any(), "abc123").Return(existing(), nil)

		_, err := svc.Edit(context.Background(), 8, "abc123", &model.EditLinkRequest{OriginalURL: "https://x"})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("malformed expiration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newLinkService(ctrl)
		m.links.EXPECT().GetLinkByCode(gomock.Any(), "abc123").Return(existing(), nil)

		_, err := svc.Edit(context.Background(), 7, "abc123", &model.EditLinkRequest{OriginalURL: "https://x", ExpirationDate: ptr("soon")})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("null expiration clears it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newLinkService(ctrl)
		m.links.EXPECT().GetLinkByCode(gomock.Any(), "abc123").Return(existing(), nil)
		m.links.EXPECT().UpdateLink(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l *model.Link) error {
				assert.Nil(t, l.ExpiresAt)
				assert.Equal(t, "https://new.example", l.OriginalURL)
				return nil
			})
		m.cache.EXPECT().EvictLink(gomock.Any(), "abc123").Return(nil)
		m.visits.EXPECT().CountVisits(gomock.Any(), int64(5)).Return(int64(3), nil)

		view, err := svc.Edit(context.Background(), 7, "abc123", &model.EditLinkRequest{OriginalURL: "https://new.example"})
		require.NoError(t, err)
		assert.Equal(t, model.NeverExpires, view.ExpirationDate)
		assert.Equal(t, int64(3), view.VisitCount)
	})

	t.Run("new expiration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newLinkService(ctrl)
		m.links.EXPECT().GetLinkByCode(gomock.Any(), "abc123").Return(existing(), nil)
		m.links.EXPECT().UpdateLink(gomock.Any(), gomock.Any()).Return(nil)
		m.cache.EXPECT().EvictLink(gomock.Any(), "abc123").Return(errors.New("redis down"))
		m.visits.EXPECT().CountVisits(gomock.Any(), int64(5)).Return(int64(0), nil)

		view, err := svc.Edit(context.Background(), 7, "abc123", &model.EditLinkRequest{
			OriginalURL:    "https://new.example",
			ExpirationDate: ptr("2031-05-06T07:08:09Z"),
		})
		require.NoError(t, err)
		assert.Equal(t, "2031-05-06T07:08:09Z", view.ExpirationDate)
		assert.Equal(t, "https://new.example", view.OriginalURL)
	})
}

func TestLinkService_Delete(t *testing.T) {
	link := &model.Link{ID: 5, ShortCode: "abc123", UserID: 7}

	t.Run("success evicts cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newLinkService(ctrl)
		m.links.EXPECT().GetLinkByCode(gomock.Any(), "abc123").Return(link, nil)
		m.links.EXPECT().DeleteLink(gomock.Any(), int64(5)).Return(nil)
		m.cache.EXPECT().EvictLink(gomock.Any(), "abc123").Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), 7, "abc123"))
	})

	t.Run("not owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newLinkService(ctrl)
		m.links.EXPECT().GetLinkByCode(gomock.Any(), "abc123").Return(link, nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), 8, "abc123"), ErrForbidden)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newLinkService(ctrl)
		m.links.EXPECT().GetLinkByCode(gomock.Any(), "gone").Return(nil, repository.ErrNotFound)

		assert.ErrorIs(t, svc.Delete(context.Background(), 7, "gone"), ErrLinkNotFound)
	})

	t.Run("concurrently deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newLinkService(ctrl)
		m.links.EXPECT().GetLinkByCode(gomock.Any(), "abc123").Return(link, nil)
		m.links.EXPECT().DeleteLink(gomock.Any(), int64(5)).Return(repository.ErrNotFound)

		assert.ErrorIs(t, svc.Delete(context.Background(), 7, "abc123"), ErrLinkNotFound)
	})
}

func TestLinkService_Delete_WithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	links := mocks.NewMockLinkRepository(ctrl)
	svc := NewLinkService(links, mocks.NewMockVisitRepository(ctrl), nil, mocks.NewMockCodeGenerator(ctrl), "https://acc.io")

	links.EXPECT().GetLinkByCode(gomock.Any(), "abc123").Return(&model.Link{ID: 5, ShortCode: "abc123", UserID: 7}, nil)
	links.EXPECT().DeleteLink(gomock.Any(), int64(5)).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 7, "abc123"))
}

func TestLinkService_ListByOwner(t *testing.T) {
	t.Run("with visit counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newLinkService(ctrl)
		m.links.EXPECT().ListLinksByOwner(gomock.Any(), int64(7)).Return([]model.Link{
			{ID: 1, ShortCode: "one111", UserID: 7},
			{ID: 2, ShortCode: "two222", UserID: 7},
		}, nil)
		m.links.EXPECT().CountVisitsByLinks(gomock.Any(), []int64{1, 2}).Return(map[int64]int64{2: 9}, nil)

		views, err := svc.ListByOwner(context.Background(), 7)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "one111", views[0].ShortCode)
		assert.Zero(t, views[0].VisitCount)
		assert.Equal(t, int64(9), views[1].VisitCount)
		assert.Equal(t, "https://acc.io/two222", views[1].ShortURL)
	})

	t.Run("no links", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newLinkService(ctrl)
		m.links.EXPECT().ListLinksByOwner(gomock.Any(), int64(7)).Return(nil, nil)
		m.links.EXPECT().CountVisitsByLinks(gomock.Any(), []int64{}).Return(map[int64]int64{}, nil)

		views, err := svc.ListByOwner(context.Background(), 7)
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})
}

func TestLinkService_CheckOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLinkService(ctrl)
	link := &model.Link{ID: 5, ShortCode: "abc123", UserID: 7}
	m.links.EXPECT().GetLinkByCode(gomock.Any(), "abc123").Return(link, nil).Times(2)
	m.links.EXPECT().GetLinkByCode(gomock.Any(), "nope").Return(nil, repository.ErrNotFound)

	assert.NoError(t, svc.CheckOwner(context.Background(), 7, "abc123"))
	assert.ErrorIs(t, svc.CheckOwner(context.Background(), 8, "abc123"), ErrForbidden)
	assert.ErrorIs(t, svc.CheckOwner(context.Background(), 7, "nope"), ErrLinkNotFound)
}
