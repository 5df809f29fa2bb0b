package service

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nordstudio/internal/cache"
	apperrors "nordstudio/internal/errors"
	"nordstudio/internal/model"
	"nordstudio/internal/store"
)

// MockStore is a mock implementation of store.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) List(ctx context.Context, collection string) ([]store.Document, error) {
	args := m.Called(ctx, collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Document), args.Error(1)
}

func (m *MockStore) Get(ctx context.Context, collection, id string) (store.Document, bool, error) {
	args := m.Called(ctx, collection, id)
	return args.Get(0).(store.Document), args.Bool(1), args.Error(2)
}

func (m *MockStore) Add(ctx context.Context, collection string, fields map[string]interface{}) (string, error) {
	args := m.Called(ctx, collection, fields)
	return args.String(0), args.Error(1)
}

func (m *MockStore) Set(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, collection, id, fields)
	return args.Error(0)
}

func (m *MockStore) Delete(ctx context.Context, collection, id string) error {
	args := m.Called(ctx, collection, id)
	return args.Error(0)
}

// newMemoryService builds a service over a fresh in-memory store with no cache.
func newMemoryService() (PortfolioService, *store.MemoryStore) {
	st := store.NewMemory()
	return NewPortfolioService(st, (*cache.Client)(nil)), st
}

func TestPortfolioService_CreateFillsDefaults(t *testing.T) {
	svc, _ := newMemoryService()

	created, err := svc.Create(context.Background(), &PortfolioInput{Title: "X"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "X", created.Title)
	assert.Equal(t, "", created.Description)
	assert.Equal(t, []string{}, created.Images)
	assert.Equal(t, "", created.Client)
	assert.Equal(t, strconv.Itoa(time.Now().Year()), created.Year)
	assert.Equal(t, "", created.Category)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	_, err = time.Parse(time.RFC3339, created.CreatedAt)
	assert.NoError(t, err, "timestamps must be ISO-8601")
}

func TestPortfolioService_CreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		input PortfolioInput
		field string
	}{
		{"empty title", PortfolioInput{Title: ""}, "title"},
		{"blank title", PortfolioInput{Title: "   "}, "title"},
		{"title too long", PortfolioInput{Title: strings.Repeat("a", 101)}, "title"},
		{"description too long", PortfolioInput{Title: "ok", Description: strings.Repeat("d", 1001)}, "description"},
		{"client too long", PortfolioInput{Title: "ok", Client: strings.Repeat("c", 101)}, "client"},
		{"year not four digits", PortfolioInput{Title: "ok", Year: "20245"}, "year"},
		{"year not numeric", PortfolioInput{Title: "ok", Year: "20xy"}, "year"},
		{"category too long", PortfolioInput{Title: "ok", Category: strings.Repeat("k", 51)}, "category"},
		{"grid col span out of range", PortfolioInput{
			Title:     "ok",
			GridItems: []model.GridItem{{URL: "u", ColSpan: 7, RowSpan: 1}},
		}, "gridItems"},
		{"grid row span out of range", PortfolioInput{
			Title:     "ok",
			GridItems: []model.GridItem{{URL: "u", ColSpan: 1, RowSpan: 5}},
		}, "gridItems"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := new(MockStore)
			svc := NewPortfolioService(st, nil)

			_, err := svc.Create(context.Background(), &tt.input)
			require.Error(t, err)

			ve, ok := apperrors.AsValidationError(err)
			require.True(t, ok, "expected a validation error, got %v", err)
			fields := make([]string, 0, len(ve.Problems))
			for _, p := range ve.Problems {
				fields = append(fields, p.Field)
				assert.NotEmpty(t, p.Message)
			}
			assert.Contains(t, fields, tt.field)

			// validation failures never reach the store
			st.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestPortfolioService_CreateRejectedLeavesStoreUnchanged(t *testing.T) {
	svc, _ := newMemoryService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &PortfolioInput{Title: ""})
	require.Error(t, err)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestPortfolioService_CreateIDsUnique(t *testing.T) {
	svc, _ := newMemoryService()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		created, err := svc.Create(ctx, &PortfolioInput{Title: "shoot " + strconv.Itoa(i)})
		require.NoError(t, err)
		assert.False(t, seen[created.ID])
		seen[created.ID] = true
	}
}

func TestPortfolioService_CreateGetRoundTrip(t *testing.T) {
	svc, _ := newMemoryService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &PortfolioInput{
		Title:       "CITYHALL",
		Description: "civic architecture series",
		Images:      []string{"https://example.com/a.jpg", "https://example.com/b.jpg"},
		Client:      "City Planning Department",
		Year:        "2024",
		Category:    "Architectural Photography",
		GridItems: []model.GridItem{
			{URL: "https://example.com/a.jpg", ColSpan: 4, RowSpan: 2},
			{URL: "https://example.com/b.jpg", ColSpan: 2, RowSpan: 1},
		},
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
}

func TestPortfolioService_GetAbsent(t *testing.T) {
	svc, _ := newMemoryService()

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrPortfolioNotFound)
}

func TestPortfolioService_UpdateAbsent(t *testing.T) {
	svc, _ := newMemoryService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &PortfolioInput{Title: "keeper"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, "missing", &PortfolioInput{Title: "new"})
	assert.ErrorIs(t, err, apperrors.ErrPortfolioNotFound)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestPortfolioService_UpdateReplacesAndStamps(t *testing.T) {
	svc, _ := newMemoryService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &PortfolioInput{Title: "before", Year: "2020"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &PortfolioInput{
		Title:  "after",
		Images: []string{"https://example.com/new.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, []string{"https://example.com/new.jpg"}, updated.Images)
	// omitted year falls back to the default on a replace-style update
	assert.Equal(t, strconv.Itoa(time.Now().Year()), updated.Year)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.GreaterOrEqual(t, updated.UpdatedAt, created.UpdatedAt)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)
}

func TestPortfolioService_UpdateValidationShortCircuits(t *testing.T) {
	st := new(MockStore)
	svc := NewPortfolioService(st, nil)

	_, err := svc.Update(context.Background(), "some-id", &PortfolioInput{Title: ""})
	require.Error(t, err)
	_, ok := apperrors.AsValidationError(err)
	assert.True(t, ok)
	st.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	st.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPortfolioService_Delete(t *testing.T) {
	svc, _ := newMemoryService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &PortfolioInput{Title: "doomed"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), apperrors.ErrPortfolioNotFound)
}

func TestPortfolioService_StoreFailureSurfaces(t *testing.T) {
	st := new(MockStore)
	st.On("List", mock.Anything, model.CollectionPortfolios).
		Return(nil, apperrors.ErrStorage)
	svc := NewPortfolioService(st, nil)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrStorage)
	st.AssertExpectations(t)
}
