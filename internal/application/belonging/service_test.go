package belonging

import (
	"context"
	"testing"

	"github.com/packtrack/backend/internal/domain/belonging"
	"github.com/packtrack/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBelongingRepository is a mock implementation of BelongingRepository
type MockBelongingRepository struct {
	mock.Mock
}

func (m *MockBelongingRepository) FindByID(ctx context.Context, id int64) (*belonging.Belonging, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*belonging.Belonging), args.Error(1)
}

func (m *MockBelongingRepository) FindAll(ctx context.Context, filter belonging.Filter) ([]belonging.Belonging, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]belonging.Belonging), args.Error(1)
}

func (m *MockBelongingRepository) Save(ctx context.Context, b *belonging.Belonging) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBelongingRepository) SaveBatch(ctx context.Context, items []*belonging.Belonging) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockBelongingRepository) Update(ctx context.Context, b *belonging.Belonging) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBelongingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBelongingRepository) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBelongingRepository) ListTags(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

// MockReportInvalidator records cache invalidations
type MockReportInvalidator struct {
	mock.Mock
}

func (m *MockReportInvalidator) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

func newTestService() (*BelongingService, *MockBelongingRepository, *MockReportInvalidator) {
	repo := new(MockBelongingRepository)
	reports := new(MockReportInvalidator)
	return NewBelongingService(repo, reports), repo, reports
}

func mustBelonging(t *testing.T, name, category string, tags belonging.Tags, status belonging.Status) *belonging.Belonging {
	t.Helper()
	b, err := belonging.NewBelonging(name, category, tags, status)
	if err != nil {
		t.Fatalf("NewBelonging: %v", err)
	}
	return b
}

func TestBelongingServiceCreate(t *testing.T) {
	t.Run("creates and invalidates reports", func(t *testing.T) {
		service, repo, reports := newTestService()

		repo.On("Save", mock.Anything, mock.AnythingOfType("*belonging.Belonging")).Return(nil)
		reports.On("Invalidate", mock.Anything).Return()

		resp, err := service.Create(context.Background(), CreateBelongingRequest{
			Name:     "Laptop",
			Category: "electronics",
			Tags:     []string{"work", "fragile"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "Laptop", resp.Name)
		assert.Equal(t, "unpacked", resp.Status)
		assert.Equal(t, []string{"work", "fragile"}, resp.Tags)
		repo.AssertExpectations(t)
		reports.AssertExpectations(t)
	})

	t.Run("rejects an invalid request before touching the store", func(t *testing.T) {
		service, repo, _ := newTestService()

		_, err := service.Create(context.Background(), CreateBelongingRequest{Name: "  ", Category: "misc"})

		assert.Error(t, err)
		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("surfaces store errors without invalidating", func(t *testing.T) {
		service, repo, reports := newTestService()

		repo.On("Save", mock.Anything, mock.Anything).Return(assert.AnError)

		_, err := service.Create(context.Background(), CreateBelongingRequest{Name: "Lamp", Category: "furniture"})

		assert.Error(t, err)
		reports.AssertNotCalled(t, "Invalidate", mock.Anything)
	})
}

func TestBelongingServiceCreateBulk(t *testing.T) {
	t.Run("saves the whole batch in one call", func(t *testing.T) {
		service, repo, reports := newTestService()

		repo.On("SaveBatch", mock.Anything, mock.AnythingOfType("[]*belonging.Belonging")).Return(nil)
		reports.On("Invalidate", mock.Anything).Return()

		resp, err := service.CreateBulk(context.Background(), BulkCreateRequest{
			Items: []CreateBelongingRequest{
				{Name: "Plates", Category: "kitchen"},
				{Name: "Mugs", Category: "kitchen", Status: "packed"},
			},
		})

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "packed", resp[1].Status)
		repo.AssertExpectations(t)
		reports.AssertExpectations(t)
	})

	t.Run("a single bad item rejects the whole batch", func(t *testing.T) {
		service, repo, _ := newTestService()

		_, err := service.CreateBulk(context.Background(), BulkCreateRequest{
			Items: []CreateBelongingRequest{
				{Name: "Plates", Category: "kitchen"},
				{Name: "Bad", Category: ""},
			},
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "SaveBatch", mock.Anything, mock.Anything)
	})
}

func TestBelongingServiceUpdate(t *testing.T) {
	t.Run("replaces the full field set", func(t *testing.T) {
		service, repo, reports := newTestService()

		existing := mustBelonging(t, "Laptop", "electronics", belonging.Tags{"work"}, belonging.StatusUnpacked)
		existing.ID = 7

		repo.On("FindByID", mock.Anything, int64(7)).Return(existing, nil)
		repo.On("Update", mock.Anything, existing).Return(nil)
		reports.On("Invalidate", mock.Anything).Return()

		resp, err := service.Update(context.Background(), 7, UpdateBelongingRequest{
			Name:     "MacBook",
			Category: "electronics",
			Tags:     []string{"work", "fragile"},
			Status:   "packed",
		})

		assert.NoError(t, err)
		assert.Equal(t, "MacBook", resp.Name)
		assert.Equal(t, "packed", resp.Status)
		repo.AssertExpectations(t)
		reports.AssertExpectations(t)
	})

	t.Run("returns not found for a missing belonging", func(t *testing.T) {
		service, repo, _ := newTestService()

		repo.On("FindByID", mock.Anything, int64(99)).Return(nil, shared.ErrNotFound)

		_, err := service.Update(context.Background(), 99, UpdateBelongingRequest{Name: "X", Category: "y"})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestBelongingServiceDelete(t *testing.T) {
	t.Run("deletes and invalidates reports", func(t *testing.T) {
		service, repo, reports := newTestService()

		repo.On("Delete", mock.Anything, int64(3)).Return(nil)
		reports.On("Invalidate", mock.Anything).Return()

		assert.NoError(t, service.Delete(context.Background(), 3))
		repo.AssertExpectations(t)
		reports.AssertExpectations(t)
	})

	t.Run("propagates not found", func(t *testing.T) {
		service, repo, reports := newTestService()

		repo.On("Delete", mock.Anything, int64(3)).Return(shared.ErrNotFound)

		assert.ErrorIs(t, service.Delete(context.Background(), 3), shared.ErrNotFound)
		reports.AssertNotCalled(t, "Invalidate", mock.Anything)
	})
}

func TestBelongingServiceList(t *testing.T) {
	service, repo, _ := newTestService()

	items := []belonging.Belonging{
		*mustBelonging(t, "Laptop", "electronics", belonging.Tags{"work"}, belonging.StatusPacked),
	}
	repo.On("FindAll", mock.Anything, belonging.Filter{
		Search: "lap", Category: "electronics", Status: belonging.StatusPacked,
	}).Return(items, nil)

	resp, err := service.List(context.Background(), ListFilter{
		Search: "lap", Category: "electronics", Status: "packed",
	})

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "Laptop", resp[0].Name)
	repo.AssertExpectations(t)
}

func TestBelongingServiceGetByID(t *testing.T) {
	service, repo, _ := newTestService()

	item := mustBelonging(t, "Passport", "documents", nil, belonging.StatusUnpacked)
	item.ID = 12
	repo.On("FindByID", mock.Anything, int64(12)).Return(item, nil)

	resp, err := service.GetByID(context.Background(), 12)

	assert.NoError(t, err)
	assert.Equal(t, int64(12), resp.ID)
	assert.Equal(t, []string{}, resp.Tags)
}

func TestBelongingServiceListCategoriesAndTags(t *testing.T) {
	service, repo, _ := newTestService()

	repo.On("ListCategories", mock.Anything).Return([]string{"books", "electronics"}, nil)
	repo.On("ListTags", mock.Anything).Return([]string{"fragile", "work"}, nil)

	categories, err := service.ListCategories(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"books", "electronics"}, categories)

	tags, err := service.ListTags(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"fragile", "work"}, tags)
}
