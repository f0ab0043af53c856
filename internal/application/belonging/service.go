package belonging

import (
	"context"

	"github.com/packtrack/backend/internal/domain/belonging"
)

// ReportInvalidator drops cached analytics after a write.
// This decouples BelongingService from the concrete cache implementation.
type ReportInvalidator interface {
	Invalidate(ctx context.Context)
}

// BelongingService handles belonging-related business operations
type BelongingService struct {
	repo    belonging.BelongingRepository
	reports ReportInvalidator
}

// NewBelongingService creates a new BelongingService
func NewBelongingService(repo belonging.BelongingRepository, reports ReportInvalidator) *BelongingService {
	return &BelongingService{
		repo:    repo,
		reports: reports,
	}
}

// List returns belongings matching the filter, newest first
func (s *BelongingService) List(ctx context.Context, filter ListFilter) ([]BelongingResponse, error) {
	items, err := s.repo.FindAll(ctx, belonging.Filter{
		Search:   filter.Search,
		Category: filter.Category,
		Tag:      filter.Tag,
		Status:   belonging.Status(filter.Status),
	})
	if err != nil {
		return nil, err
	}
	return ToBelongingResponses(items), nil
}

// GetByID retrieves a belonging by ID
func (s *BelongingService) GetByID(ctx context.Context, id int64) (*BelongingResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToBelongingResponse(item)
	return &response, nil
}

// Create creates a new belonging
func (s *BelongingService) Create(ctx context.Context, req CreateBelongingRequest) (*BelongingResponse, error) {
	item, err := belonging.NewBelonging(req.Name, req.Category, req.Tags, belonging.Status(req.Status))
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}
	s.reports.Invalidate(ctx)

	response := ToBelongingResponse(item)
	return &response, nil
}

// CreateBulk creates several belongings in one transaction. Every item is
// validated before anything is written, so a bad entry rejects the whole
// batch without partial inserts.
func (s *BelongingService) CreateBulk(ctx context.Context, req BulkCreateRequest) ([]BelongingResponse, error) {
	items := make([]*belonging.Belonging, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, err := belonging.NewBelonging(itemReq.Name, itemReq.Category, itemReq.Tags, belonging.Status(itemReq.Status))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := s.repo.SaveBatch(ctx, items); err != nil {
		return nil, err
	}
	s.reports.Invalidate(ctx)

	responses := make([]BelongingResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToBelongingResponse(item))
	}
	return responses, nil
}

// Update replaces the full field set of an existing belonging
func (s *BelongingService) Update(ctx context.Context, id int64, req UpdateBelongingRequest) (*BelongingResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := item.Update(req.Name, req.Category, req.Tags, belonging.Status(req.Status)); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	s.reports.Invalidate(ctx)

	response := ToBelongingResponse(item)
	return &response, nil
}

// Delete removes a belonging and its schedule links
func (s *BelongingService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.reports.Invalidate(ctx)
	return nil
}

// ListCategories returns the distinct categories in use, ascending
func (s *BelongingService) ListCategories(ctx context.Context) ([]string, error) {
	return s.repo.ListCategories(ctx)
}

// ListTags returns the deduplicated union of all tags, ascending
func (s *BelongingService) ListTags(ctx context.Context) ([]string, error) {
	return s.repo.ListTags(ctx)
}
