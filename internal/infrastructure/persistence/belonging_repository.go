package persistence

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/packtrack/backend/internal/domain/belonging"
	"github.com/packtrack/backend/internal/domain/schedule"
	"github.com/packtrack/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormBelongingRepository implements BelongingRepository using GORM
type GormBelongingRepository struct {
	db *gorm.DB
}

// NewGormBelongingRepository creates a new GormBelongingRepository
func NewGormBelongingRepository(db *gorm.DB) *GormBelongingRepository {
	return &GormBelongingRepository{db: db}
}

// FindByID finds a belonging by its ID
func (r *GormBelongingRepository) FindByID(ctx context.Context, id int64) (*belonging.Belonging, error) {
	var b belonging.Belonging
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindAll finds all belongings matching the filter, newest first
func (r *GormBelongingRepository) FindAll(ctx context.Context, filter belonging.Filter) ([]belonging.Belonging, error) {
	items := []belonging.Belonging{}
	query := r.applyFilter(r.db.WithContext(ctx).Model(&belonging.Belonging{}), filter)

	if err := query.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// applyFilter AND-combines the set filter fields onto the query
func (r *GormBelongingRepository) applyFilter(query *gorm.DB, filter belonging.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Tag != "" {
		// Tags are stored as a JSON array; matching the quoted tag keeps
		// the lookup portable across sqlite and postgres.
		query = query.Where("tags LIKE ?", `%"`+filter.Tag+`"%`)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	return query
}

// Save creates a new belonging and assigns its ID
func (r *GormBelongingRepository) Save(ctx context.Context, b *belonging.Belonging) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// SaveBatch creates multiple belongings in a single transaction.
// Either every item is inserted or none are.
func (r *GormBelongingRepository) SaveBatch(ctx context.Context, items []*belonging.Belonging) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update persists the full field set of an existing belonging
func (r *GormBelongingRepository) Update(ctx context.Context, b *belonging.Belonging) error {
	result := r.db.WithContext(ctx).Model(&belonging.Belonging{}).
		Where("id = ?", b.ID).
		Select("name", "category", "tags", "status", "updated_at").
		Updates(b)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a belonging and its schedule links
func (r *GormBelongingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&belonging.Belonging{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return tx.Delete(&schedule.EventBelonging{}, "belonging_id = ?", id).Error
	})
}

// ListCategories returns the distinct categories in use, ascending
func (r *GormBelongingRepository) ListCategories(ctx context.Context) ([]string, error) {
	categories := []string{}
	err := r.db.WithContext(ctx).Model(&belonging.Belonging{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// ListTags returns the deduplicated union of all tags, ascending
func (r *GormBelongingRepository) ListTags(ctx context.Context) ([]string, error) {
	var tagSets []belonging.Tags
	err := r.db.WithContext(ctx).Model(&belonging.Belonging{}).
		Pluck("tags", &tagSets).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	tags := []string{}
	for _, set := range tagSets {
		for _, tag := range set {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags, nil
}
