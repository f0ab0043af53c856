package belonging

import (
	"context"
)

// Filter narrows list queries. All set fields are AND-combined.
type Filter struct {
	Search   string // case-insensitive substring match on name
	Category string // exact category match
	Tag      string // belongings carrying this tag
	Status   Status // exact status match
}

// BelongingRepository defines the interface for belonging persistence
type BelongingRepository interface {
	// FindByID finds a belonging by its ID
	FindByID(ctx context.Context, id int64) (*Belonging, error)

	// FindAll finds all belongings matching the filter, newest first
	FindAll(ctx context.Context, filter Filter) ([]Belonging, error)

	// Save creates a new belonging and assigns its ID
	Save(ctx context.Context, b *Belonging) error

	// SaveBatch creates multiple belongings in a single transaction
	SaveBatch(ctx context.Context, items []*Belonging) error

	// Update persists the full field set of an existing belonging
	Update(ctx context.Context, b *Belonging) error

	// Delete removes a belonging and its schedule links
	Delete(ctx context.Context, id int64) error

	// ListCategories returns the distinct categories in use, ascending
	ListCategories(ctx context.Context) ([]string, error)

	// ListTags returns the deduplicated union of all tags, ascending
	ListTags(ctx context.Context) ([]string, error)
}
