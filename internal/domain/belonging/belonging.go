package belonging

import (
	"strings"

	"github.com/packtrack/backend/internal/domain/shared"
)

// Status represents the packing status of a belonging
type Status string

const (
	StatusUnpacked Status = "unpacked"
	StatusPacked   Status = "packed"
)

// IsValid reports whether the status is a known value
func (s Status) IsValid() bool {
	return s == StatusUnpacked || s == StatusPacked
}

// Belonging represents a single item being tracked through a move
type Belonging struct {
	shared.BaseEntity
	Name     string `gorm:"type:text;not null" json:"name"`
	Category string `gorm:"type:text;not null" json:"category"`
	Tags     Tags   `gorm:"type:text;default:'[]'" json:"tags"`
	Status   Status `gorm:"type:text;not null;default:'unpacked'" json:"status"`
}

// TableName returns the table name for GORM
func (Belonging) TableName() string {
	return "belongings"
}

// NewBelonging creates a new belonging. Name and category are required;
// status defaults to unpacked when empty.
func NewBelonging(name, category string, tags Tags, status Status) (*Belonging, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)

	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Name is required")
	}
	if category == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Category is required")
	}
	if status == "" {
		status = StatusUnpacked
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Status must be 'packed' or 'unpacked'")
	}
	if err := validateTags(tags); err != nil {
		return nil, err
	}
	if tags == nil {
		tags = Tags{}
	}

	return &Belonging{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Category:   category,
		Tags:       tags,
		Status:     status,
	}, nil
}

// Update replaces the full field set and refreshes the update timestamp
func (b *Belonging) Update(name, category string, tags Tags, status Status) error {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)

	if name == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Name is required")
	}
	if category == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Category is required")
	}
	if status == "" {
		status = StatusUnpacked
	}
	if !status.IsValid() {
		return shared.NewDomainError("VALIDATION_ERROR", "Status must be 'packed' or 'unpacked'")
	}
	if err := validateTags(tags); err != nil {
		return err
	}
	if tags == nil {
		tags = Tags{}
	}

	b.Name = name
	b.Category = category
	b.Tags = tags
	b.Status = status
	b.Touch()

	return nil
}

// IsPacked reports whether the belonging is packed
func (b *Belonging) IsPacked() bool {
	return b.Status == StatusPacked
}

func validateTags(tags Tags) error {
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return shared.NewDomainError("VALIDATION_ERROR", "Tags cannot be empty")
		}
		if _, ok := seen[tag]; ok {
			return shared.NewDomainError("VALIDATION_ERROR", "Duplicate tag: "+tag)
		}
		seen[tag] = struct{}{}
	}
	return nil
}
