package belonging

import (
	"time"

	"github.com/packtrack/backend/internal/domain/belonging"
)

// CreateBelongingRequest represents a request to create a new belonging
type CreateBelongingRequest struct {
	Name     string   `json:"name" binding:"required,min=1,max=200"`
	Category string   `json:"category" binding:"required,min=1,max=100"`
	Tags     []string `json:"tags" binding:"omitempty,max=20,dive,min=1,max=50"`
	Status   string   `json:"status" binding:"omitempty,oneof=unpacked packed"`
}

// BulkCreateRequest represents a request to create several belongings at once
type BulkCreateRequest struct {
	Items []CreateBelongingRequest `json:"items" binding:"required,min=1,max=100,dive"`
}

// UpdateBelongingRequest replaces the full field set of a belonging
type UpdateBelongingRequest struct {
	Name     string   `json:"name" binding:"required,min=1,max=200"`
	Category string   `json:"category" binding:"required,min=1,max=100"`
	Tags     []string `json:"tags" binding:"omitempty,max=20,dive,min=1,max=50"`
	Status   string   `json:"status" binding:"omitempty,oneof=unpacked packed"`
}

// ListFilter represents filter options for the belonging list.
// All set fields are AND-combined.
type ListFilter struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Tag      string `form:"tag"`
	Status   string `form:"status" binding:"omitempty,oneof=unpacked packed"`
}

// BelongingResponse represents a belonging in API responses
type BelongingResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToBelongingResponse converts a domain Belonging to BelongingResponse
func ToBelongingResponse(b *belonging.Belonging) BelongingResponse {
	tags := []string(b.Tags)
	if tags == nil {
		tags = []string{}
	}
	return BelongingResponse{
		ID:        b.ID,
		Name:      b.Name,
		Category:  b.Category,
		Tags:      tags,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToBelongingResponses converts a slice of domain belongings
func ToBelongingResponses(items []belonging.Belonging) []BelongingResponse {
	responses := make([]BelongingResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToBelongingResponse(&items[i]))
	}
	return responses
}
