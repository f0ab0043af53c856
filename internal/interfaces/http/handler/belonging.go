package handler

import (
	"github.com/gin-gonic/gin"
	belongingapp "github.com/packtrack/backend/internal/application/belonging"
	"github.com/packtrack/backend/internal/interfaces/http/middleware"
)

// BelongingHandler handles belonging-related API endpoints
type BelongingHandler struct {
	BaseHandler
	service *belongingapp.BelongingService
}

// NewBelongingHandler creates a new BelongingHandler
func NewBelongingHandler(service *belongingapp.BelongingService) *BelongingHandler {
	return &BelongingHandler{service: service}
}

// List returns belongings matching the query filters, newest first
func (h *BelongingHandler) List(c *gin.Context) {
	var filter belongingapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}

// GetByID returns one belonging
func (h *BelongingHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid belonging ID")
		return
	}

	item, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// Create creates a new belonging
func (h *BelongingHandler) Create(c *gin.Context) {
	var req belongingapp.CreateBelongingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, item)
}

// CreateBulk creates several belongings in one transaction
func (h *BelongingHandler) CreateBulk(c *gin.Context) {
	var req belongingapp.BulkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	items, err := h.service.CreateBulk(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, items)
}

// Update replaces the full field set of a belonging
func (h *BelongingHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid belonging ID")
		return
	}

	var req belongingapp.UpdateBelongingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// Delete removes a belonging and its schedule links
func (h *BelongingHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid belonging ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListCategories returns the distinct categories in use
func (h *BelongingHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, categories)
}

// ListTags returns every tag in use, deduplicated
func (h *BelongingHandler) ListTags(c *gin.Context) {
	tags, err := h.service.ListTags(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tags)
}
