package handler

import (
	"github.com/gin-gonic/gin"
	suggestionapp "github.com/packtrack/backend/internal/application/suggestion"
	"github.com/packtrack/backend/internal/interfaces/http/middleware"
)

// SuggestionHandler handles packing suggestion endpoints
type SuggestionHandler struct {
	BaseHandler
	service *suggestionapp.SuggestionService
}

// NewSuggestionHandler creates a new SuggestionHandler
func NewSuggestionHandler(service *suggestionapp.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{service: service}
}

// SuggestItems suggests items to pack for a trip
func (h *SuggestionHandler) SuggestItems(c *gin.Context) {
	var req suggestionapp.ItemSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	h.Success(c, h.service.SuggestItems(c.Request.Context(), req))
}

// Categorize suggests a category and tags for one item name
func (h *SuggestionHandler) Categorize(c *gin.Context) {
	var req suggestionapp.CategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	h.Success(c, h.service.SuggestCategoryAndTags(c.Request.Context(), req))
}

// Tips returns packing tips not already covered by tracked belongings
func (h *SuggestionHandler) Tips(c *gin.Context) {
	var req suggestionapp.TipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	h.Success(c, h.service.SuggestTips(c.Request.Context(), req))
}
