package suggestion

import (
	"context"
	"strings"

	"github.com/packtrack/backend/internal/infrastructure/ai"
	"go.uber.org/zap"
)

// RemoteSuggester is the model-backed suggestion client. It is nil when
// remote suggestions are disabled; every failure falls back to the local
// rule tables without a retry and without surfacing an error.
type RemoteSuggester interface {
	SuggestPackingItems(ctx context.Context, trip ai.TripContext) (*ai.SuggestionResult, error)
	SuggestCategory(ctx context.Context, itemName string) (*ai.SuggestionResult, error)
}

// categoryRule maps item-name keywords to a category and tags.
// Rules are ordered; the first keyword hit wins.
type categoryRule struct {
	keywords []string
	category string
	tags     []string
}

var categoryRules = []categoryRule{
	{keywords: []string{"phone", "laptop", "charger"}, category: "electronics", tags: []string{"tech"}},
	{keywords: []string{"shirt", "pants", "shoes"}, category: "clothes", tags: []string{"apparel"}},
	{keywords: []string{"toothbrush", "shampoo", "soap"}, category: "toiletries", tags: []string{"hygiene"}},
}

// tipRule is a packing tip that becomes redundant once an item matching
// its keyword is already tracked. An empty keyword always applies.
type tipRule struct {
	keyword string
	tip     string
}

var tipRules = []tipRule{
	{keyword: "", tip: "Label every box with the room it belongs to"},
	{keyword: "", tip: "Pack heavy items in small boxes so they stay liftable"},
	{keyword: "charger", tip: "Keep chargers and cables together in one pouch"},
	{keyword: "document", tip: "Carry important documents yourself instead of boxing them"},
	{keyword: "essential", tip: "Pack a first-night essentials bag before everything else"},
}

// SuggestionService produces packing suggestions. The local rule tables
// always answer; the remote model is consulted first when configured.
type SuggestionService struct {
	remote RemoteSuggester
	logger *zap.Logger
}

// NewSuggestionService creates a new SuggestionService. Pass a nil remote
// to run on the local rules alone.
func NewSuggestionService(remote RemoteSuggester, logger *zap.Logger) *SuggestionService {
	return &SuggestionService{
		remote: remote,
		logger: logger,
	}
}

// SuggestItems suggests items to pack for a trip, plus general tips
func (s *SuggestionService) SuggestItems(ctx context.Context, req ItemSuggestionRequest) ItemSuggestionResponse {
	if s.remote != nil {
		trip := ai.TripContext{
			Weather:      req.Weather,
			DurationDays: req.DurationDays,
			Destination:  req.Destination,
			Month:        req.Month,
		}
		if req.Temperature != nil {
			trip.Temperature = *req.Temperature
		}
		result, err := s.remote.SuggestPackingItems(ctx, trip)
		if err == nil {
			return ItemSuggestionResponse{
				Suggestions: emptySuggestionsIfNil(result.Suggestions),
				Tips:        emptyStringsIfNil(result.Tips),
			}
		}
		s.logger.Warn("remote item suggestion failed, using local rules", zap.Error(err))
	}
	return s.localItems(req)
}

// SuggestCategoryAndTags suggests a category and tags for one item name.
// No rule match yields an empty suggestion, not an error.
func (s *SuggestionService) SuggestCategoryAndTags(ctx context.Context, req CategorizeRequest) CategorizeResponse {
	if s.remote != nil {
		result, err := s.remote.SuggestCategory(ctx, req.Name)
		if err == nil && len(result.Suggestions) > 0 {
			first := result.Suggestions[0]
			return CategorizeResponse{
				Category: first.Category,
				Tags:     splitTags(first.Reason),
			}
		}
		if err != nil {
			s.logger.Warn("remote categorization failed, using local rules", zap.Error(err))
		}
	}
	return localCategory(req.Name)
}

// SuggestTips returns packing tips, skipping the ones the existing
// belongings already cover
func (s *SuggestionService) SuggestTips(_ context.Context, req TipsRequest) TipsResponse {
	existing := make([]string, 0, len(req.Existing))
	for _, name := range req.Existing {
		existing = append(existing, strings.ToLower(name))
	}

	tips := make([]string, 0, len(tipRules))
	for _, rule := range tipRules {
		if rule.keyword != "" && anyContains(existing, rule.keyword) {
			continue
		}
		tips = append(tips, rule.tip)
	}
	return TipsResponse{Tips: tips}
}

func (s *SuggestionService) localItems(req ItemSuggestionRequest) ItemSuggestionResponse {
	weather := strings.ToLower(req.Weather)
	destination := strings.ToLower(req.Destination)

	suggestions := []ai.Suggestion{}
	if strings.Contains(weather, "rain") {
		suggestions = append(suggestions, ai.Suggestion{
			Name: "Umbrella", Category: "travel", Priority: "high", Reason: "Rain in the forecast",
		})
	}
	if strings.Contains(weather, "hot") || (req.Temperature != nil && *req.Temperature > 80) {
		suggestions = append(suggestions, ai.Suggestion{
			Name: "Sunscreen", Category: "toiletries", Priority: "high", Reason: "Hot weather expected",
		})
	}
	if strings.Contains(destination, "beach") {
		suggestions = append(suggestions, ai.Suggestion{
			Name: "Swimsuit", Category: "clothes", Priority: "high", Reason: "Beach destination",
		})
	}
	if strings.Contains(weather, "cold") || strings.Contains(weather, "snow") ||
		(req.Temperature != nil && *req.Temperature < 40) {
		suggestions = append(suggestions, ai.Suggestion{
			Name: "Warm jacket", Category: "clothes", Priority: "high", Reason: "Cold weather expected",
		})
	}
	if req.DurationDays > 7 {
		suggestions = append(suggestions, ai.Suggestion{
			Name: "Laundry bag", Category: "travel", Priority: "medium", Reason: "Trip longer than a week",
		})
	}

	return ItemSuggestionResponse{
		Suggestions: suggestions,
		Tips:        s.SuggestTips(context.Background(), TipsRequest{}).Tips,
	}
}

func localCategory(name string) CategorizeResponse {
	lowered := strings.ToLower(name)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return CategorizeResponse{Category: rule.category, Tags: rule.tags}
			}
		}
	}
	return CategorizeResponse{Tags: []string{}}
}

func splitTags(reason string) []string {
	if strings.TrimSpace(reason) == "" {
		return []string{}
	}
	parts := strings.Split(reason, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func anyContains(haystacks []string, needle string) bool {
	for _, h := range haystacks {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}

func emptySuggestionsIfNil(suggestions []ai.Suggestion) []ai.Suggestion {
	if suggestions == nil {
		return []ai.Suggestion{}
	}
	return suggestions
}

func emptyStringsIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
