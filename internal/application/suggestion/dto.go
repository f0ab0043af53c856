package suggestion

import "github.com/packtrack/backend/internal/infrastructure/ai"

// ItemSuggestionRequest describes the trip to suggest packing items for.
// Temperature is a pointer so an explicit 0°F is distinguishable from the
// field being absent.
type ItemSuggestionRequest struct {
	Weather      string `json:"weather" binding:"max=100"`
	Temperature  *int   `json:"temperature"`
	DurationDays int    `json:"duration_days" binding:"omitempty,min=1,max=365"`
	Destination  string `json:"destination" binding:"max=200"`
	Month        string `json:"month" binding:"max=20"`
}

// CategorizeRequest asks for a category and tags for one item name
type CategorizeRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
}

// CategorizeResponse is the suggested category and tags for an item.
// Both fields are empty when no rule matches.
type CategorizeResponse struct {
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// TipsRequest carries the names of belongings already tracked
type TipsRequest struct {
	Existing []string `json:"existing"`
}

// ItemSuggestionResponse is the suggested item list plus general tips
type ItemSuggestionResponse struct {
	Suggestions []ai.Suggestion `json:"suggestions"`
	Tips        []string        `json:"tips"`
}

// TipsResponse is a list of packing tips
type TipsResponse struct {
	Tips []string `json:"tips"`
}
