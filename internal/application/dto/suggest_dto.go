package dto

import "github.com/jhoicas/Inventario-dashboard/internal/domain/suggest"

// SuggestionListResponse GET /dashboard/suggest/*.
type SuggestionListResponse struct {
	Query string         `json:"query"`
	Items []suggest.Item `json:"items"`
}

// PickerStateResponse estado de un selector de una vista en vivo.
type PickerStateResponse struct {
	Query          string         `json:"query"`
	IsOpen         bool           `json:"is_open"`
	HighlightIndex int            `json:"highlight_index"`
	Selected       string         `json:"selected,omitempty"`
	Items          []suggest.Item `json:"items"`
}
