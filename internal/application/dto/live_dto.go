package dto

// LiveViewResponse vista en vivo creada.
type LiveViewResponse struct {
	ID        string `json:"id"`
	EventsURL string `json:"events_url"`
}

// FilterRequest texto de la barra de filtros.
type FilterRequest struct {
	SKU      string `json:"sku"`
	Location string `json:"location"`
}

// PickerInputRequest texto tecleado en un selector.
type PickerInputRequest struct {
	Query string `json:"query"`
}

// PickerKeyRequest tecla pulsada en un selector.
type PickerKeyRequest struct {
	Key string `json:"key"`
}

// PickerSelectRequest selección con puntero.
type PickerSelectRequest struct {
	Index int `json:"index"`
}

// LiveEvent evento publicado por una vista en vivo (payload del SSE).
type LiveEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}
