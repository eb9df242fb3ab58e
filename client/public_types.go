package client

// GroceryItem is one entry of a list.
type GroceryItem struct {
	Name      string `json:"name" yaml:"name"`
	Quantity  int    `json:"quantity" yaml:"quantity"`
	Purchased bool   `json:"purchased" yaml:"purchased"`
}

// GroceryList as returned by the API.
type GroceryList struct {
	ID    string        `json:"id" yaml:"id"`
	Title string        `json:"title" yaml:"title"`
	Items []GroceryItem `json:"items" yaml:"items"`
}

// ListRequest is the create/replace body.
type ListRequest struct {
	Title string        `json:"title"`
	Items []GroceryItem `json:"items"`
}

// MessageResponse is the confirmation body of mutating endpoints.
type MessageResponse struct {
	Message string `json:"message" yaml:"message"`
	ID      string `json:"id,omitempty" yaml:"id,omitempty"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status     string          `json:"status" yaml:"status"`
	Timestamp  string          `json:"timestamp" yaml:"timestamp"`
	Components map[string]bool `json:"components,omitempty" yaml:"components,omitempty"`
}
