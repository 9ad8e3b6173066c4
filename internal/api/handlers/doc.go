package handlers

// StatusResponse is the body of the health endpoints.
type StatusResponse struct {
	Status string   `json:"status"           example:"ok"`
	Failed []string `json:"failed,omitempty" example:"database"`
}
