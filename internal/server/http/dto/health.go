package dto

// HealthResponse reports service and database liveness.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
