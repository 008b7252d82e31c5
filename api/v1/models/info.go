package models

type RootResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
