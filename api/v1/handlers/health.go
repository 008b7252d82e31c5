package handlers

import (
	"net/http"

	"github.com/GHutch55/fibonacci/api/v1/models"
)

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	SendData(w, models.HealthResponse{Status: "healthy"}, http.StatusOK)
}
