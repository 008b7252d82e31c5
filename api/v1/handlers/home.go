package handlers

import (
	"net/http"

	"github.com/GHutch55/fibonacci/api/v1/models"
)

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	response := models.RootResponse{
		Message: "Fibonacci Calculator API",
		Endpoints: []string{
			"/fibonacci/{n}",
			"/fibonacci/{n}/sequence",
		},
	}
	SendData(w, response, http.StatusOK)
}
