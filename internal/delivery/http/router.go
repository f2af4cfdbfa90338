package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "indywinners/docs"
	"indywinners/internal/delivery/http/controllers"
)

// WinnersPath is the path of the winners listing page.
const WinnersPath = "/winners"

// NewRouter initializes the HTTP router with all application routes
func NewRouter(winnerController *controllers.WinnerController, healthController *controllers.HealthController) *http.ServeMux {
	mux := http.NewServeMux()

	// Winners page; GET and POST behave the same
	mux.HandleFunc("GET "+WinnersPath, winnerController.ListWinners)
	mux.HandleFunc("POST "+WinnersPath, winnerController.ListWinners)

	// Health
	mux.HandleFunc("GET /health/live", healthController.Live)
	mux.HandleFunc("GET /health/ready", healthController.Ready)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
