package main

import (
	"greencommute-server/handlers"
	"net/http"
)

func SetupServer(port string) *http.Server {
	mux := http.NewServeMux()

	// setup routes
	mux.HandleFunc("/users", handlers.HandleUsers)

	mux.HandleFunc("/trips", handlers.HandleTrips)
	mux.HandleFunc("/baselines", handlers.HandleBaselines)

	mux.HandleFunc("/leaderboard", handlers.HandleLeaderboard)
	mux.HandleFunc("/report.csv", handlers.HandleReport)

	mux.HandleFunc("/resetTestDatabase", handlers.HandleResetTestDatabase)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	return server
}
