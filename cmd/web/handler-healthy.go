package main

import "net/http"

type healthResponse struct {
	Status string `json:"status"`
}

// healthy is excluded from the route guard so that probes need no identity marker.
func (app *application) healthy(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok"})
}
