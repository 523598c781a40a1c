package main

import (
	"log/slog"
	"net/http"
)

type messageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

func (app *application) products(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusCreated, messageResponse{Message: "Message from product"})
}

func (app *application) user(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	app.logger.LogAttrs(r.Context(), slog.LevelDebug, "user route", slog.String("id", id))
	app.writeJSON(w, r, http.StatusCreated, messageResponse{
		Message: "Message from users from dynamic routing.",
		ID:      id,
	})
}
