package main

import (
	"log/slog"
	"net/http"

	"github.com/myrjola/tutorials/internal/errors"
	"github.com/myrjola/tutorials/internal/identity"
	"github.com/myrjola/tutorials/internal/routeguard"
)

const invalidUserMessage = "Invalid User"

type loginTemplateData struct {
	BaseTemplateData
}

func (app *application) login(w http.ResponseWriter, r *http.Request) {
	data := loginTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
	}

	app.render(w, r, http.StatusOK, "login", data)
}

// loginPost stores the submitted user type in the identity cookie when it's on the allow-list.
//
// Anything else flashes an alert and sends the visitor back to an empty login form.
func (app *application) loginPost(w http.ResponseWriter, r *http.Request) {
	var (
		err    error
		marker identity.Marker
		ctx    = r.Context()
	)
	if err = r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	if marker, err = identity.Parse(r.PostForm.Get(identity.CookieName)); err != nil {
		app.logger.LogAttrs(ctx, slog.LevelInfo, "rejected login", errors.SlogError(err))
		app.sessionManager.Put(ctx, string(flashSessionKey), invalidUserMessage)
		http.Redirect(w, r, routeguard.LoginPath, http.StatusSeeOther)
		return
	}

	identity.Write(w, marker, app.cookie)
	app.logger.LogAttrs(ctx, slog.LevelInfo, "logged in", slog.String("user_type", marker.String()))
	http.Redirect(w, r, routeguard.HomePath, http.StatusSeeOther)
}
