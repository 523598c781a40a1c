package main

import (
	"net/http"
)

type homeTemplateData struct {
	BaseTemplateData
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	data := homeTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
	}

	app.render(w, r, http.StatusOK, "home", data)
}

func (app *application) homeProduct(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "homeproduct", homeTemplateData{BaseTemplateData: app.newBaseTemplateData(r)})
}

func (app *application) homeAbout(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "homeabout", homeTemplateData{BaseTemplateData: app.newBaseTemplateData(r)})
}

type profileTemplateData struct {
	BaseTemplateData
	UserType string
}

// profile shows the last path segment, which need not match the marker in the cookie.
func (app *application) profile(w http.ResponseWriter, r *http.Request) {
	data := profileTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		UserType:         r.PathValue("userType"),
	}

	app.render(w, r, http.StatusOK, "profile", data)
}
