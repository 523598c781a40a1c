package main

import "net/http"

const (
	remoteImageURL    = "https://images.unsplash.com/photo-1554866585-cd94860890b7?q=80&w=1965&auto=format&fit=crop"
	fontStylesheetURL = "https://fonts.googleapis.com/css2?family=Roboto:wght@500&subset=greek-ext&display=swap"
)

type imagesTemplateData struct {
	BaseTemplateData
	RemoteImageURL string
}

func (app *application) images(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "imagesclass", imagesTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		RemoteImageURL:   remoteImageURL,
	})
}

type fontsTemplateData struct {
	BaseTemplateData
	FontStylesheetURL string
}

func (app *application) fonts(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "fontsclass", fontsTemplateData{
		BaseTemplateData:  app.newBaseTemplateData(r),
		FontStylesheetURL: fontStylesheetURL,
	})
}
