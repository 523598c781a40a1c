package main

import (
	"net/http"
	"strconv"

	"github.com/myrjola/tutorials/internal/models"
	"github.com/myrjola/tutorials/internal/pager"
)

type dataServerTemplateData struct {
	BaseTemplateData
	Posts []models.Post
}

// dataServer renders the posts fetched from upstream while handling the request.
func (app *application) dataServer(w http.ResponseWriter, r *http.Request) {
	posts, err := app.upstream.Posts(r.Context())
	if err != nil {
		app.badGateway(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "dataserver", dataServerTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Posts:            posts,
	})
}

type dataClientTemplateData struct {
	BaseTemplateData
	Photos []models.Photo
	// Visible is the number of photos shown after this response.
	Visible int
	// Next is the visible count the sentinel requests once it's revealed.
	Next    int
	HasMore bool
}

// dataClient renders the photo grid with the first visible photos.
//
// The query parameter visible sets the window size. htmx requests issued by the sentinel receive only the photos
// from index from onwards together with a new sentinel, which replaces the old one in place.
func (app *application) dataClient(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	photos, total, err := app.photos.Window(r.Context(), queryInt(query.Get("visible")))
	if err != nil {
		app.badGateway(w, r, err)
		return
	}

	visible := len(photos)
	data := dataClientTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Photos:           photos,
		Visible:          visible,
		Next:             pager.Next(visible, total),
		HasMore:          pager.HasMore(visible, total),
	}

	if app.htmx.NewHandler(w, r).IsHxRequest() {
		// Photos before from are already on the page. A from past the window sends no cards at all.
		from := min(queryInt(query.Get("from")), visible)
		data.Photos = photos[from:]
		app.renderTemplate(w, r, http.StatusOK, "dataclient", "photos", data)
		return
	}

	app.render(w, r, http.StatusOK, "dataclient", data)
}

// queryInt parses a non-negative integer query value. Invalid or missing values are 0.
func queryInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
