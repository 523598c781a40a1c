package main

import (
	"net/http"
	"strings"
)

type useRoutingTemplateData struct {
	BaseTemplateData
}

func (app *application) useRouting(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "userouting", useRoutingTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
	})
}

type aboutTemplateData struct {
	BaseTemplateData
	Sections []string
}

func (app *application) about(w http.ResponseWriter, r *http.Request) {
	data := aboutTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Sections:         pathSegments(r.PathValue("section")),
	}

	app.render(w, r, http.StatusOK, "about", data)
}

type projectsTemplateData struct {
	BaseTemplateData
	Details string
}

// projects renders every segment after /projects/. At least one segment is required.
func (app *application) projects(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.PathValue("details"))
	if len(segments) == 0 {
		app.notFound(w, r)
		return
	}

	data := projectsTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Details:          strings.Join(segments, ", "),
	}

	app.render(w, r, http.StatusOK, "projects", data)
}

// pathSegments splits a wildcard path value into its non-empty segments.
func pathSegments(value string) []string {
	var segments []string
	for _, s := range strings.Split(value, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
