package main

import (
	"io/fs"
	"net/http"

	"github.com/donseba/go-htmx"
	"github.com/justinas/alice"
	"github.com/myrjola/tutorials/internal/routeguard"
	"github.com/myrjola/tutorials/ui"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	static, err := fs.Sub(ui.Files, "static")
	if err != nil {
		panic(err) // The directory is embedded at compile time.
	}
	mux.Handle("GET /static/", cacheForeverHeaders(http.StripPrefix("/static", http.FileServerFS(static))))

	mux.HandleFunc("GET /api/healthy", app.healthy)
	mux.HandleFunc("GET /api/products", app.products)
	mux.HandleFunc("GET /api/users/{id}", app.user)

	session := alice.New(app.sessionManager.LoadAndSave, app.noSurf, commonContext)

	mux.Handle("GET /{$}", http.RedirectHandler(routeguard.HomePath, http.StatusTemporaryRedirect))
	mux.Handle("GET /login", session.ThenFunc(app.login))
	mux.Handle("POST /login", session.ThenFunc(app.loginPost))

	mux.Handle("GET /home", session.ThenFunc(app.home))
	mux.Handle("GET /home/product", session.ThenFunc(app.homeProduct))
	mux.Handle("GET /home/about", session.ThenFunc(app.homeAbout))
	mux.Handle("GET /home/profile/{userType}", session.ThenFunc(app.profile))

	mux.Handle("GET /userouting", session.ThenFunc(app.useRouting))
	mux.Handle("GET /about", session.ThenFunc(app.about))
	mux.Handle("GET /about/{section...}", session.ThenFunc(app.about))
	mux.Handle("GET /projects/{details...}", session.ThenFunc(app.projects))
	mux.Handle("GET /imagesclass", session.ThenFunc(app.images))
	mux.Handle("GET /fontsclass", session.ThenFunc(app.fonts))

	data := session.Append(app.timeout)
	mux.Handle("GET /data/server", data.ThenFunc(app.dataServer))
	mux.Handle("GET /data/client", data.Append(htmx.MiddleWare).ThenFunc(app.dataClient))

	standard := alice.New(app.recoverPanic, app.logRequest, app.secureHeaders, app.guard.Middleware)
	return standard.Then(mux)
}
