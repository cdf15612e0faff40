package main

import (
	"context"
	"embed"
	"facts/pkg/config"
	"facts/pkg/feed"
	"facts/pkg/log"
	"fmt"
	"html/template"
	nativeLog "log"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

const appTitle = "Today I Learned"

type server struct {
	ctx       context.Context
	cfg       *config.Config
	store     feed.Store
	notifier  feed.Notifier
	sessions  *sessions
	templates *template.Template
}

func newServer(ctx context.Context, cfg *config.Config, store feed.Store) *server {
	s := &server{
		ctx:       ctx,
		cfg:       cfg,
		store:     store,
		templates: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
	s.sessions = newSessions(s.newFeed)
	return s
}

func (s *server) newFeed() *feed.Feed {
	if s.notifier == nil {
		return feed.New(s.store)
	}
	return feed.New(s.store, feed.WithNotifier(s.notifier))
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.feedHandler)
	mux.HandleFunc("POST /facts", s.submitHandler)
	mux.HandleFunc("POST /facts/{id}/vote/{kind}", s.voteHandler)

	// page routes
	mux.HandleFunc("GET /about", s.aboutPageHandler)
	mux.HandleFunc("GET /healthz", s.healthHandler)

	return mux
}

func (s *server) start() {
	logger := log.Logger()
	logger.Rawf(log.Info, "starting %s on :%d", s.cfg.Web.ExternalRootURL, s.cfg.Web.Port)

	nativeLog.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", s.cfg.Web.Port), s.routes()))
}

func (s *server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Logger().Rawf(log.Error, "error executing template %s, %s", name, err)
		http.Error(w, "render error", http.StatusInternalServerError)
	}
}

func (s *server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
