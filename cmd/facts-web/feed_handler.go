package main

import (
	"errors"
	"facts/pkg/feed"
	"facts/pkg/log"
	"facts/pkg/models"
	"html/template"
	"net/http"
)

type factView struct {
	models.Fact
	Style template.CSS
}

type categoryView struct {
	models.Category
	Style template.CSS
}

type feedPage struct {
	Title      string
	Filter     models.Filter
	Categories []categoryView
	Facts      []factView
	Loading    bool
	ShowForm   bool
	Draft      models.Draft
	Remaining  int
}

func (s *server) feedHandler(w http.ResponseWriter, r *http.Request) {
	logger := log.Logger()
	ss := s.sessions.get(w, r)

	// every page load reads the store again, except the one right after a vote
	// or submission, which shows the list as it was patched
	patched := ss.takePatched()

	if r.URL.Query().Has("category") {
		filter, err := models.ParseFilter(r.URL.Query().Get("category"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err = ss.feed.SetFilter(r.Context(), filter); err != nil && !errors.Is(err, feed.ErrSuperseded) {
			logger.Rawf(log.Warning, "error loading facts for %s, %s", filter, err)
		}
	} else if !patched || ss.feed.State() == feed.Idle {
		if err := ss.feed.Refresh(r.Context()); err != nil && !errors.Is(err, feed.ErrSuperseded) {
			logger.Rawf(log.Warning, "error loading facts, %s", err)
		}
	}

	draft := ss.Draft()
	s.render(w, "index.html", feedPage{
		Title:      appTitle,
		Filter:     ss.feed.Filter(),
		Categories: categoryViews(),
		Facts:      factViews(ss.feed.Facts()),
		Loading:    ss.feed.State() == feed.Loading,
		ShowForm:   r.URL.Query().Has("form") || draft != (models.Draft{}),
		Draft:      draft,
		Remaining:  draft.Remaining(),
	})
}

func categoryViews() []categoryView {
	categories := models.Categories()
	views := make([]categoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, categoryView{Category: c, Style: background(c.Color)})
	}
	return views
}

func factViews(facts []models.Fact) []factView {
	logger := log.Logger()

	views := make([]factView, 0, len(facts))
	for _, f := range facts {
		c, ok := models.LookupCategory(f.Category)
		if !ok {
			logger.Debugf(f, "no display color for category %s", f.Category)
		}
		views = append(views, factView{Fact: f, Style: background(c.Color)})
	}
	return views
}

func background(color string) template.CSS {
	if len(color) == 0 {
		return ""
	}
	return template.CSS("background-color: " + color)
}
