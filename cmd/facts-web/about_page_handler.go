package main

import (
	"facts/pkg/models"
	"net/http"
)

func (s *server) aboutPageHandler(w http.ResponseWriter, r *http.Request) {
	args := map[string]any{
		"name":       appTitle,
		"url":        s.cfg.Web.ExternalRootURL,
		"categories": models.Categories(),
	}

	s.render(w, "about.html", args)
}
