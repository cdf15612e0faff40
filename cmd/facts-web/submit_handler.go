package main

import (
	"context"
	"facts/pkg/log"
	"net/http"
)

func (s *server) submitHandler(w http.ResponseWriter, r *http.Request) {
	logger := log.Logger()
	ss := s.sessions.get(w, r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ss.mu.Lock()
	ss.draft.Text = r.PostFormValue("text")
	ss.draft.Source = r.PostFormValue("source")
	ss.draft.Category = r.PostFormValue("category")
	created, ok := ss.feed.Submit(context.WithoutCancel(r.Context()), &ss.draft)
	ss.mu.Unlock()
	ss.markPatched()

	if !ok {
		http.Redirect(w, r, "/?form", http.StatusSeeOther)
		return
	}

	logger.Debugf(created, "submitted fact %s", created.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
