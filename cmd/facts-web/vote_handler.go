package main

import (
	"context"
	"facts/pkg/log"
	"facts/pkg/models"
	"net/http"
)

func (s *server) voteHandler(w http.ResponseWriter, r *http.Request) {
	logger := log.Logger()
	ss := s.sessions.get(w, r)

	kind, err := models.ParseVoteKind(r.PathValue("kind"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fact, ok := ss.feed.Fact(r.PathValue("id"))
	if !ok {
		http.Error(w, "fact not found", http.StatusNotFound)
		return
	}

	// the three writes run to completion even if the browser goes away
	result, err := ss.feed.CastVote(context.WithoutCancel(r.Context()), fact, kind)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err = result.Err(); err != nil {
		logger.Warningf(fact, "vote %s partially applied, %s", kind, err)
	}

	ss.markPatched()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
