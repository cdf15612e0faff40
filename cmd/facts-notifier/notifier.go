package main

import (
	"facts/pkg/config"
	"facts/pkg/log"
	"facts/pkg/models"
	"facts/pkg/queue"
	"sync"
)

type notifier struct {
	cfg   *config.Config
	tally *tally
}

func (n *notifier) start() {
	logger := log.Logger()
	logger.Rawf(log.Info, "receiving fact events from %s", n.cfg.Queue.Subscription)

	if err := queue.Get().Receive(n.handle); err != nil {
		logger.Errorf(nil, "error receiving fact events, %s", err)
	}
}

func (n *notifier) handle(event *models.FactEvent) {
	logger := log.Logger()

	switch event.Type {
	case models.FactEventCreated:
		n.tally.created()
		logger.Infof(event, "new %s fact %s: %s", event.Fact.Category, event.FactID, event.Fact.Text)
	case models.FactEventVoted:
		votes := n.tally.voted(event.FactID, event.Kind)
		logger.Infof(event, "fact %s voted %s (%d this session), now %d/%d/%d",
			event.FactID, event.Kind, votes,
			event.Fact.VotesInteresting, event.Fact.VotesMindblowing, event.Fact.VotesFalse)
	default:
		logger.Warningf(event, "unknown fact event type %s", event.Type)
	}
}

// tally counts the events seen since the notifier started.
type tally struct {
	mu     sync.Mutex
	facts  int
	byFact map[string]map[models.VoteKind]int
}

func newTally() *tally {
	return &tally{byFact: make(map[string]map[models.VoteKind]int)}
}

func (t *tally) created() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.facts++
	return t.facts
}

// voted records a vote and returns how many votes the fact has received in total.
func (t *tally) voted(factID string, kind models.VoteKind) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	kinds, ok := t.byFact[factID]
	if !ok {
		kinds = make(map[models.VoteKind]int)
		t.byFact[factID] = kinds
	}
	kinds[kind]++

	total := 0
	for _, c := range kinds {
		total += c
	}
	return total
}

func (t *tally) votes(factID string, kind models.VoteKind) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.byFact[factID][kind]
}
