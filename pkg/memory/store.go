package memory

import (
	"context"
	"facts/pkg/models"
	"fmt"
	"slices"
	"strings"
	"sync"
)

const defaultLimit = 1000

// Store keeps facts in process with the same read semantics as the remote collection.
type Store struct {
	mu    sync.Mutex
	limit int
	order []string
	facts map[string]models.Fact
}

func NewStore(limit int, seed ...models.Fact) *Store {
	if limit <= 0 {
		limit = defaultLimit
	}

	s := &Store{
		limit: limit,
		order: make([]string, 0, len(seed)),
		facts: make(map[string]models.Fact, len(seed)),
	}

	for _, f := range seed {
		if len(f.ID) == 0 {
			f.ID = models.NewFactID()
		}
		s.put(f)
	}

	return s
}

func (s *Store) FetchFacts(ctx context.Context, filter models.Filter) ([]*models.Fact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]models.Fact, 0, len(s.order))
	for _, id := range s.order {
		f := s.facts[id]
		if filter.Matches(f) {
			matched = append(matched, f)
		}
	}

	slices.SortStableFunc(matched, func(a, b models.Fact) int {
		return b.VotesInteresting - a.VotesInteresting
	})

	if len(matched) > s.limit {
		matched = matched[:s.limit]
	}

	facts := make([]*models.Fact, 0, len(matched))
	for i := range matched {
		f := matched[i]
		facts = append(facts, &f)
	}
	return facts, nil
}

func (s *Store) InsertFact(ctx context.Context, fact *models.Fact) (*models.Fact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	created := *fact
	created.ID = models.NewFactID()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.put(created)
	return &created, nil
}

func (s *Store) UpdateFactField(ctx context.Context, id, field string, value int) (*models.Fact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kind, err := models.ParseVoteKind(strings.TrimPrefix(field, "votes_"))
	if err != nil || kind.Field() != field {
		return nil, fmt.Errorf("field %s is not updatable", field)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.facts[id]
	if !ok {
		return nil, fmt.Errorf("%w, %s", models.ErrFactNotFound, id)
	}

	f = f.WithVotes(kind, value)
	s.facts[id] = f
	return &f, nil
}

// Len is the number of stored facts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

func (s *Store) put(f models.Fact) {
	if _, ok := s.facts[f.ID]; !ok {
		s.order = append(s.order, f.ID)
	}
	s.facts[f.ID] = f
}
