package feed

import (
	"context"
	"facts/pkg/log"
	"facts/pkg/models"
	"fmt"
	"sync"
	"time"
)

type State int

const (
	Idle State = iota
	Loading
	Ready
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Feed owns the current filter and the fact list for one viewer. All list
// mutations are whole-list replacement, single fact replacement by id, or
// prepend. The mutex is never held across a store call.
type Feed struct {
	store    Store
	notifier Notifier
	now      func() time.Time

	mu         sync.Mutex
	filter     models.Filter
	generation uint64
	state      State
	facts      []models.Fact
}

type Option func(*Feed)

func WithNotifier(n Notifier) Option {
	return func(f *Feed) {
		f.notifier = n
	}
}

func WithClock(now func() time.Time) Option {
	return func(f *Feed) {
		f.now = now
	}
}

func New(store Store, opts ...Option) *Feed {
	f := &Feed{
		store:  store,
		now:    time.Now,
		filter: models.FilterAll,
		state:  Idle,
		facts:  make([]models.Fact, 0),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

func (f *Feed) Filter() models.Filter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filter
}

func (f *Feed) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Facts returns a copy of the current list.
func (f *Feed) Facts() []models.Fact {
	f.mu.Lock()
	defer f.mu.Unlock()

	facts := make([]models.Fact, len(f.facts))
	copy(facts, f.facts)
	return facts
}

func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.facts)
}

func (f *Feed) Fact(id string) (models.Fact, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if i := f.indexOf(id); i >= 0 {
		return f.facts[i], true
	}
	return models.Fact{}, false
}

// SetFilter replaces the filter and fetches the matching facts. It returns
// ErrSuperseded when another fetch was started before this one resolved.
func (f *Feed) SetFilter(ctx context.Context, filter models.Filter) error {
	if !filter.IsAll() && !models.IsCategory(string(filter)) {
		return &ValidationFailure{Field: "filter", Reason: fmt.Sprintf("unknown category %q", filter)}
	}

	return f.fetch(ctx, filter)
}

// Refresh fetches again for the current filter. It is also how the first load happens.
func (f *Feed) Refresh(ctx context.Context) error {
	return f.fetch(ctx, f.Filter())
}

func (f *Feed) fetch(ctx context.Context, filter models.Filter) error {
	logger := log.Logger()

	generation := f.begin(filter)

	facts, err := f.store.FetchFacts(ctx, filter)
	if err != nil {
		if !f.resolve(generation, nil, false) {
			logger.Debugf(nil, "ignoring failed superseded fetch for %s, %s", filter, err)
			return ErrSuperseded
		}
		logger.Warningf(nil, "error fetching facts for %s, %s", filter, err)
		return &RemoteFailure{Op: OpFetch, Err: err}
	}

	if !f.resolve(generation, facts, true) {
		logger.Debugf(nil, "discarding superseded fetch for %s", filter)
		return ErrSuperseded
	}

	logger.Debugf(nil, "fetched %d facts for %s", len(facts), filter)
	return nil
}

// begin records filter as current and returns the token the fetch must present to apply its result.
func (f *Feed) begin(filter models.Filter) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.generation++
	f.filter = filter
	f.state = Loading
	return f.generation
}

// resolve applies a fetch result if generation is still current. A failed
// current fetch leaves the list untouched but still moves to Ready.
func (f *Feed) resolve(generation uint64, facts []*models.Fact, ok bool) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if generation != f.generation {
		return false
	}

	if ok {
		f.facts = dedupe(facts)
	}
	f.state = Ready
	return true
}

// patch replaces the fact with the same id. Facts no longer in the list are ignored.
func (f *Feed) patch(fact models.Fact) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := f.indexOf(fact.ID)
	if i < 0 {
		return false
	}

	facts := make([]models.Fact, len(f.facts))
	copy(facts, f.facts)
	facts[i] = fact
	f.facts = facts
	return true
}

func (f *Feed) prepend(fact models.Fact) {
	f.mu.Lock()
	defer f.mu.Unlock()

	facts := make([]models.Fact, 0, len(f.facts)+1)
	facts = append(facts, fact)
	for _, existing := range f.facts {
		if existing.ID != fact.ID {
			facts = append(facts, existing)
		}
	}
	f.facts = facts
}

func (f *Feed) indexOf(id string) int {
	for i := range f.facts {
		if f.facts[i].ID == id {
			return i
		}
	}
	return -1
}

func (f *Feed) notify(event *models.FactEvent) {
	if f.notifier == nil {
		return
	}

	if err := f.notifier.Publish(event); err != nil {
		log.Logger().Warningf(event, "error publishing %s event, %s", event.Type, err)
	}
}

func dedupe(facts []*models.Fact) []models.Fact {
	seen := make(map[string]bool, len(facts))
	list := make([]models.Fact, 0, len(facts))
	for _, fact := range facts {
		if fact == nil || seen[fact.ID] {
			continue
		}
		seen[fact.ID] = true
		list = append(list, *fact)
	}
	return list
}
