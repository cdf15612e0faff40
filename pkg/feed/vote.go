package feed

import (
	"context"
	"errors"
	"facts/pkg/log"
	"facts/pkg/models"
	"fmt"
)

// VoteStep is one single-field write of a vote and what came of it.
type VoteStep struct {
	Kind  models.VoteKind
	Value int
	Fact  *models.Fact
	Err   error
}

func (s VoteStep) OK() bool {
	return s.Err == nil && s.Fact != nil
}

type VoteResult struct {
	FactID string
	Kind   models.VoteKind
	Steps  []VoteStep
}

// Err joins the failures of all steps, or is nil when every step succeeded.
func (r *VoteResult) Err() error {
	errs := make([]error, 0)
	for _, s := range r.Steps {
		if s.Err != nil {
			errs = append(errs, s.Err)
		}
	}
	return errors.Join(errs...)
}

// Final returns the snapshot from the last step that succeeded.
func (r *VoteResult) Final() (models.Fact, bool) {
	for i := len(r.Steps) - 1; i >= 0; i-- {
		if r.Steps[i].OK() {
			return *r.Steps[i].Fact, true
		}
	}
	return models.Fact{}, false
}

// planVote computes the three writes for a vote of kind on fact: the chosen
// counter goes up by one and the other two go down by one, in storage order.
// Values come from the snapshot the voter saw, so counters can go below zero.
func planVote(fact models.Fact, kind models.VoteKind) []VoteStep {
	steps := make([]VoteStep, 0, len(models.VoteKinds))
	for _, k := range models.VoteKinds {
		delta := -1
		if k == kind {
			delta = 1
		}
		steps = append(steps, VoteStep{Kind: k, Value: fact.Votes(k) + delta})
	}
	return steps
}

// CastVote writes the three counters of a vote one after another. Each
// successful write replaces the fact in the list with the row the store
// returned for it. A failed write is logged and skipped; earlier writes are not
// rolled back and later ones still run.
func (f *Feed) CastVote(ctx context.Context, fact models.Fact, kind models.VoteKind) (*VoteResult, error) {
	if !kind.Valid() {
		return nil, &ValidationFailure{Field: "kind", Reason: fmt.Sprintf("unknown vote kind %q", kind)}
	}
	if len(fact.ID) == 0 {
		return nil, &ValidationFailure{Field: "id", Reason: "fact has no id"}
	}

	result := &VoteResult{
		FactID: fact.ID,
		Kind:   kind,
		Steps:  planVote(fact, kind),
	}

	for i := range result.Steps {
		result.Steps[i] = f.writeVoteStep(ctx, fact, result.Steps[i])
	}

	if final, ok := result.Final(); ok {
		f.notify(models.NewFactVotedEvent(final, kind))
	}

	return result, nil
}

func (f *Feed) writeVoteStep(ctx context.Context, fact models.Fact, step VoteStep) VoteStep {
	logger := log.Logger()

	field := step.Kind.Field()
	updated, err := f.store.UpdateFactField(ctx, fact.ID, field, step.Value)
	if err != nil {
		step.Err = &RemoteFailure{Op: OpUpdate, FactID: fact.ID, Field: field, Err: err}
		logger.Warningf(fact, "error setting %s to %d, %s", field, step.Value, err)
		return step
	}
	if updated == nil {
		step.Err = &RemoteFailure{Op: OpUpdate, FactID: fact.ID, Field: field, Err: models.ErrFactNotFound}
		logger.Warningf(fact, "no row returned setting %s", field)
		return step
	}

	step.Fact = updated
	if !f.patch(*updated) {
		logger.Debugf(fact, "voted fact is no longer in the list")
	}
	return step
}
