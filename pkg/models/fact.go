package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const factIDPrefix = "fact"

const MaxFactTextLength = 200

// Stored field names.
const (
	FieldID               = "id"
	FieldText             = "text"
	FieldSource           = "source"
	FieldCategory         = "category"
	FieldVotesInteresting = "votes_interesting"
	FieldVotesMindblowing = "votes_mindblowing"
	FieldVotesFalse       = "votes_false"
	FieldCreatedIn        = "created_in"
)

type Fact struct {
	ID               string `firestore:"id" json:"id"`
	Text             string `firestore:"text" json:"text"`
	Source           string `firestore:"source" json:"source"`
	Category         string `firestore:"category" json:"category"`
	VotesInteresting int    `firestore:"votes_interesting" json:"votes_interesting"`
	VotesMindblowing int    `firestore:"votes_mindblowing" json:"votes_mindblowing"`
	VotesFalse       int    `firestore:"votes_false" json:"votes_false"`
	CreatedIn        int    `firestore:"created_in" json:"created_in"`
}

// NewFact returns an unsaved fact with zeroed counters. The store assigns the ID on insert.
func NewFact(text, source, category string, at time.Time) *Fact {
	return &Fact{
		Text:      text,
		Source:    source,
		Category:  category,
		CreatedIn: at.Year(),
	}
}

func NewFactID() string {
	return fmt.Sprintf("%s-%s", factIDPrefix, uuid.NewString())
}

// SetMissingID sets the id only when the stored document did not carry one.
func (f *Fact) SetMissingID(id string) {
	if len(f.ID) == 0 {
		f.ID = id
	}
}

// Votes returns the counter for kind.
func (f Fact) Votes(kind VoteKind) int {
	switch kind {
	case VoteInteresting:
		return f.VotesInteresting
	case VoteMindblowing:
		return f.VotesMindblowing
	case VoteFalse:
		return f.VotesFalse
	}
	return 0
}

// WithVotes returns a copy of f with the counter for kind set to value.
func (f Fact) WithVotes(kind VoteKind, value int) Fact {
	switch kind {
	case VoteInteresting:
		f.VotesInteresting = value
	case VoteMindblowing:
		f.VotesMindblowing = value
	case VoteFalse:
		f.VotesFalse = value
	}
	return f
}

func (f Fact) Labels() map[string]string {
	return map[string]string{
		"fact_id":  f.ID,
		"category": f.Category,
	}
}
