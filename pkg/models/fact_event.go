package models

import (
	"encoding/json"
	"time"

	"github.com/sqids/sqids-go"
)

const (
	FactEventCreated = "fact_created"
	FactEventVoted   = "fact_voted"
)

type FactEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	FactID     string    `json:"fact_id"`
	Kind       VoteKind  `json:"kind,omitempty"`
	Fact       Fact      `json:"fact"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewFactCreatedEvent(fact Fact) *FactEvent {
	return newFactEvent(FactEventCreated, fact, "")
}

func NewFactVotedEvent(fact Fact, kind VoteKind) *FactEvent {
	return newFactEvent(FactEventVoted, fact, kind)
}

func newFactEvent(eventType string, fact Fact, kind VoteKind) *FactEvent {
	now := time.Now()
	s, _ := sqids.New()
	id, _ := s.Encode([]uint64{uint64(now.UnixNano())})

	return &FactEvent{
		ID:         id,
		Type:       eventType,
		FactID:     fact.ID,
		Kind:       kind,
		Fact:       fact,
		OccurredAt: now,
	}
}

func DeserializeFactEvent(data []byte) (*FactEvent, error) {
	var event FactEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (e *FactEvent) Serialize() ([]byte, error) {
	return json.Marshal(e)
}

func (e *FactEvent) Labels() map[string]string {
	return map[string]string{
		"event_id":   e.ID,
		"event_type": e.Type,
		"fact_id":    e.FactID,
	}
}
