package models

import "fmt"

type VoteKind string

const (
	VoteInteresting VoteKind = "interesting"
	VoteMindblowing VoteKind = "mindblowing"
	VoteFalse       VoteKind = "false"
)

// VoteKinds is the fixed order in which vote counters are written.
var VoteKinds = []VoteKind{VoteInteresting, VoteMindblowing, VoteFalse}

func ParseVoteKind(s string) (VoteKind, error) {
	for _, k := range VoteKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown vote kind, %s", s)
}

func (k VoteKind) Valid() bool {
	_, err := ParseVoteKind(string(k))
	return err == nil
}

// Field is the stored counter field for the kind.
func (k VoteKind) Field() string {
	return "votes_" + string(k)
}
