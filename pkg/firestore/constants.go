package firestore

const (
	pathFacts = "facts"

	defaultLimit = 1000
)
