package memory

import "facts/pkg/models"

// SampleFacts is the starter content used when running without a remote store.
func SampleFacts() []models.Fact {
	return []models.Fact{
		{
			Text:             "React is being developed by Meta (formerly facebook)",
			Source:           "https://opensource.fb.com/",
			Category:         "technology",
			VotesInteresting: 24,
			VotesMindblowing: 9,
			VotesFalse:       4,
			CreatedIn:        2021,
		},
		{
			Text:             "Millennial dads spend 3 times as much time with their kids than their fathers spent with them. In 1982, 43% of fathers had never changed a diaper. Today, that number is down to 3%",
			Source:           "https://www.mother.ly/parenting/millennial-dads-spend-more-time-with-their-kids",
			Category:         "society",
			VotesInteresting: 11,
			VotesMindblowing: 2,
			VotesFalse:       0,
			CreatedIn:        2019,
		},
		{
			Text:             "Lisbon is the capital of Portugal",
			Source:           "https://en.wikipedia.org/wiki/Lisbon",
			Category:         "society",
			VotesInteresting: 8,
			VotesMindblowing: 3,
			VotesFalse:       1,
			CreatedIn:        2015,
		},
	}
}
