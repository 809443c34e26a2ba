package session

import "math/rand/v2"

var correctFeedback = []string{
	"Fantastic job!",
	"You're amazing!",
	"Brilliant!",
	"Perfect!",
	"Magical!",
	"Wonderful!",
	"Super!",
	"Champion!",
}

var incorrectFeedback = []string{
	"Almost there!",
	"Keep trying!",
	"You're learning!",
	"Getting closer!",
	"Nice try!",
	"Good effort!",
}

// pickFeedback returns an encouraging message for the outcome.
func pickFeedback(rng *rand.Rand, correct bool) string {
	messages := incorrectFeedback
	if correct {
		messages = correctFeedback
	}
	return messages[rng.IntN(len(messages))]
}
