package game

import (
	"unicode/utf8"

	"github.com/robalobadob/hangman/internal/words"
)

// Validate turns one line of raw input into a guess verdict. The checks run
// in a fixed order (empty, length, alphabet, prior use) so that each input
// gets the most specific rejection. Validate has no side effects.
func Validate(raw string, tried TriedSet) Outcome {
	switch utf8.RuneCountInString(raw) {
	case 0:
		return Outcome{Kind: RejectedEmpty}
	case 1:
	default:
		return Outcome{Kind: RejectedMultiChar}
	}

	folded := []rune(words.Normalize(raw))
	if len(folded) != 1 || !words.IsLetter(folded[0]) {
		return Outcome{Kind: RejectedNonAlphabetic}
	}
	letter := folded[0]
	if tried != nil && tried.HasTried(letter) {
		return Outcome{Kind: RejectedAlreadyTried, Letter: letter}
	}
	return Outcome{Kind: Accepted, Letter: letter}
}
