// internal/game/types.go
//
// Core type definitions for the hangman round engine.
// Defines:
//   - Result: how a finished round ended (won/lost).
//   - Letters: a set of tried letters.
//   - Round: state for a single in-progress or finished round.
//   - OutcomeKind/Outcome: the verdict on one line of player input.

package game

import "sort"

// MaxMistakes is the number of distinct wrong letters that ends a round.
const MaxMistakes = 6

// Alphabet is the set of letters a player may guess, in display order.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// Result is the outcome of a finished round.
type Result string

const (
	ResultWon  Result = "won"
	ResultLost Result = "lost"
)

// Letters is a set of normalized (lowercase) letters.
type Letters map[rune]struct{}

// NewLetters builds a set from rs.
func NewLetters(rs ...rune) Letters {
	l := make(Letters, len(rs))
	for _, r := range rs {
		l[r] = struct{}{}
	}
	return l
}

// HasTried reports whether r is in the set.
func (l Letters) HasTried(r rune) bool {
	_, ok := l[r]
	return ok
}

// Sorted returns the letters in ascending order.
func (l Letters) Sorted() []rune {
	out := make([]rune, 0, len(l))
	for r := range l {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// TriedSet is anything that can answer whether a letter was already guessed.
// Both Letters and *Round satisfy it.
type TriedSet interface {
	HasTried(letter rune) bool
}

// Round holds the state of one hangman round. It is mutated only by Apply.
type Round struct {
	answer   string  // secret word as supplied (original case, for display)
	letters  []rune  // folded letters of answer, aligned with revealed
	revealed []bool  // revealed[i] is true once letters[i] has been guessed
	tried    Letters // every letter applied this round
	mistakes int     // distinct wrong letters so far, never above MaxMistakes
}

// OutcomeKind tags the result of validating one line of input.
type OutcomeKind string

const (
	Accepted              OutcomeKind = "accepted"
	RejectedEmpty         OutcomeKind = "empty"
	RejectedMultiChar     OutcomeKind = "multiple_chars"
	RejectedNonAlphabetic OutcomeKind = "not_alphabetic"
	RejectedAlreadyTried  OutcomeKind = "already_tried"
)

// Outcome is the verdict of Validate. Letter is set for Accepted and
// RejectedAlreadyTried and holds the normalized letter.
type Outcome struct {
	Kind   OutcomeKind
	Letter rune
}

// IsAccepted reports whether the input may be applied to the round.
func (o Outcome) IsAccepted() bool { return o.Kind == Accepted }
