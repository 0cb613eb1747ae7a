// internal/game/engine.go
//
// Core game engine for a single hangman round.
// Responsibilities:
//   - Start a round with every position hidden and no tried letters.
//   - Apply a validated letter: reveal matches or count a mistake.
//   - Report state: playing → won/lost, plus derived views for rendering.
//
// Notes:
//   - Win and loss are mutually exclusive by construction: mistakes only grow
//     on a letter that reveals nothing, so a revealing guess never adds one.
//   - Apply trusts Validate for input shape; it still refuses a repeated letter
//     and a finished round so the invariants hold for any caller.
package game

import (
	"errors"
	"strings"
	"unicode"

	"github.com/robalobadob/hangman/internal/words"
)

var (
	// ErrRoundOver is returned when a letter is applied to a finished round.
	ErrRoundOver = errors.New("game: round is over")
	// ErrAlreadyTried is returned when a letter is applied twice.
	ErrAlreadyTried = errors.New("game: letter already tried")
)

// New starts a round for answer.
func New(answer string) *Round {
	letters := []rune(words.Normalize(answer))
	return &Round{
		answer:   answer,
		letters:  letters,
		revealed: make([]bool, len(letters)),
		tried:    Letters{},
	}
}

// Apply records letter as tried and reveals every position where the answer
// has it. A letter that reveals nothing costs one mistake. It returns how many
// positions were revealed.
//
// Precondition: letter came out of Validate as Accepted for this round.
func (r *Round) Apply(letter rune) (int, error) {
	if r.IsOver() {
		return 0, ErrRoundOver
	}
	letter = unicode.ToLower(letter)
	if r.tried.HasTried(letter) {
		return 0, ErrAlreadyTried
	}
	r.tried[letter] = struct{}{}

	hits := 0
	for i, c := range r.letters {
		if c == letter {
			r.revealed[i] = true
			hits++
		}
	}
	if hits == 0 {
		r.mistakes++
	}
	return hits, nil
}

// IsWon reports whether every position of the answer is revealed.
func (r *Round) IsWon() bool {
	for _, ok := range r.revealed {
		if !ok {
			return false
		}
	}
	return true
}

// IsLost reports whether the mistake budget is spent without a win.
func (r *Round) IsLost() bool {
	return r.mistakes >= MaxMistakes && !r.IsWon()
}

// IsOver reports whether the round has finished either way.
func (r *Round) IsOver() bool { return r.IsWon() || r.IsLost() }

// Result returns the outcome once the round is over.
func (r *Round) Result() (Result, bool) {
	switch {
	case r.IsWon():
		return ResultWon, true
	case r.IsLost():
		return ResultLost, true
	}
	return "", false
}

// State reports a coarse string representation of the round.
func (r *Round) State() string {
	if res, over := r.Result(); over {
		return string(res)
	}
	return "playing"
}

// RevealedAnswer returns the secret word only when the round was lost.
func (r *Round) RevealedAnswer() (string, bool) {
	if r.IsLost() {
		return r.answer, true
	}
	return "", false
}

// HasTried reports whether letter was already applied this round. A nil
// round has tried nothing.
func (r *Round) HasTried(letter rune) bool {
	if r == nil {
		return false
	}
	return r.tried.HasTried(letter)
}

// Tried returns the tried letters in alphabetical order.
func (r *Round) Tried() []rune { return r.tried.Sorted() }

// Available returns the alphabet minus the tried letters.
func (r *Round) Available() []rune {
	out := make([]rune, 0, len(Alphabet))
	for _, c := range Alphabet {
		if !r.tried.HasTried(c) {
			out = append(out, c)
		}
	}
	return out
}

// Mistakes returns the number of distinct wrong letters so far.
func (r *Round) Mistakes() int { return r.mistakes }

// Remaining returns how many more wrong letters the round tolerates.
func (r *Round) Remaining() int { return MaxMistakes - r.mistakes }

// Len returns the number of letters in the answer.
func (r *Round) Len() int { return len(r.letters) }

// Mask returns a copy of the reveal mask.
func (r *Round) Mask() []bool {
	return append([]bool(nil), r.revealed...)
}

// Pattern renders the answer with unrevealed positions replaced by hidden,
// letters separated by single spaces, e.g. "c _ t".
func (r *Round) Pattern(hidden rune) string {
	var b strings.Builder
	for i, c := range r.letters {
		if i > 0 {
			b.WriteByte(' ')
		}
		if r.revealed[i] {
			b.WriteRune(c)
		} else {
			b.WriteRune(hidden)
		}
	}
	return b.String()
}
