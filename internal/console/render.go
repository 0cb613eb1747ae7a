// internal/console/render.go
//
// Text renderer for the console game.
// Responsibilities:
//   - Turn a Frame (a snapshot of round + session state) into one screen of text.
//   - Pick the gallows drawing from a table indexed by mistake count.
//   - Map validation rejections to player-facing messages.
//
// The footer shows either the guesses left (round in progress) or the session
// stats (round over), never both.

package console

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/stats"
)

// gallows[i] is the drawing after i wrong guesses.
var gallows = [game.MaxMistakes + 1]string{
	`
      +-------+
      |       |
      |
      |
      |
      |
      |
   ===========`,
	`
      +-------+
      |       |
      |      (_)
      |
      |
      |
      |
   ===========`,
	`
      +-------+
      |       |
      |      (_)
      |       |
      |       |
      |
      |
   ===========`,
	`
      +-------+
      |       |
      |      (_)
      |      /|
      |       |
      |
      |
   ===========`,
	`
      +-------+
      |       |
      |      (_)
      |      /|\
      |       |
      |
      |
   ===========`,
	`
      +-------+
      |       |
      |      (_)
      |      /|\
      |       |
      |      /
      |
   ===========`,
	`
      +-------+
      |       |
      |      (x)     Goodbye
      |      /|\     cruel world!
      |       |
      |      / \
      |
   ===========`,
}

const survivor = `
      +-------+
      |
      |
      |      \(^)/   Woohoo!!!
      |        |     I'm still
      |        |     alive
      |       / \
   ===========`

const rule = "----------------------------------------------------------"

// Frame is everything the renderer needs for one screen.
type Frame struct {
	Mistakes  int
	Won       bool
	Over      bool
	Available []rune
	Tried     []rune
	Pattern   string
	Answer    string // secret word, set only when the round was lost
	Message   string // last error, empty when none
	Stats     stats.Stats
}

// Renderer builds screens. Numbers are formatted for its language tag.
type Renderer struct {
	p *message.Printer
}

// NewRenderer returns a renderer that formats numbers for tag.
func NewRenderer(tag language.Tag) *Renderer {
	return &Renderer{p: message.NewPrinter(tag)}
}

// Render returns the full text of one screen.
func (rd *Renderer) Render(f Frame) string {
	var b strings.Builder

	if f.Won {
		b.WriteString(survivor)
	} else {
		b.WriteString(gallows[clampMistakes(f.Mistakes)])
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "\tCharacters Available: %s\n", spaced(f.Available))
	fmt.Fprintf(&b, "\tCharacters Used:      %s\n", spaced(f.Tried))
	fmt.Fprintf(&b, "\n\t\t%s\n\n", f.Pattern)

	if f.Over {
		if f.Answer != "" {
			fmt.Fprintf(&b, "\tThe secret word is: %s\n", f.Answer)
		}
		if f.Won {
			b.WriteString("\tCongratulations!!! You've guessed the word correctly.\n")
		} else {
			b.WriteString("\tSorry, you lose.\n")
		}
	}

	b.WriteString("\t" + rule + "\n")
	b.WriteString("\t " + f.Message + "\n")
	if f.Over {
		b.WriteString("\t" + rd.statsLine(f.Stats) + "\n")
	} else {
		b.WriteString("\t" + guessesLeft(f.Mistakes) + "\n")
	}
	return b.String()
}

func (rd *Renderer) statsLine(s stats.Stats) string {
	pct := "n/a"
	if ratio, err := s.WinRatio(); err == nil {
		pct = rd.p.Sprint(number.Percent(ratio, number.Scale(2)))
	}
	return rd.p.Sprintf("Total games played: %d\tGames won: %d\tGames lost: %d\tWinning percentage: %s",
		s.Played(), s.Won(), s.Lost(), pct)
}

func guessesLeft(mistakes int) string {
	left := game.MaxMistakes - mistakes
	if left == 1 {
		return "You have only one guess left. Make it a good one!"
	}
	return fmt.Sprintf("You have %d guesses left.", left)
}

func clampMistakes(n int) int {
	if n < 0 {
		return 0
	}
	if n > game.MaxMistakes {
		return game.MaxMistakes
	}
	return n
}

func spaced(rs []rune) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// rejectionMessage returns the text shown for a rejected guess.
func rejectionMessage(o game.Outcome) string {
	switch o.Kind {
	case game.RejectedEmpty:
		return "Error: You entered an empty string. Please enter a valid character."
	case game.RejectedMultiChar:
		return "Error: You entered multiple characters. Single-character guesses only."
	case game.RejectedNonAlphabetic:
		return "Error: You entered an invalid character. Only enter valid alphabet characters, as listed above."
	case game.RejectedAlreadyTried:
		return fmt.Sprintf("You've used '%c' before!", o.Letter)
	}
	return ""
}
