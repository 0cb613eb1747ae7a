// internal/words/words.go
//
// Word source for the game.
//
// Responsibilities:
//   - Load candidate words from a dictionary file or the embedded default list.
//   - Normalize lines: trim, skip blanks and "#" comments, drop words that
//     contain anything other than the letters a–z.
//   - Provide the shared case folding used for comparisons (Normalize).
//
// Load failures wrap ErrWordSourceUnavailable so callers can tell an
// unreadable dictionary apart from one that is merely empty after filtering.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/robalobadob/hangman/assets"
)

// ErrWordSourceUnavailable reports that a dictionary could not be read.
var ErrWordSourceUnavailable = errors.New("words: word source unavailable")

// Load reads one word per line from the dictionary file at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWordSourceUnavailable, err)
	}
	defer f.Close()
	return Read(f)
}

// LoadDefault reads the embedded default dictionary.
func LoadDefault() ([]string, error) {
	f, err := assets.OpenDefault()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWordSourceUnavailable, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a dictionary from r. Words keep their original case; they are
// folded only when compared.
func Read(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if !isWord(w) {
			continue
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWordSourceUnavailable, err)
	}
	return out, nil
}

// Normalize folds s to the single case used for every comparison.
func Normalize(s string) string {
	return cases.Lower(language.Und).String(s)
}

// IsLetter reports whether r is a lowercase ASCII letter a–z.
func IsLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// isWord reports whether w folds to letters a–z only.
func isWord(w string) bool {
	for _, r := range Normalize(w) {
		if !IsLetter(r) {
			return false
		}
	}
	return true
}
