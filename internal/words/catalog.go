package words

import (
	"errors"
	"math/rand/v2"
	"strings"
	"unicode/utf8"
)

// ErrEmptyCatalog is returned when a catalog has no words to offer.
// Selecting from an empty catalog is a configuration error, never a silent pick.
var ErrEmptyCatalog = errors.New("words: catalog is empty")

// Difficulty selects which word lengths a catalog keeps.
type Difficulty int

const (
	Easy Difficulty = iota // words of 5 letters or more
	Hard                   // words of 4 letters or fewer
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty accepts "E"/"easy" and "H"/"hard", case-insensitively.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(s) {
	case "e", "easy":
		return Easy, true
	case "h", "hard":
		return Hard, true
	}
	return 0, false
}

// keeps reports whether a word of n letters belongs to the difficulty level.
func (d Difficulty) keeps(n int) bool {
	switch d {
	case Easy:
		return n >= 5
	case Hard:
		return n <= 4
	}
	return false
}

// FilterByDifficulty returns the distinct words of list that match level, in
// their original order. Only length matters; duplicates are detected on the
// folded form and the first spelling wins.
func FilterByDifficulty(list []string, level Difficulty) ([]string, error) {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, w := range list {
		if !level.keeps(utf8.RuneCountInString(w)) {
			continue
		}
		key := Normalize(w)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, w)
	}
	if len(out) == 0 {
		return nil, ErrEmptyCatalog
	}
	return out, nil
}

// PickRandom returns a uniformly chosen word of list, drawing an index in
// [0, len(list)) from rng.
func PickRandom(rng *rand.Rand, list []string) (string, error) {
	if len(list) == 0 {
		return "", ErrEmptyCatalog
	}
	return list[rng.IntN(len(list))], nil
}

// Catalog is a difficulty-filtered word list bound to a random source.
type Catalog struct {
	level Difficulty
	words []string
	rng   *rand.Rand
}

// NewCatalog filters list by level. It fails with ErrEmptyCatalog when
// nothing survives the filter. A nil rng is replaced by a randomly seeded one.
func NewCatalog(list []string, level Difficulty, rng *rand.Rand) (*Catalog, error) {
	filtered, err := FilterByDifficulty(list, level)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Catalog{level: level, words: filtered, rng: rng}, nil
}

// Pick returns a random word from the catalog.
func (c *Catalog) Pick() (string, error) {
	return PickRandom(c.rng, c.words)
}

// Len returns the number of words in the catalog.
func (c *Catalog) Len() int { return len(c.words) }

// Level returns the difficulty the catalog was built for.
func (c *Catalog) Level() Difficulty { return c.level }

// Words returns a copy of the catalog's words.
func (c *Catalog) Words() []string {
	return append([]string(nil), c.words...)
}
