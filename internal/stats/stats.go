// Package stats accumulates session-wide round results.
package stats

import (
	"errors"

	"github.com/robalobadob/hangman/internal/game"
)

// ErrNoGames is returned by WinRatio before any round has been recorded.
var ErrNoGames = errors.New("stats: no games played")

// Stats counts finished rounds for one session. Played always equals
// Won + Lost. The zero value is ready to use.
type Stats struct {
	played int
	won    int
	lost   int
}

// Record counts one finished round.
func (s *Stats) Record(result game.Result) {
	s.played++
	if result == game.ResultWon {
		s.won++
	} else {
		s.lost++
	}
}

// Played returns the number of finished rounds.
func (s *Stats) Played() int { return s.played }

// Won returns the number of rounds won.
func (s *Stats) Won() int { return s.won }

// Lost returns the number of rounds lost.
func (s *Stats) Lost() int { return s.lost }

// WinRatio returns won/played as a raw ratio in [0, 1].
func (s *Stats) WinRatio() (float64, error) {
	if s.played == 0 {
		return 0, ErrNoGames
	}
	return float64(s.won) / float64(s.played), nil
}
