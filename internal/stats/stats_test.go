package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/robalobadob/hangman/internal/game"
)

func TestWinRatioBeforeAnyGame(t *testing.T) {
	var s Stats
	if _, err := s.WinRatio(); !errors.Is(err, ErrNoGames) {
		t.Fatalf("WinRatio error = %v, want ErrNoGames", err)
	}
}

func TestRecordKeepsTotalsConsistent(t *testing.T) {
	var s Stats
	results := []game.Result{game.ResultWon, game.ResultLost, game.ResultWon, game.ResultLost, game.ResultLost}
	for i, r := range results {
		s.Record(r)
		if s.Played() != i+1 {
			t.Fatalf("Played = %d, want %d", s.Played(), i+1)
		}
		if s.Played() != s.Won()+s.Lost() {
			t.Fatalf("played %d != won %d + lost %d", s.Played(), s.Won(), s.Lost())
		}
	}
	if s.Won() != 2 || s.Lost() != 3 {
		t.Fatalf("won = %d lost = %d, want 2 and 3", s.Won(), s.Lost())
	}
}

func TestWinRatioTwoOfThree(t *testing.T) {
	var s Stats
	s.Record(game.ResultWon)
	s.Record(game.ResultLost)
	s.Record(game.ResultWon)
	got, err := s.WinRatio()
	if err != nil {
		t.Fatalf("WinRatio returned error: %v", err)
	}
	if math.Abs(got-2.0/3.0) > 1e-12 {
		t.Fatalf("WinRatio = %v, want 2/3", got)
	}
	if math.Round(got*10000)/10000 != 0.6667 {
		t.Fatalf("WinRatio rounded = %v, want 0.6667", math.Round(got*10000)/10000)
	}
}
