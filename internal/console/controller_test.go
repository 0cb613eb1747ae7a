package console

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeDictionary writes lines to a temp file and returns its path.
func writeDictionary(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write dictionary: %v", err)
	}
	return path
}

// play runs a full session over script and returns the controller and output.
func play(t *testing.T, opts Options, script ...string) (*Controller, string) {
	t.Helper()
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(1, 2))
	}
	in := strings.NewReader(strings.Join(script, "\n") + "\n")
	var out bytes.Buffer
	c := New(in, &out, opts)
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return c, out.String()
}

func TestSessionWin(t *testing.T) {
	dict := writeDictionary(t, "cat")
	c, out := play(t, Options{}, dict, "h", "c", "a", "t", "n")

	st := c.Stats()
	if st.Played() != 1 || st.Won() != 1 || st.Lost() != 0 {
		t.Fatalf("stats = %d/%d/%d, want 1 played 1 won", st.Played(), st.Won(), st.Lost())
	}
	for _, want := range []string{
		"Congratulations!!! You've guessed the word correctly.",
		"Winning percentage: 100",
		"Goodbye.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "The secret word is") {
		t.Fatalf("secret word revealed on a win:\n%s", out)
	}
}

func TestSessionLossRevealsWord(t *testing.T) {
	dict := writeDictionary(t, "dog")
	c, out := play(t, Options{}, dict, "H", "x", "y", "z", "q", "w", "v", "no")

	if st := c.Stats(); st.Played() != 1 || st.Lost() != 1 {
		t.Fatalf("stats = %d played %d lost, want 1 and 1", st.Played(), st.Lost())
	}
	for _, want := range []string{"The secret word is: dog", "Sorry, you lose.", "You have only one guess left."} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRejectedGuessesCostNothing(t *testing.T) {
	dict := writeDictionary(t, "cat")
	_, out := play(t, Options{}, dict, "hard",
		"", "ab", "3", "x", "x", "X", "c", "a", "t", "n")

	for _, want := range []string{
		"Error: You entered an empty string.",
		"Error: You entered multiple characters.",
		"Error: You entered an invalid character.",
		"You've used 'x' before!",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	// Only the single real miss ("x") should have been charged.
	if !strings.Contains(out, "You have 5 guesses left.") {
		t.Fatalf("expected 5 guesses left after one miss:\n%s", out)
	}
	if strings.Contains(out, "You have 4 guesses left.") {
		t.Fatalf("a rejected guess consumed a mistake:\n%s", out)
	}
}

func TestPlayAgainKeepsStats(t *testing.T) {
	dict := writeDictionary(t, "cat")
	c, out := play(t, Options{}, dict, "h",
		"c", "a", "t", "maybe", "y",
		"q", "w", "e", "r", "u", "i", "N")

	st := c.Stats()
	if st.Played() != 2 || st.Won() != 1 || st.Lost() != 1 {
		t.Fatalf("stats = %d/%d/%d, want 2 played 1 won 1 lost", st.Played(), st.Won(), st.Lost())
	}
	if !strings.Contains(out, "Error: Invalid Input!") {
		t.Fatalf("output missing invalid continue message:\n%s", out)
	}
	if !strings.Contains(out, "Total games played: 2") {
		t.Fatalf("output missing cumulative stats:\n%s", out)
	}
}

func TestDifficultyReprompts(t *testing.T) {
	dict := writeDictionary(t, "cat")
	c, out := play(t, Options{}, dict, "medium", "h", "c", "a", "t", "n")
	if !strings.Contains(out, difficultyError) {
		t.Fatalf("output missing difficulty error:\n%s", out)
	}
	if c.Stats().Played() != 1 {
		t.Fatalf("played = %d, want 1", c.Stats().Played())
	}
}

func TestMissingDictionaryFallsBackToPrompt(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")
	dict := writeDictionary(t, "cat")
	c, out := play(t, Options{}, missing, dict, "h", "c", "a", "t", "n")
	if !strings.Contains(out, "Error: could not read dictionary") {
		t.Fatalf("output missing load error:\n%s", out)
	}
	if c.Stats().Played() != 1 {
		t.Fatalf("played = %d, want 1", c.Stats().Played())
	}
}

func TestEmptyCatalogRestartsSetup(t *testing.T) {
	short := writeDictionary(t, "cat", "dog")
	long := writeDictionary(t, "zebra")
	c, out := play(t, Options{}, short, "easy", long, "e", "z", "e", "b", "r", "a", "n")
	if !strings.Contains(out, "no words for the easy difficulty level") {
		t.Fatalf("output missing empty catalog error:\n%s", out)
	}
	if c.Stats().Won() != 1 {
		t.Fatalf("won = %d, want 1", c.Stats().Won())
	}
}

func TestExitAtSetup(t *testing.T) {
	for _, answer := range []string{"E", "exit", "EXIT"} {
		c, out := play(t, Options{}, answer)
		if c.Stats().Played() != 0 {
			t.Fatalf("%s: played = %d, want 0", answer, c.Stats().Played())
		}
		if !strings.Contains(out, "Goodbye.") {
			t.Fatalf("%s: output missing goodbye:\n%s", answer, out)
		}
	}
}

func TestEndOfInputMidRoundQuits(t *testing.T) {
	dict := writeDictionary(t, "cat")
	c, out := play(t, Options{}, dict, "h", "c")
	if c.Stats().Played() != 0 {
		t.Fatalf("played = %d, want 0", c.Stats().Played())
	}
	if !strings.Contains(out, "Goodbye.") {
		t.Fatalf("output missing goodbye:\n%s", out)
	}
}

func TestPresetsSkipPrompts(t *testing.T) {
	dict := writeDictionary(t, "cat")
	_, out := play(t, Options{DictionaryPath: dict, Difficulty: "hard"}, "c", "a", "t", "n")
	if strings.Contains(out, dictionaryPrompt) || strings.Contains(out, difficultyPrompt) {
		t.Fatalf("presets should skip setup prompts:\n%s", out)
	}
}

func TestInvalidPresetsFallBackToPrompts(t *testing.T) {
	dict := writeDictionary(t, "cat")
	missing := filepath.Join(t.TempDir(), "missing.txt")
	c, out := play(t, Options{DictionaryPath: missing, Difficulty: "medium"}, dict, "h", "c", "a", "t", "n")
	if !strings.Contains(out, dictionaryPrompt) || !strings.Contains(out, difficultyPrompt) {
		t.Fatalf("invalid presets should fall back to prompts:\n%s", out)
	}
	if c.Stats().Won() != 1 {
		t.Fatalf("won = %d, want 1", c.Stats().Won())
	}
}

func TestDefaultDictionary(t *testing.T) {
	c, _ := play(t, Options{}, append([]string{"default", "h"}, strings.Split("abcdefghijklmnopqrstuvwxyz", "")...)...)
	if c.Stats().Played() != 1 {
		t.Fatalf("played = %d, want 1", c.Stats().Played())
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	c := New(strings.NewReader("default\n"), &out, Options{})
	if err := c.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
}

func TestOverlongGuessIsRejectedNotFatal(t *testing.T) {
	dict := writeDictionary(t, "cat")
	c, out := play(t, Options{DictionaryPath: dict, Difficulty: "h"},
		strings.Repeat("a", 70000), "c", "a", "t", "n")
	if !strings.Contains(out, "Error: You entered multiple characters.") {
		t.Fatalf("output missing multi-character error:\n%s", out)
	}
	if c.Stats().Won() != 1 {
		t.Fatalf("won = %d, want 1", c.Stats().Won())
	}
}

func TestCRLFInputIsAccepted(t *testing.T) {
	dict := writeDictionary(t, "cat")
	in := strings.NewReader(dict + "\r\nh\r\nc\r\na\r\nt\r\nn\r\n")
	var out bytes.Buffer
	c := New(in, &out, Options{Rand: rand.New(rand.NewPCG(1, 2))})
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if strings.Contains(out.String(), "Error:") {
		t.Fatalf("CRLF input produced an error:\n%s", out.String())
	}
	if c.Stats().Won() != 1 {
		t.Fatalf("won = %d, want 1", c.Stats().Won())
	}
}

func TestStatsReturnsCopy(t *testing.T) {
	dict := writeDictionary(t, "cat")
	c, _ := play(t, Options{DictionaryPath: dict, Difficulty: "h"}, "c", "a", "t", "n")
	st := c.Stats()
	st.Record("won")
	if c.Stats().Played() != 1 {
		t.Fatalf("played = %d after mutating the copy, want 1", c.Stats().Played())
	}
}
