// internal/console/controller.go
//
// Game controller: drives a whole console session.
//
// Flow:
//  1. Setup: ask for a dictionary ("default", a file path, or "E"/"exit") and a
//     difficulty, then build the word catalog. Unreadable dictionaries and
//     empty catalogs are reported and the setup prompt repeats.
//  2. Each round: pick a word, loop on guesses until the round is over.
//     Rejected input is shown and re-prompted without costing a mistake.
//  3. Record the result, show the final board, ask whether to play again.
//
// Session stats live on the Controller and survive "play again".

package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/stats"
	"github.com/robalobadob/hangman/internal/words"
)

// ErrQuit signals that the player ended the session, by answering exit at
// the dictionary prompt or by closing input.
var ErrQuit = errors.New("console: player quit")

const (
	dictionaryPrompt = `Enter the dictionary file name (or "default" to use the default dictionary. Enter "E" to exit): `
	difficultyPrompt = `Pick difficulty level ('H' for hard, or 'E' for easy): `
	guessPrompt      = `Enter your guess: `
	continuePrompt   = `Would you like to play again? (Y/N) : `

	difficultyError = "Error: you entered an incorrect option for the difficulty level. Please enter 'H' for hard or 'E' for easy."
	continueError   = "Error: Invalid Input!"
)

// Options configures a Controller. Zero values mean "ask the player" for the
// presets and a randomly seeded source for Rand.
type Options struct {
	DictionaryPath string // answer to the dictionary prompt, skipped when set
	Difficulty     string // answer to the difficulty prompt, skipped when valid
	Rand           *rand.Rand
	Logger         *zerolog.Logger
}

// Controller runs one console session.
type Controller struct {
	term  *Terminal
	view  *Renderer
	rng   *rand.Rand
	log   zerolog.Logger
	opts  Options
	stats stats.Stats
}

// New wires a controller reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options) *Controller {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Controller{
		term: NewTerminal(in, out),
		view: NewRenderer(language.English),
		rng:  rng,
		log:  logger.With().Str("component", "console").Logger(),
		opts: opts,
	}
}

// Stats returns a copy of the session stats.
func (c *Controller) Stats() *stats.Stats {
	s := c.stats
	return &s
}

// Run plays until the player stops. Quitting, at setup or at the end of a
// round, is a normal return; only output failures and ctx cancellation are
// reported as errors.
func (c *Controller) Run(ctx context.Context) error {
	err := c.run(ctx)
	if sayErr := c.term.Say(" Goodbye."); err == nil {
		err = sayErr
	}
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

func (c *Controller) run(ctx context.Context) error {
	cat, err := c.setup(ctx)
	if err != nil {
		return err
	}
	for {
		final, err := c.playRound(ctx, cat)
		if err != nil {
			return err
		}
		again, err := c.keepPlaying(ctx, final)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// ------------------------------ SETUP --------------------------------------

func (c *Controller) setup(ctx context.Context) (*words.Catalog, error) {
	path, level := c.opts.DictionaryPath, c.opts.Difficulty
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		list, source, err := c.dictionary(path)
		path = ""
		if errors.Is(err, ErrQuit) {
			return nil, err
		}
		if errors.Is(err, words.ErrWordSourceUnavailable) {
			c.log.Warn().Err(err).Str("source", source).Msg("load dictionary")
			if err := c.term.Say(fmt.Sprintf("Error: could not read dictionary %q.", source)); err != nil {
				return nil, err
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		c.log.Info().Str("source", source).Int("words", len(list)).Msg("dictionary loaded")

		d, err := c.difficulty(ctx, level)
		level = ""
		if err != nil {
			return nil, err
		}

		cat, err := words.NewCatalog(list, d, c.rng)
		if errors.Is(err, words.ErrEmptyCatalog) {
			c.log.Warn().Str("source", source).Str("difficulty", d.String()).Msg("no words for difficulty")
			if err := c.term.Say(fmt.Sprintf("Error: the dictionary has no words for the %s difficulty level.", d)); err != nil {
				return nil, err
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		c.log.Info().Str("difficulty", d.String()).Int("words", cat.Len()).Msg("catalog ready")
		return cat, nil
	}
}

// dictionary resolves one answer to the dictionary prompt.
func (c *Controller) dictionary(preset string) ([]string, string, error) {
	answer := preset
	if answer == "" {
		var err error
		if answer, err = c.term.Prompt(dictionaryPrompt); err != nil {
			return nil, "", err
		}
	}
	switch {
	case strings.EqualFold(answer, "default"):
		list, err := words.LoadDefault()
		return list, "default", err
	case strings.EqualFold(answer, "e"), strings.EqualFold(answer, "exit"):
		return nil, "", ErrQuit
	}
	list, err := words.Load(answer)
	return list, answer, err
}

func (c *Controller) difficulty(ctx context.Context, preset string) (words.Difficulty, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		answer := preset
		preset = ""
		if answer == "" {
			var err error
			if answer, err = c.term.Prompt(difficultyPrompt); err != nil {
				return 0, err
			}
		}
		if d, ok := words.ParseDifficulty(answer); ok {
			return d, nil
		}
		if err := c.term.Say(difficultyError); err != nil {
			return 0, err
		}
	}
}

// ------------------------------ ROUND --------------------------------------

// playRound plays one round to completion and returns its final frame.
func (c *Controller) playRound(ctx context.Context, cat *words.Catalog) (Frame, error) {
	answer, err := cat.Pick()
	if err != nil {
		return Frame{}, err
	}
	r := game.New(answer)
	c.log.Info().Int("letters", r.Len()).Msg("round started")
	c.log.Debug().Str("answer", answer).Msg("secret word")

	msg := ""
	for !r.IsOver() {
		if err := ctx.Err(); err != nil {
			return Frame{}, err
		}
		if err := c.term.Show(c.view.Render(c.frame(r, msg))); err != nil {
			return Frame{}, err
		}
		line, err := c.term.Prompt(guessPrompt)
		if err != nil {
			return Frame{}, err
		}
		out := game.Validate(line, r)
		if !out.IsAccepted() {
			c.log.Debug().Str("kind", string(out.Kind)).Msg("guess rejected")
			msg = rejectionMessage(out)
			continue
		}
		msg = ""
		if _, err := r.Apply(out.Letter); err != nil {
			return Frame{}, err
		}
	}

	res, _ := r.Result()
	c.stats.Record(res)
	c.log.Info().
		Str("result", string(res)).
		Int("mistakes", r.Mistakes()).
		Int("played", c.stats.Played()).
		Int("won", c.stats.Won()).
		Msg("round finished")

	final := c.frame(r, "")
	if err := c.term.Show(c.view.Render(final)); err != nil {
		return Frame{}, err
	}
	return final, nil
}

// keepPlaying asks whether to start another round. Invalid answers redraw the
// final board with an error and ask again.
func (c *Controller) keepPlaying(ctx context.Context, final Frame) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		answer, err := c.term.Prompt(continuePrompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		final.Message = continueError
		if err := c.term.Show(c.view.Render(final)); err != nil {
			return false, err
		}
	}
}

// frame snapshots r and the session stats for the renderer.
func (c *Controller) frame(r *game.Round, msg string) Frame {
	f := Frame{
		Mistakes:  r.Mistakes(),
		Won:       r.IsWon(),
		Over:      r.IsOver(),
		Available: r.Available(),
		Tried:     r.Tried(),
		Pattern:   r.Pattern('_'),
		Message:   msg,
		Stats:     c.stats,
	}
	if answer, ok := r.RevealedAnswer(); ok {
		f.Answer = answer
	}
	return f
}
