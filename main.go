package main

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/console"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Error().Err(err).Msg("session ended")
	}
	// The exit code is always 0, however the session ended.
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("hangman", flag.ContinueOnError)
	fs.SetOutput(stderr)
	wordsPath := fs.String("words", "", `dictionary file, or "default" for the built-in list (skips the dictionary prompt)`)
	difficulty := fs.String("difficulty", "", "easy or hard (skips the difficulty prompt)")
	seed := fs.Int64("seed", 0, "seed for word selection; 0 picks a random seed")
	logLevel := fs.String("log-level", "warn", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(*logLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", *logLevel).Msg("unknown log level, keeping warn")
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	s := *seed
	if s == 0 {
		var err error
		if s, err = newSeed(); err != nil {
			return err
		}
	}
	log.Debug().Int64("seed", s).Msg("word selection seeded")

	ctrl := console.New(stdin, stdout, console.Options{
		DictionaryPath: *wordsPath,
		Difficulty:     *difficulty,
		Rand:           rand.New(rand.NewPCG(uint64(s), uint64(s))),
		Logger:         &log.Logger,
	})
	return ctrl.Run(ctx)
}

// newSeed draws a seed from crypto/rand so a session can be replayed with -seed.
func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
