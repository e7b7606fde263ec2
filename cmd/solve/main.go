// Command solve runs the optimal branch-and-bound search over a vocabulary
// slice and writes the resulting guess-sequence file (spec.md §6).
package main

import (
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"go-pokedle/internal/judge"
	"go-pokedle/internal/pokelog"
	"go-pokedle/internal/search"
	"go-pokedle/internal/strategy"
	"go-pokedle/internal/vocabulary"
)

type options struct {
	AnsUntil   int    `long:"ans-until" description:"answers are vocabulary indices [0, ans-until)" required:"true"`
	GuessUntil int    `long:"guess-until" description:"guesses are vocabulary indices [0, guess-until)" required:"true"`
	NumThreads int    `short:"t" long:"num-threads" description:"worker pool width" default:"1"`
	Output     string `short:"o" long:"output" description:"guess-sequence output path" required:"true"`
	Verbose    []bool `short:"v" long:"verbose" description:"increase log verbosity (repeatable)"`
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("solve: internal error")
			os.Exit(1)
		}
	}()
	if err := run(); err != nil {
		log.Error().Err(err).Msg("solve failed")
		os.Exit(1)
	}
}

func run() error {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		return errors.Wrap(err, "parse flags")
	}

	pokelog.Setup(len(opts.Verbose))

	if opts.AnsUntil <= 0 || opts.GuessUntil < opts.AnsUntil {
		return errors.Errorf("invalid bounds: ans-until=%d guess-until=%d (require 0 < ans-until <= guess-until)", opts.AnsUntil, opts.GuessUntil)
	}

	v, err := vocabulary.Default()
	if err != nil {
		return errors.Wrap(err, "load vocabulary")
	}
	if opts.GuessUntil > v.Len() {
		return errors.Errorf("guess-until=%d exceeds vocabulary size %d", opts.GuessUntil, v.Len())
	}

	answers := v.AnswerSet(opts.AnsUntil)
	guesses := v.GuessSet(opts.GuessUntil)

	log.Info().Int("answers", len(answers)).Int("guesses", len(guesses)).Int("threads", opts.NumThreads).Msg("solve-start")

	start := time.Now()
	table := judge.Build(opts.GuessUntil, opts.AnsUntil, v.Word)
	solver := search.NewSolver(table, guesses, opts.NumThreads)

	best := solver.Solve(answers, search.INFTY)

	best1, memo1, lb1 := solver.Cache.Sizes()
	log.Info().
		Int("best", best).
		Float64("avg_guesses", float64(best)/float64(len(answers))).
		Int("best_table_size", best1).
		Int("memo_table_size", memo1).
		Int("lb_table_size", lb1).
		Dur("elapsed", time.Since(start)).
		Msg("solve-done")

	seq := strategy.BuildGuessSequences(solver.Cache, opts.AnsUntil, answers)

	f, err := os.Create(opts.Output)
	if err != nil {
		return errors.Wrapf(err, "create output file %q", opts.Output)
	}
	defer f.Close()

	if err := strategy.WriteGuessSequences(f, seq); err != nil {
		return errors.Wrap(err, "write guess sequence")
	}

	log.Info().Str("path", opts.Output).Msg("wrote-guess-sequence")
	return nil
}
