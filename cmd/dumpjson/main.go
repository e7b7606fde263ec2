// Command dumpjson rebuilds the decision tree from a guess-sequence file
// and serializes it to JSON (spec.md §6).
package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"go-pokedle/internal/judge"
	"go-pokedle/internal/pokelog"
	"go-pokedle/internal/strategy"
	"go-pokedle/internal/vocabulary"
)

type options struct {
	Input   string `short:"i" long:"input" description:"guess-sequence file" required:"true"`
	Output  string `short:"o" long:"output" description:"decision-tree json output path" required:"true"`
	Verbose []bool `short:"v" long:"verbose" description:"increase log verbosity (repeatable)"`
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("dumpjson: internal error")
			os.Exit(1)
		}
	}()
	if err := run(); err != nil {
		log.Error().Err(err).Msg("dump_json failed")
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

	in, err := os.Open(opts.Input)
	if err != nil {
		return errors.Wrapf(err, "open guess sequence file %q", opts.Input)
	}
	defer in.Close()

	seq, err := strategy.ReadGuessSequences(in)
	if err != nil {
		return errors.Wrap(err, "read guess sequence")
	}

	v, err := vocabulary.Default()
	if err != nil {
		return errors.Wrap(err, "load vocabulary")
	}

	n := len(seq)
	guessUntil := n
	if max := strategy.MaxGuessIndex(seq); max+1 > guessUntil {
		guessUntil = max + 1
	}
	table := judge.Build(guessUntil, n, v.Word)

	all := make([]int, n)
	for i := range all {
		all[i] = i
	}

	root, err := strategy.BuildTree(table, seq, all, 0)
	if err != nil {
		return errors.Wrap(err, "build decision tree")
	}

	out, err := os.Create(opts.Output)
	if err != nil {
		return errors.Wrapf(err, "create output file %q", opts.Output)
	}
	defer out.Close()

	if err := strategy.WriteJSON(out, root, v); err != nil {
		return errors.Wrap(err, "write tree json")
	}

	log.Info().Str("path", opts.Output).Int("answers", n).Msg("wrote-tree-json")
	return nil
}
