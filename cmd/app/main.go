// Command app is the interactive "play the tree" front-end (spec.md §6):
// it reads a guess-sequence file, rebuilds the decision tree, and for each
// round prints the guess the tree wants played and reads back a five-digit
// judge string. On "22222" (all positions Exact) the game ends.
//
// Raw keypress reading and colorized echo are grounded on
// other_examples/f8d48a9b_coreyog-wordle__main.go.go, the pack's
// interactive Wordle terminal front-end.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-tty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"go-pokedle/internal/judge"
	"go-pokedle/internal/pokelog"
	"go-pokedle/internal/strategy"
	"go-pokedle/internal/vocabulary"
)

type options struct {
	Input   string `short:"i" long:"input" description:"guess-sequence file" required:"true"`
	Verbose []bool `short:"v" long:"verbose" description:"increase log verbosity (repeatable)"`
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("app: internal error")
			os.Exit(1)
		}
	}()
	if err := run(); err != nil {
		log.Error().Err(err).Msg("app failed")
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
	seq, err := strategy.ReadGuessSequences(in)
	in.Close()
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

	t, err := tty.Open()
	if err != nil {
		return errors.Wrap(err, "open tty")
	}
	defer t.Close()

	return play(t, root, v)
}

func play(t *tty.TTY, root *strategy.Node, v *vocabulary.Vocabulary) error {
	node := root
	round := 1
	for {
		fmt.Printf("(%d remaining) %s\n", len(node.RemAns), v.Word(node.Guess))

		s, err := readJudgeString(t)
		if err != nil {
			return errors.Wrap(err, "read judge string")
		}

		j, ok := judge.Parse(s)
		if !ok {
			color.Red("invalid judge %q: need 5 digits in {0,1,2}\n", s)
			continue
		}
		if _, ok := node.Edges[j]; !ok {
			color.Red("judge %q is not possible for this guess\n", s)
			continue
		}
		echoJudge(s)

		node = node.Next(j)
		if node.Terminal {
			color.Green("Congratulations!!! Solved in %d rounds.\n", round)
			return nil
		}
		round++
	}
}

// readJudgeString reads exactly five digit runes from the raw tty,
// grounded on coreyog-wordle's tty.ReadRune() keypress loop.
func readJudgeString(t *tty.TTY) (string, error) {
	buf := make([]byte, 0, judge.StringLength)
	for len(buf) < judge.StringLength {
		r, err := t.ReadRune()
		if err != nil {
			return "", err
		}
		if r < '0' || r > '9' {
			continue
		}
		buf = append(buf, byte(r))
	}
	return string(buf), nil
}

func echoJudge(s string) {
	for _, d := range s {
		switch d {
		case '2':
			color.New(color.FgGreen).Printf("%c", d)
		case '1':
			color.New(color.FgYellow).Printf("%c", d)
		default:
			fmt.Printf("%c", d)
		}
	}
	fmt.Println()
}
