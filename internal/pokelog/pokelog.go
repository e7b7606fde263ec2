// Package pokelog wires up the shared zerolog logger every cmd/* binary
// uses, grounded on other_examples/1f591a8b_bluebear94-odnocam's
// rs/zerolog/log call-site idiom (the richest structured-logging example in
// the retrieval pack for a concurrent search engine).
package pokelog

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger: a human-readable console
// writer when stderr is a terminal, structured JSON lines otherwise.
// verbosity follows the conventional -v/-vv count: 0 -> Info, 1 -> Debug,
// 2+ -> Trace.
func Setup(verbosity int) {
	level := zerolog.InfoLevel
	switch {
	case verbosity >= 2:
		level = zerolog.TraceLevel
	case verbosity == 1:
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if isatty.IsTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
}
