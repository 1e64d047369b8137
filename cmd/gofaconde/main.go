// Command gofaconde is a small CLI front end over foundry/similarity: it
// compares two strings, or a query against every file matching a glob,
// and prints a results table.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mattn/go-runewidth"

	"github.com/fulmenhq/gofaconde/config"
	"github.com/fulmenhq/gofaconde/foundry/similarity"
	"github.com/fulmenhq/gofaconde/internal/codepoint"
	"github.com/fulmenhq/gofaconde/logging"
	"github.com/fulmenhq/gofaconde/telemetry"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("gofaconde", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML config file")
	algorithm := fs.String("algorithm", "levenshtein", "comparison algorithm: levenshtein, damerau, damerau_osa, jaro, jaro_winkler, substring, subsequence")
	filesGlob := fs.String("files", "", "doublestar glob of files to compare line-by-line against the query, instead of a single second string")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: gofaconde [flags] <query> [<candidate>]")
		return 2
	}
	query := fs.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gofaconde: loading config: %v\n", err)
		return 1
	}

	logger, err := logging.New(&logging.Config{DefaultLevel: cfg.Logging.Level, Development: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "gofaconde: building logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	if cfg.Telemetry.Enabled {
		sys, _ := telemetry.NewSystem(telemetry.DefaultConfig())
		similarity.EnableTelemetry(sys)
	}

	alg := similarity.Algorithm(*algorithm)

	if *filesGlob != "" {
		return runAgainstFiles(logger, query, *filesGlob, alg)
	}

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "usage: gofaconde [flags] <query> <candidate>")
		return 2
	}
	candidate := fs.Arg(1)

	score, err := similarity.ScoreWithAlgorithm(alg, similarity.NormLSeq, codepoint.DecodeString(query), codepoint.DecodeString(candidate))
	if err != nil {
		fmt.Fprintf(os.Stderr, "gofaconde: %v\n", err)
		return 1
	}

	printTable([]row{{label: candidate, score: score}})
	return 0
}

func runAgainstFiles(logger *logging.Logger, query, pattern string, alg similarity.Algorithm) int {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gofaconde: invalid glob %q: %v\n", pattern, err)
		return 2
	}

	queryRunes := codepoint.DecodeString(query)
	var rows []row

	for _, path := range matches {
		f, err := os.Open(path)
		if err != nil {
			logger.Warn("gofaconde: skipping unreadable file")
			continue
		}

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			score, err := similarity.ScoreWithAlgorithm(alg, similarity.NormLSeq, queryRunes, codepoint.DecodeString(line))
			if err != nil {
				f.Close()
				fmt.Fprintf(os.Stderr, "gofaconde: %v\n", err)
				return 1
			}
			rows = append(rows, row{label: fmt.Sprintf("%s: %s", path, line), score: score})
		}
		f.Close()
	}

	printTable(rows)
	return 0
}

type row struct {
	label string
	score float64
}

// printTable right-pads each label to the widest label's display width —
// measured with go-runewidth rather than rune count, so CJK and wide
// emoji candidates still line up in a terminal.
func printTable(rows []row) {
	widest := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r.label); w > widest {
			widest = w
		}
	}

	for _, r := range rows {
		pad := widest - runewidth.StringWidth(r.label)
		if pad < 0 {
			pad = 0
		}
		fmt.Printf("%s%*s  %.4f\n", r.label, pad, "", r.score)
	}
}
