// Command groupeng partitions a student roster into groups as described by a
// YAML input deck.
//
// Usage:
//
//	groupeng [-v] <deck.yaml>
//
// The deck names a CSV classlist and lists grouping rules in priority order.
// Output files are written into a groups_<deck>_<timestamp>/ directory next
// to the current working directory: group membership as CSV and text, the
// full classlist with group numbers, a per-student details sheet, and a
// statistics summary.
//
// Exit status is 1 on configuration errors and when the roster cannot be
// grouped at the requested size.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/clarksmr/groupeng"
	"github.com/clarksmr/groupeng/deck"
	"github.com/clarksmr/groupeng/internal/logging"
	"github.com/clarksmr/groupeng/report"
	"github.com/clarksmr/groupeng/types"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-v] <deck.yaml>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, flag.Arg(0), *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "groupeng: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, deckPath string, verbose bool) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewSlog(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	d, err := deck.Load(deckPath)
	if err != nil {
		return err
	}

	course, err := d.Course(filepath.Dir(deckPath))
	if err != nil {
		return err
	}

	rules, err := d.BuildRules(course)
	if err != nil {
		return err
	}

	cfg := d.EngineConfig()
	eng, err := groupeng.New(&cfg, course, rules, groupeng.WithLogger(logger))
	if err != nil {
		return err
	}

	result, err := eng.Run(ctx)
	if err != nil {
		if errors.Is(err, groupeng.ErrUnevenGroups) {
			return fmt.Errorf("%w\ntry a different group size or set unevenSize: high", err)
		}

		return err
	}

	outdir, err := writeOutputs(deckPath, d, result)
	if err != nil {
		return err
	}

	fmt.Printf("Made %d groups, output in %s\n", len(result.Groups), outdir)
	if !allSatisfied(result) {
		fmt.Println("Some rules could not be fully satisfied; see the statistics file.")
	}

	return nil
}

// writeOutputs renders the five output files into a fresh timestamped
// directory and returns its path.
func writeOutputs(deckPath string, d *deck.Deck, result *types.Result) (string, error) {
	runName := strings.TrimSuffix(filepath.Base(deckPath), filepath.Ext(deckPath))
	outdir := fmt.Sprintf("groups_%s_%s", runName, time.Now().Format("2006-01-02_15-04-05"))
	if err := os.Mkdir(outdir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	outputs := []struct {
		suffix string
		render func(io.Writer) error
	}{
		{"groups.csv", func(w io.Writer) error { return report.WriteGroups(w, result.Groups, ", ") }},
		{"groups.txt", func(w io.Writer) error { return report.WriteGroups(w, result.Groups, "\n") }},
		{"classlist.csv", func(w io.Writer) error { return report.WriteClasslist(w, result.Students) }},
		{"details.csv", func(w io.Writer) error { return report.WriteDetails(w, result) }},
		{"statistics.txt", func(w io.Writer) error {
			header := fmt.Sprintf("Ran groupeng on: %s with students from %s\n\n", deckPath, d.Classlist)
			if _, err := io.WriteString(w, header); err != nil {
				return err
			}

			return report.WriteStatistics(w, result)
		}},
	}

	for _, out := range outputs {
		path := filepath.Join(outdir, fmt.Sprintf("%s_%s", runName, out.suffix))
		if err := writeFile(path, out.render); err != nil {
			return "", err
		}
	}

	return outdir, nil
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := render(f); err != nil {
		f.Close()

		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}

func allSatisfied(result *types.Result) bool {
	for _, n := range result.Failures {
		if n > 0 {
			return false
		}
	}

	return true
}
