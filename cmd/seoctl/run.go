package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/user/seo-monitor/internal/analysis"
	"github.com/user/seo-monitor/internal/entity"
	"github.com/user/seo-monitor/pkg/config"
)

var errUsage = errors.New("usage: seoctl <normalize|analyze|group|cannibalization|trend> [flags] [args]")

type normalized struct {
	Original   string `json:"original"`
	Normalized string `json:"normalized"`
}

type groupOutput struct {
	Groups  []entity.URLVariantGroup `json:"groups"`
	Summary entity.VariantSummary    `json:"summary"`
}

type cannibalizationOutput struct {
	Issues         []entity.CannibalizationIssue `json:"issues"`
	SeverityCounts map[entity.Severity]int       `json:"severity_counts"`
}

type trendOutput struct {
	PercentChange *float64     `json:"percent_change,omitempty"`
	Display       string       `json:"display"`
	Trend         entity.Trend `json:"trend"`
}

func run(ctx context.Context, cfg *config.Config, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	engine := analysis.New(cfg.Site())
	cmd, args := args[0], args[1:]

	switch cmd {
	case "normalize":
		urls, err := urlArgs(ctx, args, stdin)
		if err != nil {
			return err
		}
		out := make([]normalized, len(urls))
		for i, u := range urls {
			out[i] = normalized{Original: u, Normalized: engine.Normalize(u)}
		}
		return writeJSON(stdout, out)

	case "analyze":
		urls, err := urlArgs(ctx, args, stdin)
		if err != nil {
			return err
		}
		out := make([]entity.URLAnalysis, len(urls))
		for i, u := range urls {
			out[i] = engine.AnalyzeURL(u)
		}
		return writeJSON(stdout, out)

	case "group":
		var records []entity.URLRecord
		if err := readInput(cmd, args, stdin, &records); err != nil {
			return err
		}
		groups := engine.GroupURLsByCanonical(records)
		return writeJSON(stdout, groupOutput{Groups: groups, Summary: analysis.Summarize(groups)})

	case "cannibalization":
		var queries []entity.QueryRecord
		if err := readInput(cmd, args, stdin, &queries); err != nil {
			return err
		}
		issues := engine.DetectCannibalization(queries)
		return writeJSON(stdout, cannibalizationOutput{Issues: issues, SeverityCounts: analysis.CountSeverities(issues)})

	case "trend":
		fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
		current := fs.Float64("current", 0, "metric value of the current period")
		previous := fs.Float64("previous", 0, "metric value of the previous period")
		if err := fs.Parse(args); err != nil {
			return err
		}
		change, ok := analysis.CalcPercentChange(*current, *previous)
		out := trendOutput{Display: analysis.FormatPercentChange(change, ok), Trend: analysis.TrendOf(change, ok)}
		if ok {
			out.PercentChange = &change
		}
		return writeJSON(stdout, out)

	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

// urlArgs returns the positional URLs, or the non-empty lines of stdin when
// there are none.
func urlArgs(ctx context.Context, args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var urls []string
	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if line := strings.TrimSpace(sc.Text()); line != "" {
			urls = append(urls, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read urls: %w", err)
	}
	return urls, nil
}

func readInput(cmd string, args []string, stdin io.Reader, dst any) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	in := fs.String("in", "-", "JSON input file, - for stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	r := stdin
	if *in != "-" {
		f, err := os.Open(*in)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return fmt.Errorf("decode %s input: %w", cmd, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
