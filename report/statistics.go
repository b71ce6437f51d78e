package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/clarksmr/groupeng/types"
)

// WriteStatistics renders a plain-text run summary: per-rule failure counts,
// class-wide statistics for every balanced attribute, and a one-line summary
// per group.
//
// The mandatory phantom-distribution rule (first in Result.Rules) is omitted
// from the per-rule section; a succeeded run satisfies it by definition and a
// failed run reports it through the returned error instead.
//
// Parameters:
//   - w: Destination
//   - result: Engine result (read-only)
//
// Returns:
//   - error: Write error
func WriteStatistics(w io.Writer, result *types.Result) error {
	if _, err := fmt.Fprintf(w, "Run %s\n\nMade %d groups\n\n", result.RunID, len(result.Groups)); err != nil {
		return err
	}

	groups := sortedGroups(result.Groups)

	for i, r := range result.Rules {
		if i == 0 {
			continue // mandatory phantom rule
		}
		if err := writeRuleStats(w, result, r, result.Failures[i], groups); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "Group Summaries\n---------------\n"); err != nil {
		return err
	}
	for _, g := range groups {
		if err := writeGroupSummary(w, g, result.Rules); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")

	return err
}

func writeRuleStats(w io.Writer, result *types.Result, r types.Rule, failed int, groups []*types.Group) error {
	b, ok := r.(types.StrengthRule)
	if !ok || r.Kind() != types.KindBalance {
		_, err := fmt.Fprintf(w, "%d groups failed: %s\n\n", failed, r)

		return err
	}

	attr := r.Attribute()
	classMean, _ := types.Mean(result.Students, b.Strength)
	classStd, _ := types.StdDev(result.Students, b.Strength)

	groupMeans := make([]float64, 0, len(groups))
	for _, g := range groups {
		if mean, n := types.Mean(g.Students(), b.Strength); n > 0 {
			groupMeans = append(groupMeans, mean)
		}
	}

	_, err := fmt.Fprintf(w,
		"%d groups failed: %s: Class %s Mean: %3.2f, Class %s Std Dev: %3.2f, Std Dev of Group %s Means: %3.2f\n\n",
		failed, r, attr, classMean, attr, classStd, attr, types.StdDevFloat64(groupMeans),
	)

	return err
}

func writeGroupSummary(w io.Writer, g *types.Group, rules []types.Rule) error {
	items := make([]string, 0, len(rules))
	for _, r := range rules {
		b, ok := r.(types.StrengthRule)
		if !ok || r.Kind() != types.KindBalance {
			continue
		}
		if mean, n := types.Mean(g.Students(), b.Strength); n > 0 {
			items = append(items, fmt.Sprintf("<%s Mean: %3.2f>", r.Attribute(), mean))
		}
	}
	for _, r := range rules {
		if !r.Check(g) {
			items = append(items, fmt.Sprintf("Failed %s", r))
		}
	}

	_, err := fmt.Fprintf(w, "Group %d: %s\n", g.Number(), strings.Join(items, ", "))

	return err
}
