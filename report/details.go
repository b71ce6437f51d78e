package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/clarksmr/groupeng/rule"
	"github.com/clarksmr/groupeng/types"
)

// WriteDetails renders a per-student CSV grouped by group number. After each
// group's rows, a summary row carries the group's mean for every balance rule
// and the names of the rules the group breaks.
//
// Parameters:
//   - w: Destination
//   - result: Engine result (read-only)
//
// Returns:
//   - error: Write error
func WriteDetails(w io.Writer, result *types.Result) error {
	if len(result.Students) == 0 {
		return nil
	}

	balances := balanceRules(result.Rules)

	cw := csv.NewWriter(w)
	header := append([]string{}, result.Students[0].Headers()...)
	header = append(header, "")
	for _, b := range balances {
		header = append(header, fmt.Sprintf("group %s mean", b.Attribute()))
	}
	header = append(header, "Rules Broken")
	if err := cw.Write(header); err != nil {
		return err
	}

	numHeaders := len(result.Students[0].Headers())
	for _, g := range sortedGroups(result.Groups) {
		for _, s := range sortedStudents(g.Students()) {
			if err := cw.Write(s.Record()); err != nil {
				return err
			}
		}
		if err := cw.Write(summaryRecord(g, result.Rules, balances, numHeaders)); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// summaryRecord builds one group's summary row: the "summary" tag padded to
// the student columns, then per-balance group means and broken rule names.
func summaryRecord(g *types.Group, rules []types.Rule, balances []*rule.Balance, numHeaders int) []string {
	rec := make([]string, numHeaders+1)
	rec[0] = "summary"

	for _, b := range balances {
		if mean, ok := b.GroupMean(g); ok {
			rec = append(rec, fmt.Sprintf("%3.2f", mean))
		} else {
			rec = append(rec, "")
		}
	}

	for _, r := range rules {
		if !r.Check(g) {
			rec = append(rec, r.String())
		}
	}

	return rec
}

// balanceRules extracts the balance rules in priority order.
func balanceRules(rules []types.Rule) []*rule.Balance {
	out := make([]*rule.Balance, 0, len(rules))
	for _, r := range rules {
		if b, ok := r.(*rule.Balance); ok {
			out = append(out, b)
		}
	}

	return out
}
