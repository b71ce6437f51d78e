package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/clarksmr/groupeng/types"
)

// WriteGroups renders one line (or block) per group: the group number
// followed by its members' identifiers in sorted order.
//
// Parameters:
//   - w: Destination
//   - groups: Final groups, any order
//   - sep: Separator between fields; ", " gives CSV lines, "\n" a text block
//     per group
//
// Returns:
//   - error: Write error
func WriteGroups(w io.Writer, groups []*types.Group, sep string) error {
	for _, g := range sortedGroups(groups) {
		ids := make([]string, 0, g.Size())
		for _, s := range g.Students() {
			ids = append(ids, s.ID())
		}
		sort.Strings(ids)

		if _, err := fmt.Fprintf(w, "Group %d", g.Number()); err != nil {
			return err
		}
		for _, id := range ids {
			if _, err := io.WriteString(w, sep+id); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}

// WriteClasslist renders the full roster as CSV: the original classlist
// columns plus a trailing group-number column, sorted by group then
// identifier.
//
// Parameters:
//   - w: Destination
//   - students: Final roster with group membership
//
// Returns:
//   - error: Write error
func WriteClasslist(w io.Writer, students []*types.Student) error {
	if len(students) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	header := append(append([]string{}, students[0].Headers()...), "Group Number")
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, s := range sortedStudents(students) {
		rec := append(s.Record(), strconv.Itoa(s.GroupNumber()))
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// sortedGroups returns a copy of groups ordered by group number.
func sortedGroups(groups []*types.Group) []*types.Group {
	out := make([]*types.Group, len(groups))
	copy(out, groups)
	sort.Slice(out, func(i, j int) bool { return out[i].Number() < out[j].Number() })

	return out
}

// sortedStudents returns a copy of students ordered by group number, then
// identifier within a group.
func sortedStudents(students []*types.Student) []*types.Student {
	out := make([]*types.Student, len(students))
	copy(out, students)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].GroupNumber() != out[j].GroupNumber() {
			return out[i].GroupNumber() < out[j].GroupNumber()
		}

		return out[i].ID() < out[j].ID()
	})

	return out
}
