// Package deck loads grouping jobs from YAML input decks and CSV classlists.
//
// An input deck names the classlist file and describes the grouping job: the
// target group size, the uneven-size policy, the rule list in priority order,
// and optional enforcement overrides. The classlist is a CSV file whose
// header row names the student attributes; one column is the unique student
// identifier.
package deck
