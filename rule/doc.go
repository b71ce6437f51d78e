// Package rule provides built-in grouping rule implementations.
//
// Rules constrain how students are partitioned into groups. The package
// includes two built-in kinds:
//
//   - Balance: keeps a numeric attribute's per-group mean within a tolerance
//     band around the roster-wide mean (recommended for grades, test scores)
//   - Distribute: caps how many members with a given categorical attribute
//     value a single group may hold (recommended for gender, section, and the
//     engine's mandatory phantom spread)
//
// # Rule Selection Guide
//
// Balance:
//   - Use for numeric attributes where groups should look like the roster
//   - Enforcement swaps students between the group furthest from the
//     roster mean and a partner group, never worsening satisfied partners
//   - Configuration: tolerance (absolute or derived from the roster
//     standard deviation), iteration cap
//
// Distribute:
//   - Use for categorical attributes where one value must not pile up
//   - Enforcement swaps a matching member out of over-quota groups into
//     groups with spare quota
//   - Configuration: per-group maximum, iteration cap
//
// Rules are enforced strictly in list order; position is priority. Custom
// rules can be implemented by satisfying the types.Rule interface.
package rule
