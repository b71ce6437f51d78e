// Package report renders grouping results as CSV and plain-text output.
//
// All writers treat the result as read-only and sort private copies, so a
// result can be rendered multiple ways without mutating engine output.
package report
