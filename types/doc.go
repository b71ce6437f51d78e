// Package types defines the core data types and interfaces shared across the
// groupeng library.
//
// The package contains the student/group/course data model, the Partition
// state object that owns group membership, the Rule interface implemented by
// grouping rules, and the Logger, MetricsCollector and Hooks interfaces used
// for observability.
//
// Keeping these definitions in a dedicated package allows internal packages
// and rule implementations to share them without importing the root groupeng
// package, which re-exports them via type aliases for convenience.
package types
