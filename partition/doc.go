// Package partition builds the first candidate partition of a course roster.
//
// The initial partitioner determines the group count from the course's
// uneven-size policy, injects phantom placeholder students so every group can
// be filled to exactly its capacity, and deals students into groups in a
// serpentine order seeded by the highest-priority balance rule. Dealing
// sorted-by-strength students back and forth across the groups spreads the
// value range over every group, pre-balancing per-group means before any
// explicit enforcement pass.
//
// Configuration errors (non-positive group size, group size exceeding the
// roster) are raised here, before any group is created.
package partition
