// Package groupeng partitions a student roster into fixed-size groups that
// satisfy an ordered list of grouping rules.
//
// The Engine is the main entry point. It deals students into groups, pads
// uneven rosters with phantom placeholders, then enforces each rule in strict
// priority order using bounded heuristic swaps. Balance rules keep a numeric
// attribute's per-group mean near the roster mean; distribute rules spread a
// categorical value across groups. Only the mandatory phantom-distribution
// rule can fail a run; lower-priority rules degrade gracefully and report
// their failing groups instead.
//
// Basic usage:
//
//	course, _ := types.NewCourse(students, 4, types.UnevenLow)
//	rules, _ := rule.New(rule.Spec{Kind: "balance", Attribute: "GPA"}, course)
//
//	cfg := groupeng.DefaultConfig()
//	eng, err := groupeng.New(&cfg, course, rules)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := eng.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, g := range result.Groups {
//	    fmt.Println(g.Number(), g.Students())
//	}
//
// Deck files (YAML descriptions of a grouping job) and CSV classlists are
// handled by the deck subpackage; formatted output by the report subpackage.
package groupeng
