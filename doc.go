// Package rayzer distributes a length across typed sizing constraints and
// uses that distribution to split rectangles into layout trees.
//
// Users import this single package for the complete public API:
// constraints and their token language, distribution, and layout nodes.
//
// Constraints can be written as numbers, tokens or values:
//
//	10      fixed
//	">=10"  minimum, absorbs any leftover
//	"<=10"  maximum
//	"30%"   percentage of what fixed and minimum leave
//	":1"    ratio of what percentages leave
//
// A typical layout:
//
//	root := rayzer.NewNode(0, 0, 100, 100)
//	_, err := root.SplitRows([]any{10, ">=0", 10},
//		rayzer.WithNames("header", "main", "footer"),
//		rayzer.Then(func(rows []*rayzer.Node) error {
//			_, err := rows[1].SplitCols([]any{"30%"})
//			return err
//		}),
//	)
package rayzer
