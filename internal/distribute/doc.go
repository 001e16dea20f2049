// Package distribute splits a positive budget across an ordered list of
// constraints.
//
// Constraints are applied in priority order, independent of their position:
//
//	fixed = minimum > percentage > ratio > maximum
//
// Budget left over once every constraint is satisfied goes to the first
// minimum constraint. Without one, [Distribute] appends it as an extra
// trailing part and [DistributeStrict] fails with an
// [*IncompleteDistributionError].
package distribute
