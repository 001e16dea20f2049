// Package constraint defines the typed sizing rules consumed by the
// distributor and the compact token language used to write them.
//
// A [Constraint] is one of five kinds: [Fixed], [Minimum], [Maximum],
// [Percentage] or [Ratio]. Values are built with the New* factories or
// parsed from tokens with [Parse] and [ParseToken]:
//
//	10      fixed
//	>=10    minimum
//	<=10    maximum
//	10%     percentage (also %10)
//	:10     ratio
//
// Types are re-exported through the root rayzer package for public consumption.
package constraint
