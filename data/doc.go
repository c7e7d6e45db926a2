// Package data holds immutable sets of colour samples.
//
// A Set is created from points expressed in any space.Space and keeps a
// single canonical copy in CIE XYZ. Coordinates in another space are
// produced on demand by Get and memoised per space, so repeated queries of
// the same field in the same space convert each point once.
//
// Sets are safe for concurrent use.
package data
