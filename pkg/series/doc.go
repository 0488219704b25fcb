// Package series holds the input data model for squiggly charts.
//
// A [Series] is an ordered list of (x, y) pairs. The x axis is either plain
// numeric or timestamp-valued; timestamps are encoded as fractional Unix
// seconds so the transform can treat every axis as linear:
//
//	s, err := series.FromTimes(days, visitors)
//	s.XIsTime // true
//
// Generic input is accepted through [Of]:
//
//	s, err := series.Of([]int{0, 1, 2, 3}, []float32{1, 4, 9, 16})
//
// Every constructor enforces the shape invariants (more than three points,
// equal lengths, finite values) and returns a SHAPE_VALIDATION error from
// package errors otherwise.
//
// [Bounds] describe the extent of one axis and are used for tick placement,
// grid extension and origin detection.
package series
