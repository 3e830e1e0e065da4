// Package cuboid maintains sets of lit cells in an unbounded 3-D lattice as
// lists of pairwise-disjoint axis-aligned boxes.
//
// What:
//
//   - Cuboid is three interval.Closed bounds; it is empty iff any axis is empty.
//   - Cuboid.Difference computes A \ B as at most six disjoint boxes by
//     sequential axis decomposition: on each axis the slabs of A below and above
//     B are emitted with the running extent on the other axes, then the running
//     box is narrowed to the overlap on that axis. If any axis misses, A and B do
//     not overlap and A is returned unchanged.
//   - Reactor applies on/off Steps. Every existing box is replaced by its
//     difference with the step box; an "on" step then appends the step box.
//     The stored boxes are disjoint after every step, so TotalOn is a plain sum
//     of volumes.
//
// Step format:
//
//	on x=-20..26,y=-36..17,z=-47..7
//	off x=9..11,y=9..11,z=9..11
//
// Complexity:
//
//   - Difference: O(1), at most 6 boxes.
//   - Reactor.Apply: O(n) for n stored boxes; n grows by at most 6 per box per step.
//
// Errors:
//
//   - ErrSyntax:        a step line does not match the format.
//   - ErrInvalidBounds: a step axis has min > max.
package cuboid
