// Package aoc is a toolkit for grid and geometry puzzles, with the Advent of
// Code 2021 solvers that use it.
//
// The reusable pieces live in small subpackages:
//
//	coord      Coord, Delta, Direction, Direction8 and 90° turn algebra
//	grid       dense generic Grid[T]: text parsing, iteration, flips and
//	           rotations, connected components, flood fill, shortest paths
//	interval   closed integer intervals with an exact three-way difference
//	cuboid     axis-aligned boxes, box difference and the on/off Reactor
//	bitstream  MSB-first bit reader
//	packet     BITS packet decoder and evaluator
//
// Callers:
//
//	puzzles    per-day solvers and the day registry
//	input      cached input files on disk
//	cmd/aoc    command-line driver
//
// Quick start:
//
//	g, err := grid.Parse("123\n456\n", grid.ParseDigit)
//	cost, err := g.ShortestPath(coord.Origin(), coord.Coord{X: 2, Y: 1}, grid.Conn4, risk)
//
//	r := cuboid.NewReactor()
//	r.Apply(cuboid.Step{Cuboid: cuboid.Cube(interval.New(0, 9)), On: true})
//	r.TotalOn() // 1000
//
// Library packages never log and never panic on bad input; they return
// sentinel errors that callers match with errors.Is.
package aoc
