// Package terrain is a second, independent tile vocabulary for the
// generic wfc engine, used to exercise package wfc's genericity outside
// the dungeon domain (spec.md §8 end-to-end scenario 4: paint a single
// Sea cell and confirm the propagated result keeps Sea away from Land).
//
// This is a demo consumer, not a core module: it has no director, no
// rooms, no path forging — just a CellType and a Reducer, proving the
// wfc engine's Context[T] and Reducer[T] contract is not dungeon-shaped.
package terrain
