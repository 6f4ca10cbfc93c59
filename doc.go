// Package hexdungeon is your in-memory playground for generating hex-tiled
// dungeon maps in Go.
//
// 🚀 What is hexdungeon?
//
//	A seeded, thread-safe, near-zero-dependency module that brings together:
//
//	  • A generic wave-function-collapse engine over hex grids
//	  • A dungeon tile vocabulary and constraint-propagation kernel
//	  • A deterministic director that sequences room placement, path
//	    forging, and collapse into a complete, reachable map
//
// ✨ Why choose hexdungeon?
//
//   - Beginner-friendly — minimal API, clear, intuitive naming
//   - Rock-solid        — built-in R/W locks ensure thread-safety
//   - Reproducible      — same seed always yields the same map
//   - Pure Go           — no cgo, engine core has zero third-party deps
//
// Under the hood, everything is organized under seven subpackages:
//
//	hexgrid/  — hex coordinates, neighbor order, row-parity offsets
//	conn/     — the six-bit connection algebra over a cell's neighbors
//	wfc/      — the generic propagation engine (Context, Grid, PendingCell)
//	dungeon/  — the dungeon tile vocabulary and its reduction kernel
//	wrand/    — a seeded PRNG wrapper shared by every random draw
//	director/ — the state machine that drives a generation run to Idle
//	terrain/  — a Beach/Sea/Land demo vocabulary for the wfc engine
//
// Quick ASCII example, a single hex and its six neighbors:
//
//	     TL TR
//	      \ /
//	   L -- * -- R
//	      / \
//	     BL BR
//
// The module ships no examples/ directory; the end-to-end tests in
// director/director_test.go show a full generation run and an external
// cell edit mid-generation.
//
//	go get github.com/katalvlaran/hexdungeon
package hexdungeon
