// Package wrand is a thin, seedable wrapper around math/rand's
// per-instance generator, exposing exactly the three operations the
// director needs: a uniform float draw, a uniform integer draw, and a
// Bernoulli trial.
//
// Identical seed, identical call sequence, identical results: Rand wraps
// a private *rand.Rand instance (not the shared global source), so two
// independently constructed Rand values with the same seed draw the same
// sequence regardless of what else is happening in the process.
package wrand
