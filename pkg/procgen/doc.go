// Package procgen provides the shared generation contract used across the seed
// generation core: the Generator interface, generation parameters, and the
// SeedGenerator used to derive per-purpose deterministic seeds from a base seed.
//
// All generators use deterministic algorithms based on seed values to ensure
// reproducible output.
package procgen
