// Package unit implements the conversion core: unit name normalization,
// alias and category indexing over an immutable catalog, the ratio and affine
// (temperature) conversion models and the Converter entry point that
// validates requests, rounds results and reports typed errors.
package unit
