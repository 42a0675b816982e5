// Package catalog defines the unit catalog document (categories, canonical
// units, factors and aliases) and loads it either from the embedded default
// or from any location supported by viant/afs.
package catalog
