// Package conv holds small generic helpers for coercing tool arguments and
// results between maps, structs and pointers.
package conv
