// Package sample defines the paired observations consumed by the pairstat
// engine and helpers for building and inspecting collections of them.
//
// A Pair is a value type: functions in pairstat take []Pair by value and
// never retain, mutate or reorder the caller's slice. Helpers that need a
// different order (SortedByX) return a copy.
//
// # Building Collections
//
// Records coming from storage are usually structs, not pairs. FromFunc maps
// any record slice into pairs, and FromInts zips two integer columns:
//
//	pairs := sample.FromFunc(responses, func(r Response) (x, y float64) {
//	    return float64(r.Answer1), float64(r.Answer2)
//	})
//
//	pairs, err := sample.FromInts(answer1, answer2)
//
// # Fingerprints
//
// Fingerprint returns a 64-bit xxHash over the collection in order. Two
// collections with the same pairs in the same order share a fingerprint,
// which lets a presentation layer tell whether a rendered summary is stale.
package sample
