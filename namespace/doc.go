// Package namespace implements the operations of the cli on top of a
// node.Client: listing and printing subtrees, recursive deletion, payload
// reads and create-or-update writes.
//
// The remote namespace may change between any two calls made here. The
// package never caches a stat and copes with nodes vanishing in between:
//
//   - Walker skips a listed child whose stat reports it missing and keeps
//     going with its siblings.
//   - Deleter treats descendants that are already gone as deleted.
//   - Writer falls back to creating a missing node only when forced.
//
// Traversals use an explicit work stack so that deep trees do not grow the
// goroutine stack.
package namespace
