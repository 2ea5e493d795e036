// Package hamt implements a persistent hash array mapped trie: an
// immutable associative map from arbitrary hashable keys to arbitrary
// values, supporting point lookup, insertion, and deletion with
// structural sharing across versions.
//
// Every node is immutable once constructed; Set and Delete return a new
// *Tree whose root shares every subtree unaffected by the change with
// the tree it was derived from. Nothing under this package mutates state
// observable through a *Tree held by another goroutine, so any number of
// readers may use a *Tree concurrently with any number of writers
// producing newer ones.
package hamt
