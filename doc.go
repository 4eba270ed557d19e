// Package avl implements a self-balancing binary search tree (AVL tree)
// mapping integer keys to arbitrary values.
//
// Set, Delete, Get and Find run in O(log n) for n stored keys; Items runs
// in O(n) and returns pairs in ascending key order. Every node caches its
// own height, so balance factors cost O(1) and at most one single or
// double rotation happens per level on the unwind of an insert or delete.
//
// Note: an individual tree is not thread safe, so either access it from a
// single goroutine or use a mutex/rwmutex to restrict access. Lookups and
// traversal are safe to run concurrently with each other as long as no
// Set or Delete runs at the same time.
//
// Looking up, deleting or checking a key that is not in the tree is a
// defined, successful outcome, never an error.
package avl
