// Package tango implements the core of a Tango tree: an online binary
// search tree over a static key universe that achieves an
// O(log log n)-competitive access cost relative to the offline optimum,
// following Demaine, Harmon, Iacono and Pătrașcu's "Dynamic Optimality —
// Almost."
//
// A Tango tree is built once over a fixed key universe with Build, then
// only ever Searched — there is no Insert or Delete. Internally it layers
// "preferred path" bookkeeping on top of a red-black tree: the static
// universe forms a notional perfect BST P, and at any point in time the
// most recently accessed keys form a set of vertical paths in P, each
// maintained as its own red-black auxiliary tree. A Search walks down P,
// and every time it crosses from one auxiliary tree into another it
// performs a cut and a join to re-thread the preferred path through the
// node it just visited, so repeatedly-accessed keys migrate toward the
// root of their auxiliary tree.
//
// The tree is single-threaded and synchronous: a Search must run to
// completion before another begins on the same Tree. Callers embedding a
// Tree behind a concurrent request path are responsible for serializing
// access themselves.
package tango
