// Package clique provides an independent cross-check for the size of a
// Markov equivalence class over a chordal undirected graph (a CC input,
// or the undirected skeleton of a CPDAG), computed by brute force rather
// than the bucket machinery of package mcs.
//
// Count processes one connected component at a time: it tries every
// orientation of the component's edges and keeps those that are acyclic
// and introduce no unshielded collider (acyclic moral orientations).
// Components are independent, so their counts multiply.
//
// This is deliberately not the optimized path: it exists to verify
// mcs.Enumerate and enummeek.Enumerate agree on small inputs, not to
// replace them. Its cost is 2^|E| per component, which limits it to small
// skeletons, and it only counts: it is a cross-check, not a fourth
// enumerator.
package clique
