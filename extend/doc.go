// Package extend decides whether a PDAG has a consistent DAG extension,
// and if so produces one, following the potential-sink elimination method:
// repeatedly remove a vertex whose outgoing structure proves it can be
// placed last in a topological order, until the working graph is empty
// (extendable) or stuck (not extendable).
//
// A vertex s is a potential sink when it has no outgoing directed edge,
// every pair of its undirected neighbors is itself adjacent (its
// undirected neighborhood is a clique), and every directed predecessor of
// s is adjacent to every undirected neighbor of s. ExtendedGraph (EG)
// tracks six per-vertex counters (δ⁺_dir, δ⁻_dir, δ⁺_undir, δ⁻_undir, α,
// β) incrementally so that this test costs O(1) per vertex instead of
// re-scanning its neighborhood.
//
// IsExtendable reports only success/failure; Extend additionally produces
// the DAG. Removal order is LIFO over an explicit stack: vertices newly
// discovered to be potential sinks are pushed in increasing vertex-ID
// order as they are found, so popping is deterministic and reproducible
// across runs. Extendability itself does not depend on removal order, but
// the specific DAG Extend returns does, so tests comparing Extend's
// output must replicate this exact order.
package extend
