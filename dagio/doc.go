// Package dagio implements the text file format this module's graphs are
// read from and written to. It is a thin boundary, not the file-handling
// collaborator itself (random instance generation, benchmark harnesses,
// and CSV aggregation live outside this module); dagio only knows how to
// turn bytes into a graph.Graph and back.
//
// Format:
//
//	<n> <m>
//
//	<u1> <v1>
//	...
//	<um> <vm>
//
// Vertices are 1-indexed. ReadGraph's undirected parameter controls
// whether each listed pair yields both u→v and v→u, or just the literal
// edge given. WriteGraph always writes literal directed edges, one line
// per directed pair, in lexicographic (u,v) order.
package dagio
