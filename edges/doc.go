// Package edges derives the edge set of the drifting graph from node positions.
//
// Every frame:
//
//  1. Weight all unordered node pairs: dist(a,b) / (ra·rb)^power.
//     Bigger circles make cheaper edges, so with power→1 the graph grows hubs
//     and with power=0 it becomes a plain nearest-neighbour mesh.
//  2. Sort pairs ascending (stable).
//  3. Build a spanning tree (prim_kruskal) so every node stays connected.
//  4. Extend the tree with the globally cheapest non-tree pairs until
//     (n-1) + MaxExtraEdges edges are chosen. This is the ideal set.
//  5. Reconcile the ideal set against last frame's live edges: members fade
//     in, non-members fade out, and edges touching an invisible or vanished
//     node are dropped.
//  6. Top the live set up from the ideal set, tree edges first, new edges
//     starting fully transparent.
//
// The ideal set jumps around from frame to frame as nodes drift; the live set
// lags behind it through the fades, which is what keeps the picture calm.
package edges
