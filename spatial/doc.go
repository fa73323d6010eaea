// Package spatial computes borders and connected components over a Space
// RangeMOC, using a healpix.Rasterizer for cell neighbour enumeration and
// a disjoint-set union (grounded on prim_kruskal's iterative find/union
// with path compression and union-by-rank) for component labeling,
// mirroring gridgraph's BFS-based ConnectedComponents but over MOC cell
// blocks instead of a dense 2-D array.
package spatial
