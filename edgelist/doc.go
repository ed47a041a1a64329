// Package edgelist reads tab-separated influence networks into a core.Graph.
//
// File format (one header line, then one record per line):
//
//	from<TAB>to<TAB>direction<TAB>weight
//
// direction 0 adds the edge in both directions with the same weight; any
// other integer adds from→to only. Loading is all-or-nothing: the first bad
// record aborts the whole file with a *ParseError and no graph is returned.
package edgelist
