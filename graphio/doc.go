// SPDX-License-Identifier: MIT

// Package graphio converts waypoint graphs to and from external formats
// other than the row table: a YAML document, Graphviz DOT, and SVG rendered
// from DOT.
//
// # YAML
//
//	symmetric: true
//	waypoints:
//	  - id: 0
//	    links:
//	      - {to: 1, distance: 2.5}
//	  - id: 1
//
// With symmetric: true every link is added through Graph.AddConnection and
// so becomes an undirected edge. Otherwise each link is a one-way link.
// Link targets that are not listed as waypoints are created.
//
// # DOT
//
// ToDOT draws each matched pair of links as one undirected edge and any
// unmatched link with an arrow. A route, when given, is highlighted.
package graphio
