// SPDX-License-Identifier: MIT

// Package table reads and writes waypoint graphs in a delimited row format:
//
//	waypointId;[connId,connId,...];[dist,dist,...]
//
// The connection and distance lists are paired by position. Every ID seen,
// as a row source or as a connection target, becomes a waypoint. Each pair
// produces exactly one one-way link (source → target) via
// waypoint.Node.AddConnection; a row listing 1→2 does not create 2→1. Inputs
// that should be traversable both ways must list both directions.
//
// Blank lines and lines starting with '#' are ignored. Distances use '.' as
// the decimal separator regardless of locale. Errors are reported as
// *ParseError carrying the 1-based line number.
package table
