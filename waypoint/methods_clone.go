// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.

package waypoint

// Clone returns a deep copy of the Graph: new Node values with the same IDs,
// links and insertion order. The clone shares nothing with g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		nodes: make([]*Node, 0, len(g.nodes)),
		index: make(map[int]*Node, len(g.nodes)),
	}
	for _, n := range g.nodes {
		cp := &Node{id: n.id, links: make(map[int]float64, len(n.links))}
		for id, d := range n.links {
			cp.links[id] = d
		}
		clone.nodes = append(clone.nodes, cp)
		clone.index[cp.id] = cp
	}

	return clone
}

// Clear removes every waypoint and drops their links, as if RemoveWaypoint
// had been called on each member.
func (g *Graph) Clear() {
	for _, n := range g.nodes {
		for id := range n.links {
			delete(n.links, id)
		}
	}
	g.nodes = nil
	g.index = make(map[int]*Node)
}
