// SPDX-License-Identifier: MIT

package graphio

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/waypath/waypoint"
)

// ErrBadLink indicates a YAML link that points back at its source or whose
// distance is negative, NaN or infinite.
var ErrBadLink = errors.New("graphio: invalid link")

// Document is the YAML representation of a graph.
type Document struct {
	Symmetric bool          `yaml:"symmetric"`
	Waypoints []WaypointDoc `yaml:"waypoints"`
}

// WaypointDoc is one waypoint and its outgoing links.
type WaypointDoc struct {
	ID    int       `yaml:"id"`
	Links []LinkDoc `yaml:"links,omitempty"`
}

// LinkDoc is a single link to another waypoint.
type LinkDoc struct {
	To       int     `yaml:"to"`
	Distance float64 `yaml:"distance"`
}

// DecodeYAML reads a Document from r and builds the graph it describes.
func DecodeYAML(r io.Reader) (*waypoint.Graph, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("graphio: decode yaml: %w", err)
	}

	return doc.Graph()
}

// Graph builds a graph from the document. Waypoints are added in document
// order first, then links, so forward references are fine.
func (d Document) Graph() (*waypoint.Graph, error) {
	g := waypoint.NewGraph()
	for _, w := range d.Waypoints {
		if err := g.AddWaypoint(waypoint.NewNode(w.ID)); err != nil {
			return nil, err
		}
	}

	ensure := func(id int) (*waypoint.Node, error) {
		if n, ok := g.Waypoint(id); ok {
			return n, nil
		}
		n := waypoint.NewNode(id)

		return n, g.AddWaypoint(n)
	}

	for _, w := range d.Waypoints {
		src, _ := g.Waypoint(w.ID)
		for _, l := range w.Links {
			dst, err := ensure(l.To)
			if err != nil {
				return nil, err
			}
			if d.Symmetric {
				if err := g.AddConnection(src, dst, l.Distance); err != nil {
					return nil, err
				}
				continue
			}
			if l.To == w.ID || l.Distance < 0 || math.IsNaN(l.Distance) || math.IsInf(l.Distance, 0) {
				return nil, fmt.Errorf("%w: %d→%d distance=%v", ErrBadLink, w.ID, l.To, l.Distance)
			}
			src.AddConnection(dst, l.Distance)
		}
	}

	return g, nil
}

// NewDocument describes g with explicit one-way links (Symmetric=false), so
// decoding it yields exactly the same links.
func NewDocument(g *waypoint.Graph) Document {
	doc := Document{Waypoints: make([]WaypointDoc, 0, g.Len())}
	for _, n := range g.Waypoints() {
		w := WaypointDoc{ID: n.ID()}
		for _, to := range n.Connections() {
			d, _ := n.Distance(to)
			w.Links = append(w.Links, LinkDoc{To: to, Distance: d})
		}
		doc.Waypoints = append(doc.Waypoints, w)
	}

	return doc
}

// EncodeYAML writes g to w as a Document.
func EncodeYAML(w io.Writer, g *waypoint.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(g)); err != nil {
		return fmt.Errorf("graphio: encode yaml: %w", err)
	}

	return enc.Close()
}
