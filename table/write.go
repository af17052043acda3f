// SPDX-License-Identifier: MIT

package table

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/waypath/waypoint"
)

// Write emits one row per waypoint in insertion order, with connections
// sorted by target ID. The output parses back to an equivalent graph.
func Write(w io.Writer, g *waypoint.Graph, opts ...Option) error {
	cfg, err := buildOptions(opts)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, n := range g.Waypoints() {
		if _, err := bw.WriteString(FormatRow(n, cfg.Delimiter)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// FormatRow renders a single node as a row.
func FormatRow(n *waypoint.Node, delim string) string {
	conns := n.Connections()
	ids := make([]string, len(conns))
	dists := make([]string, len(conns))
	for i, id := range conns {
		d, _ := n.Distance(id)
		ids[i] = strconv.Itoa(id)
		dists[i] = strconv.FormatFloat(d, 'g', -1, 64)
	}

	var sb strings.Builder
	sb.WriteString(strconv.Itoa(n.ID()))
	sb.WriteString(delim)
	sb.WriteString("[" + strings.Join(ids, ",") + "]")
	sb.WriteString(delim)
	sb.WriteString("[" + strings.Join(dists, ",") + "]")

	return sb.String()
}
