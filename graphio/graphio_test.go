package graphio_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/graphio"
	"github.com/katalvlaran/waypath/waypoint"
)

const symmetricDoc = `
symmetric: true
waypoints:
  - id: 0
    links:
      - {to: 1, distance: 1}
      - {to: 2, distance: 10}
  - id: 1
    links:
      - {to: 2, distance: 2}
  - id: 2
`

func TestDecodeYAML_Symmetric(t *testing.T) {
	g, err := graphio.DecodeYAML(strings.NewReader(symmetricDoc))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, g.IDs())
	m := g.AdjacencyMatrix()
	assert.True(t, m.Symmetric())
	assert.Equal(t, 2.0, m[2][1])
}

func TestDecodeYAML_OneWayAndImplicitTargets(t *testing.T) {
	doc := `
waypoints:
  - id: 3
    links:
      - {to: 8, distance: 4.5}
`
	g, err := graphio.DecodeYAML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 8}, g.IDs())
	m := g.AdjacencyMatrix()
	assert.Equal(t, 4.5, m[3][8])
	assert.Zero(t, m[8][3])
}

func TestDecodeYAML_Errors(t *testing.T) {
	dup := "waypoints:\n  - id: 1\n  - id: 1\n"
	_, err := graphio.DecodeYAML(strings.NewReader(dup))
	require.ErrorIs(t, err, waypoint.ErrDuplicateID)

	self := "waypoints:\n  - id: 1\n    links: [{to: 1, distance: 1}]\n"
	_, err = graphio.DecodeYAML(strings.NewReader(self))
	require.ErrorIs(t, err, graphio.ErrBadLink)

	selfSym := "symmetric: true\nwaypoints:\n  - id: 1\n    links: [{to: 1, distance: 1}]\n"
	_, err = graphio.DecodeYAML(strings.NewReader(selfSym))
	require.ErrorIs(t, err, waypoint.ErrSelfConnection)

	for _, d := range []string{".nan", ".inf", "-.inf", "-1"} {
		doc := "waypoints:\n  - id: 0\n    links: [{to: 1, distance: " + d + "}]\n"
		_, err = graphio.DecodeYAML(strings.NewReader(doc))
		require.ErrorIs(t, err, graphio.ErrBadLink, "distance %s", d)
	}

	nanSym := "symmetric: true\nwaypoints:\n  - id: 0\n    links: [{to: 1, distance: .nan}]\n"
	_, err = graphio.DecodeYAML(strings.NewReader(nanSym))
	require.ErrorIs(t, err, waypoint.ErrBadDistance)

	_, err = graphio.DecodeYAML(strings.NewReader("waypoints: {"))
	require.Error(t, err)
}

func TestDecodeYAML_Empty(t *testing.T) {
	g, err := graphio.DecodeYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, g.Len())
}

func TestYAML_RoundTrip(t *testing.T) {
	g, err := graphio.DecodeYAML(strings.NewReader(symmetricDoc))
	require.NoError(t, err)
	g0, _ := g.Waypoint(0)
	g5 := waypoint.NewNode(5)
	require.NoError(t, g.AddWaypoint(g5))
	g5.AddConnection(g0, 7) // one-way survives the round trip

	var buf bytes.Buffer
	require.NoError(t, graphio.EncodeYAML(&buf, g))

	back, err := graphio.DecodeYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.IDs(), back.IDs())
	assert.Equal(t, g.AdjacencyMatrix(), back.AdjacencyMatrix())
}

func triangle(t *testing.T) *waypoint.Graph {
	t.Helper()
	g, err := graphio.DecodeYAML(strings.NewReader(symmetricDoc))
	require.NoError(t, err)

	return g
}

func TestToDOT(t *testing.T) {
	g := triangle(t)
	n2, _ := g.Waypoint(2)
	n3 := waypoint.NewNode(3)
	require.NoError(t, g.AddWaypoint(n3))
	n3.AddConnection(n2, 4)

	dot := graphio.ToDOT(g, []int{0, 1, 2})

	assert.True(t, strings.HasPrefix(dot, "graph G {"))
	assert.Contains(t, dot, `0 -- 1 [label="1", color=red, penwidth=2];`)
	assert.Contains(t, dot, `1 -- 2 [label="2", color=red, penwidth=2];`)
	assert.Contains(t, dot, `0 -- 2 [label="10"];`)
	assert.Contains(t, dot, `3 -- 2 [label="4", dir=forward];`)
	assert.Contains(t, dot, "0 [fillcolor=lightblue];")
	assert.Contains(t, dot, "  3;\n")
	assert.NotContains(t, dot, "1 -- 0", "matched pair drawn once")
}

func TestRenderSVG(t *testing.T) {
	svg, err := graphio.RenderSVG(context.Background(), graphio.ToDOT(triangle(t), nil))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}
