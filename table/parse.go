// SPDX-License-Identifier: MIT

package table

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/waypath/waypoint"
)

// Parse reads rows from r into a new graph.
func Parse(r io.Reader, opts ...Option) (*waypoint.Graph, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	b := newBuilder()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if err := b.row(sc.Text(), cfg.Delimiter); err != nil {
			return nil, &ParseError{Line: line, Row: sc.Text(), Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("table: read: %w", err)
	}

	return b.g, nil
}

// ParseRows parses an in-memory table, one row per element.
func ParseRows(rows []string, opts ...Option) (*waypoint.Graph, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	b := newBuilder()
	for i, row := range rows {
		if err := b.row(row, cfg.Delimiter); err != nil {
			return nil, &ParseError{Line: i + 1, Row: row, Err: err}
		}
	}

	return b.g, nil
}

// builder accumulates rows into a graph.
type builder struct {
	g *waypoint.Graph
}

func newBuilder() *builder {
	return &builder{g: waypoint.NewGraph()}
}

// row parses and applies one row. Nothing is applied if the row is invalid.
func (b *builder) row(text, delim string) error {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, "#") {
		return nil
	}

	cols := strings.Split(text, delim)
	if len(cols) != 3 {
		return fmt.Errorf("%w: want 3 columns, got %d", ErrMalformedRow, len(cols))
	}

	id, err := strconv.Atoi(strings.TrimSpace(cols[0]))
	if err != nil {
		return fmt.Errorf("waypoint id: %w", err)
	}
	targets, err := parseList(cols[1], strconv.Atoi)
	if err != nil {
		return fmt.Errorf("connections: %w", err)
	}
	dists, err := parseList(cols[2], func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
	if err != nil {
		return fmt.Errorf("distances: %w", err)
	}
	if len(targets) != len(dists) {
		return fmt.Errorf("%w: %d connections, %d distances", ErrLengthMismatch, len(targets), len(dists))
	}
	seen := make(map[int]struct{}, len(targets))
	for i, t := range targets {
		if t == id {
			return fmt.Errorf("%w: %d", ErrSelfLink, id)
		}
		if _, dup := seen[t]; dup {
			return fmt.Errorf("%w: target %d listed twice", ErrMalformedRow, t)
		}
		seen[t] = struct{}{}
		if d := dists[i]; d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("%w: %d→%d distance=%v", ErrBadDistance, id, t, d)
		}
		if t < 0 {
			return fmt.Errorf("%w: %d", waypoint.ErrNegativeID, t)
		}
	}
	if id < 0 {
		return fmt.Errorf("%w: %d", waypoint.ErrNegativeID, id)
	}

	src := b.ensure(id)
	for i, t := range targets {
		src.AddConnection(b.ensure(t), dists[i])
	}

	return nil
}

// ensure returns the member with id, creating it when absent.
// IDs are validated by the caller, so AddWaypoint cannot fail here.
func (b *builder) ensure(id int) *waypoint.Node {
	if n, ok := b.g.Waypoint(id); ok {
		return n
	}
	n := waypoint.NewNode(id)
	_ = b.g.AddWaypoint(n)

	return n
}

// parseList parses "[a,b,c]" with conv; "[]" yields an empty slice.
func parseList[T any](col string, conv func(string) (T, error)) ([]T, error) {
	col = strings.TrimSpace(col)
	if len(col) < 2 || col[0] != '[' || col[len(col)-1] != ']' {
		return nil, fmt.Errorf("%w: list %q must be bracketed", ErrMalformedRow, col)
	}
	inner := strings.TrimSpace(col[1 : len(col)-1])
	if inner == "" {
		return nil, nil
	}

	parts := strings.Split(inner, ",")
	out := make([]T, 0, len(parts))
	for _, p := range parts {
		v, err := conv(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}
