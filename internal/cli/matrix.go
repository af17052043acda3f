package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) matrixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Print the adjacency matrix of a graph",
		Long:  `Print the dense adjacency matrix, one row per waypoint ID from 0 to the largest ID. A dot marks "no link".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}

			m := g.AdjacencyMatrix()
			out := cmd.OutOrStdout()
			if m.Size() == 0 {
				printWarning(out, "graph is empty")
				return nil
			}

			width := cellWidth(m)
			var header strings.Builder
			header.WriteString(strings.Repeat(" ", width))
			for j := 0; j < m.Size(); j++ {
				header.WriteString(" " + pad(strconv.Itoa(j), width))
			}
			fmt.Fprintln(out, styleTitle.Render(header.String()))

			for i, row := range m {
				var line strings.Builder
				line.WriteString(styleTitle.Render(pad(strconv.Itoa(i), width)))
				for _, d := range row {
					cell := "."
					if d != 0 {
						cell = formatDistance(d)
					}
					line.WriteString(" " + pad(cell, width))
				}
				fmt.Fprintln(out, line.String())
			}
			return nil
		},
	}
}

// cellWidth is the widest rendered cell or index.
func cellWidth(m [][]float64) int {
	width := len(strconv.Itoa(len(m) - 1))
	for _, row := range m {
		for _, d := range row {
			if w := len(formatDistance(d)); w > width {
				width = w
			}
		}
	}
	return width
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
