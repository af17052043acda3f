package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/waypath/dijkstra"
	"github.com/katalvlaran/waypath/graphio"
)

func (a *app) renderCommand() *cobra.Command {
	var (
		output   string
		from, to int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a graph to SVG, optionally highlighting a route",
		Example: `  waypath render -i map.txt -o map.svg
  waypath render -i map.txt -o route.svg --from 0 --to 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			g, err := a.loadGraph(ctx)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				a.cfg.Render.Output = output
			}

			var route []int
			wantRoute := cmd.Flags().Changed("from") && cmd.Flags().Changed("to")
			if wantRoute && a.cfg.Render.Highlight {
				solver, err := dijkstra.NewSolver(g)
				if err != nil {
					return err
				}
				r, err := solver.Route(from, to)
				if err != nil {
					return err
				}
				if r.Found {
					route = r.IDs
				} else {
					printWarning(cmd.OutOrStdout(), "waypoint %d is unreachable from %d; rendering without route", to, from)
				}
			}

			prog := newProgress(logger)
			svg, err := graphio.RenderSVG(ctx, graphio.ToDOT(g, route))
			if err != nil {
				return err
			}
			if err := os.WriteFile(a.cfg.Render.Output, svg, 0o644); err != nil {
				return fmt.Errorf("write svg: %w", err)
			}
			prog.done("Rendered SVG")

			printSuccess(cmd.OutOrStdout(), "wrote %s", a.cfg.Render.Output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "SVG output path (overrides config)")
	cmd.Flags().IntVar(&from, "from", 0, "route start waypoint ID")
	cmd.Flags().IntVar(&to, "to", 0, "route target waypoint ID")
	return cmd
}
