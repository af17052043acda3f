package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/waypath/dijkstra"
)

func (a *app) routeCommand() *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Compute the shortest route between two waypoints",
		Example: `  waypath route -i map.txt --from 0 --to 5
  cat map.yaml | waypath route --format yaml --from 2 --to 9`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			g, err := a.loadGraph(ctx)
			if err != nil {
				return err
			}
			solver, err := dijkstra.NewSolver(g)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			r, err := solver.Route(from, to)
			if err != nil {
				return err
			}
			prog.done("Solved route")

			out := cmd.OutOrStdout()
			if !r.Found {
				printWarning(out, "waypoint %d is unreachable from %d", to, from)
				return nil
			}
			printSuccess(out, "%s", formatRoute(r.IDs))
			printDetail(out, "cost %s over %d hops", formatDistance(r.Cost), len(r.IDs)-1)
			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "start waypoint ID")
	cmd.Flags().IntVar(&to, "to", 0, "target waypoint ID")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
