package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/waypath/graphio"
	"github.com/katalvlaran/waypath/table"
)

func (a *app) convertCommand() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Re-encode a graph as table, yaml or dot",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch parseFormat(to) {
			case "table":
				return table.Write(out, g, table.WithDelimiter(a.cfg.Delimiter))
			case "yaml":
				return graphio.EncodeYAML(out, g)
			case "dot":
				_, err := io.WriteString(out, graphio.ToDOT(g, nil))
				return err
			default:
				return fmt.Errorf("unknown output format %q (want table, yaml or dot)", to)
			}
		},
	}

	cmd.Flags().StringVar(&to, "to", "yaml", "output format: table, yaml or dot")
	return cmd
}
