package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/CodMac/go-code-explorer/analysis"
	"github.com/CodMac/go-code-explorer/output"
	"github.com/CodMac/go-code-explorer/ui"
	"github.com/spf13/cobra"
)

func analyzeCmd() *cobra.Command {
	var (
		src sourceFlags
		out string
	)
	cmd := &cobra.Command{
		Use:   "analyze [path...]",
		Short: "Analyze Java sources and summarize their classes and dependencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			name, locations, err := src.resolve(cfg, args)
			if err != nil {
				return err
			}
			g, err := analyze(cmd.Context(), cfg, locations)
			if err != nil {
				return err
			}

			if out != "" {
				n, err := writeGraph(out, g)
				if err != nil {
					return err
				}
				ui.Good.Printf("  %s Wrote %d records to %s\n", ui.StatusIcon(true), n, out)
				return nil
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n\n", ui.Brand.Sprint(name), ui.Subtle.Sprintf("(%d classes, %d dependencies)", len(g.Classes()), len(g.Dependencies())))
			var rows [][]string
			for _, c := range g.Classes() {
				if c.IsAnonymous() {
					continue
				}
				rows = append(rows, []string{
					c.Name(),
					string(c.Kind()),
					strconv.Itoa(len(c.Outgoing())),
					strconv.Itoa(len(c.Incoming())),
				})
			}
			ui.Table(w, []string{"CLASS", "KIND", "OUT", "IN"}, rows)
			return nil
		},
	}
	src.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the graph as JSONL to this file")
	return cmd
}

// writeGraph exports g as JSONL to path and returns the number of records.
func writeGraph(path string, g *analysis.Graph) (n int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return output.ExportGraph(f, g)
}
