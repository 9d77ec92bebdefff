package cmd

import (
	"errors"
	"fmt"

	"github.com/CodMac/go-code-explorer/codemap"
	"github.com/CodMac/go-code-explorer/output"
	"github.com/CodMac/go-code-explorer/selection"
	"github.com/CodMac/go-code-explorer/ui"
	"github.com/spf13/cobra"
)

func depsCmd() *cobra.Command {
	var (
		src     sourceFlags
		view    viewFlags
		selects []string
		outside bool
		inside  bool
		format  string
	)
	cmd := &cobra.Command{
		Use:   "deps [path...]",
		Short: "Show the dependencies of the selected map nodes between visible nodes",
		Example: "  code-explorer deps ./src --select org.acme.core --fold-depth 3\n" +
			"  code-explorer deps -c acme --select org.acme.api --select org.acme.core --inside",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outside && inside {
				return errors.New("--outside and --inside are mutually exclusive")
			}
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

			m := codemap.Build(g, name)
			filter, err := view.apply(cmd, cfg, m)
			if err != nil {
				return err
			}
			if len(selects) == 0 {
				selects = []string{m.Root().ID()}
			}
			sel, err := codemap.NewSelection(m, filter, selects...)
			if err != nil {
				return err
			}

			showOutside := cfg.Explorer.ShowOutsideDependencies
			switch {
			case outside:
				showOutside = true
			case inside:
				showOutside = false
			}
			edges := output.Project(selection.New(sel, showOutside), m)

			w := cmd.OutOrStdout()
			switch format {
			case "jsonl":
				_, err = output.ExportProjection(w, edges)
				return err
			case "mermaid":
				return output.ExportMermaid(w, m, sel, edges)
			case "html":
				return output.ExportMermaidHTML(w, m, sel, edges)
			case "table":
				if len(edges) == 0 {
					ui.Subtle.Fprintln(w, "  no dependencies between visible nodes")
					return nil
				}
				rows := make([][]string, 0, len(edges))
				for _, e := range edges {
					rows = append(rows, []string{
						ui.Marker(e.Selected),
						e.VisibleOrigin,
						e.VisibleTarget,
						string(e.Type),
						e.Origin + " -> " + e.Target,
					})
				}
				ui.Table(w, []string{"", "FROM", "TO", "TYPE", "DEPENDENCY"}, rows)
				return nil
			default:
				return fmt.Errorf("unknown format %q (want table, jsonl, mermaid or html)", format)
			}
		},
	}
	src.register(cmd)
	view.register(cmd)
	cmd.Flags().StringSliceVarP(&selects, "select", "s", nil, "Select these nodes (default: the root)")
	cmd.Flags().BoolVar(&outside, "outside", false, "Include dependencies leaving the selection")
	cmd.Flags().BoolVar(&inside, "inside", false, "Only dependencies between different selected nodes")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, jsonl, mermaid or html")
	return cmd
}
