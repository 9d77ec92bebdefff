package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/CodMac/go-code-explorer/codemap"
	"github.com/CodMac/go-code-explorer/ui"
	"github.com/spf13/cobra"
)

func mapCmd() *cobra.Command {
	var (
		src  sourceFlags
		view viewFlags
	)
	cmd := &cobra.Command{
		Use:   "map [path...]",
		Short: "Print the visible part of the code map",
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

			m := codemap.Build(g, name)
			filter, err := view.apply(cmd, cfg, m)
			if err != nil {
				return err
			}
			sel, err := codemap.NewSelection(m, filter, m.Root().ID())
			if err != nil {
				return err
			}
			printTree(cmd.OutOrStdout(), sel)
			return nil
		},
	}
	src.register(cmd)
	view.register(cmd)
	return cmd
}

func printTree(w io.Writer, sel *codemap.Selection) {
	sel.Map().Walk(func(n *codemap.Node) bool {
		if !sel.IsVisible(n) {
			return false
		}
		indent := strings.Repeat("  ", n.Depth())
		switch {
		case n.IsRoot():
			fmt.Fprintln(w, ui.Brand.Sprint(n.Text()))
		case n.IsFolded():
			fmt.Fprintf(w, "%s%s %s\n", indent, n.Text(), ui.Subtle.Sprintf("[+] %s", n.ID()))
		case n.Kind() == codemap.ClassNode:
			fmt.Fprintf(w, "%s%s\n", indent, n.Text())
		default:
			fmt.Fprintf(w, "%s%s %s\n", indent, ui.Info.Sprint(n.Text()), ui.Subtle.Sprint(n.ID()))
		}
		return true
	})
}
