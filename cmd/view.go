package cmd

import (
	"fmt"
	"regexp"

	"github.com/CodMac/go-code-explorer/codemap"
	"github.com/CodMac/go-code-explorer/config"
	"github.com/spf13/cobra"
)

// viewFlags control folding and filtering of the code map.
type viewFlags struct {
	foldDepth       int
	fold            []string
	unfold          []string
	filter          string
	showAncestors   bool
	showDescendants bool
}

func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.foldDepth, "fold-depth", 0, "Fold the map below this depth (default from config)")
	cmd.Flags().StringSliceVar(&f.fold, "fold", nil, "Fold these nodes")
	cmd.Flags().StringSliceVar(&f.unfold, "unfold", nil, "Unfold these nodes")
	cmd.Flags().StringVar(&f.filter, "filter", "", "Show only nodes whose id matches this regular expression")
	cmd.Flags().BoolVar(&f.showAncestors, "show-ancestors", true, "Keep the ancestors of matching nodes")
	cmd.Flags().BoolVar(&f.showDescendants, "show-descendants", false, "Keep the descendants of matching nodes")
}

// apply folds m and returns the filter to use. Flags that were not set on
// the command line fall back to cfg.
func (f *viewFlags) apply(cmd *cobra.Command, cfg *config.Config, m *codemap.Map) (*codemap.Filter, error) {
	depth := cfg.Explorer.FoldDepth
	if cmd.Flags().Changed("fold-depth") {
		depth = f.foldDepth
	}
	m.FoldToDepth(depth)
	for _, id := range f.unfold {
		if err := m.Unfold(id); err != nil {
			return nil, err
		}
	}
	for _, id := range f.fold {
		if err := m.Fold(id); err != nil {
			return nil, err
		}
	}

	pattern, opts := cfg.Filter.Pattern, codemap.FilterOptions{
		ShowAncestors:   cfg.Filter.ShowAncestors,
		ShowDescendants: cfg.Filter.ShowDescendants,
	}
	if cmd.Flags().Changed("filter") {
		pattern = f.filter
	}
	if cmd.Flags().Changed("show-ancestors") {
		opts.ShowAncestors = f.showAncestors
	}
	if cmd.Flags().Changed("show-descendants") {
		opts.ShowDescendants = f.showDescendants
	}
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	return codemap.NewFilter(codemap.IDMatches(re), opts), nil
}
