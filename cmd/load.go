package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/CodMac/go-code-explorer/analysis"
	"github.com/CodMac/go-code-explorer/config"
	"github.com/CodMac/go-code-explorer/model"
	"github.com/CodMac/go-code-explorer/noisefilter"
	"github.com/CodMac/go-code-explorer/processor"
	"github.com/CodMac/go-code-explorer/ui"
	"github.com/spf13/cobra"

	_ "github.com/CodMac/go-code-explorer/x/java"
)

// sourceFlags select what gets analyzed: explicit paths or a named
// configuration.
type sourceFlags struct {
	configuration string
	project       string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configuration, "configuration", "c", "", "Analyze the locations of a saved configuration")
	cmd.Flags().StringVar(&f.project, "project", "", "Project name shown as the map root (default: first path)")
}

// resolve returns the project name and source locations.
func (f *sourceFlags) resolve(cfg *config.Config, args []string) (string, []string, error) {
	if f.configuration != "" {
		ec, err := cfg.Configuration(f.configuration)
		if err != nil {
			return "", nil, err
		}
		if len(ec.Locations) == 0 {
			return "", nil, fmt.Errorf("configuration %q has no locations", ec.ProjectName)
		}
		return ec.ProjectName, ec.Locations, nil
	}

	locations := args
	if len(locations) == 0 {
		locations = []string{"."}
	}
	name := f.project
	if name == "" {
		abs, err := filepath.Abs(locations[0])
		if err != nil {
			return "", nil, err
		}
		name = filepath.Base(abs)
	}
	return name, locations, nil
}

// analyze runs the Java analysis over locations and builds the class graph.
func analyze(ctx context.Context, cfg *config.Config, locations []string) (*analysis.Graph, error) {
	files, err := processor.DiscoverAll(locations, model.LangJava)
	if err != nil {
		return nil, err
	}

	proc := processor.NewFileProcessor(model.LangJava, cfg.Explorer.Workers)
	res, err := proc.ProcessFiles(ctx, files)
	if err != nil {
		return nil, err
	}
	if len(res.Skipped) > 0 {
		ui.Warn.Printf("  skipped %d file(s) that could not be parsed\n", len(res.Skipped))
	}

	return analysis.FromContext(res.Context, res.Relations, noisefilter.GetNoiseFilter(model.LangJava)), nil
}
