// Package cli implements the trackable command line tool used to enumerate, render,
// export and audit the catalog declarations.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/neuronlabs/trackable/catalog"
	"github.com/neuronlabs/trackable/config"
	"github.com/neuronlabs/trackable/log"
	"github.com/neuronlabs/trackable/registry"
)

type app struct {
	configPath string
	files      []string
	noColor    bool
	strict     bool

	cfg      *config.Config
	registry *registry.Registry
	entries  []catalog.Entry
}

// NewRootCmd creates the trackable root command with all its sub commands.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "trackable",
		Short: "Trackable message catalog tool.",
		Long: `It lists, renders, exports and audits the trackable log messages and error definitions
declared in the catalog and the additional catalog files.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.noColor {
				color.NoColor = true
			}
			return a.readConfig()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to the config file")
	rootCmd.PersistentFlags().StringSliceVarP(&a.files, "file", "f", []string{}, "additional catalog files")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable the colored output")

	rootCmd.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newRenderCmd(a),
		newExportCmd(a),
		newAuditCmd(a),
	)
	return rootCmd
}

// Execute executes the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) readConfig() error {
	var err error
	if a.configPath == "" {
		a.cfg, err = config.ReadDefaultConfig()
	} else {
		a.cfg, err = config.ReadConfigFile(a.configPath)
	}
	if err != nil {
		return err
	}
	log.Default()
	return a.cfg.Log.SetLevel()
}

// load registers the catalog and the catalog files within a new registry.
func (a *app) load(extra ...string) error {
	r := registry.New()
	r.SetStrictSeverity(a.cfg.Registry.StrictSeverity || a.strict)
	if err := catalog.Register(r); err != nil {
		return err
	}
	entries := catalog.Entries()

	var files []string
	files = append(files, a.cfg.Catalog.Files...)
	files = append(files, a.files...)
	files = append(files, extra...)
	for _, path := range files {
		definitions, err := catalog.LoadFile(r, path)
		if err != nil {
			return fmt.Errorf("catalog file: '%s': %w", path, err)
		}
		for _, d := range definitions {
			entries = append(entries, catalog.EntryOf(d))
		}
	}
	r.Seal()

	a.registry = r
	a.entries = entries
	return nil
}
