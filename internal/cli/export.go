package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/neuronlabs/trackable/catalog"
	"github.com/neuronlabs/trackable/namer"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		naming string
		output string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog declarations.",
		Long: `Export the catalog declarations, the codeless error definitions included, in the toml,
yaml or json format. The exported file might be loaded back as a catalog file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := catalog.ParseFormat(format)
			if err != nil {
				return err
			}
			if err = a.load(); err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}
			return catalog.Export(w, f, naming, a.entries)
		},
	}
	cmd.Flags().StringVar(&format, "format", string(catalog.FormatYAML), "output format. Possible values: toml, yaml, json")
	cmd.Flags().StringVar(&naming, "naming", namer.Identity, "naming convention of the identifiers. Possible values: identity, snake, kebab, camel, lowercamel")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path, defaults to the standard output")
	return cmd
}
