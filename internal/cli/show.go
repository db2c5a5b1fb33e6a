package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neuronlabs/trackable/catalog"
	"github.com/neuronlabs/trackable/registry"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <code>",
		Short: "Show the definition registered under the tracking code.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			d, err := a.registry.Lookup(registry.Code(args[0]))
			if err != nil {
				return err
			}

			slots := d.Template().Slots()
			names := make([]string, len(slots))
			for i, slot := range slots {
				names[i] = slot.String()
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Code:      %s\n", d.Code())
			fmt.Fprintf(w, "Kind:      %s\n", catalog.EntryOf(d).Kind)
			fmt.Fprintf(w, "Name:      %s\n", d.Name())
			fmt.Fprintf(w, "Namespace: %s\n", d.Namespace().Title())
			fmt.Fprintf(w, "Severity:  %s\n", colorSeverity(d.Code().Severity()))
			fmt.Fprintf(w, "Template:  %s\n", d.Template().Raw())
			fmt.Fprintf(w, "Arity:     %d\n", d.Template().Arity())
			if len(names) > 0 {
				fmt.Fprintf(w, "Slots:     %s\n", strings.Join(names, " "))
			}
			return nil
		},
	}
}
