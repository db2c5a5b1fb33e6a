package cli

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/neuronlabs/trackable/namespace"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [namespace]",
		Short: "List the registered definitions.",
		Long:  `List the registered definitions grouped under the namespace and its subnamespaces in the registration order.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			p := namespace.Root
			if len(args) == 1 {
				var err error
				if p, err = namespace.Parse(args[0]); err != nil {
					return err
				}
			}

			definitions := a.registry.Subtree(p)
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Code", "Severity", "Namespace", "Name", "Template")
			for _, d := range definitions {
				table.Append(
					string(d.Code()),
					colorSeverity(d.Code().Severity()),
					d.Namespace().String(),
					d.Name(),
					d.Template().Raw(),
				)
			}
			table.Render()

			fmt.Fprintln(cmd.OutOrStdout(), summary(len(definitions), "definition", p))
			return nil
		},
	}
}

// summary creates the line: '23 definitions in Log Messages'.
func summary(count int, noun string, p namespace.Path) string {
	where := "all namespaces"
	if p != namespace.Root {
		where = p.Title()
	}
	return fmt.Sprintf("%d %s in %s", count, plural(count, noun), where)
}
