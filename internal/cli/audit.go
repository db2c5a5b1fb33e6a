package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jinzhu/inflection"
	"github.com/spf13/cobra"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

func newAuditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [files...]",
		Short: "Audit the catalog and the catalog files.",
		Long: `Audit registers the catalog, the configured catalog files and the provided files within
a new registry. It reports the first duplicated tracking code, malformed code, template
or namespace and exits with non-zero status.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if err := a.load(args...); err != nil {
				fmt.Fprintf(w, "%s %v\n", failColor.Sprint("FAIL"), err)
				return err
			}

			fmt.Fprintf(w, "%s %d %s\n", okColor.Sprint("OK"), a.registry.Len(), plural(a.registry.Len(), "definition"))
			for _, p := range a.registry.Namespaces() {
				n := len(a.registry.Namespace(p))
				fmt.Fprintf(w, "  %s: %d %s\n", p.Title(), n, plural(n, "definition"))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&a.strict, "strict", false, "require the tracking codes to end with a severity letter")
	return cmd
}

func plural(count int, noun string) string {
	if count == 1 {
		return noun
	}
	return inflection.Plural(noun)
}
