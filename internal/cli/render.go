package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neuronlabs/trackable/errdef"
	"github.com/neuronlabs/trackable/message"
	"github.com/neuronlabs/trackable/registry"
)

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render <code> [args...]",
		Short: "Render the definition with the positional arguments.",
		Long: `Render the definition registered under the tracking code with the positional arguments.
Log messages are rendered as the trackable lines, error definitions are raised and the
error message is written.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			d, err := a.registry.Lookup(registry.Code(args[0]))
			if err != nil {
				return err
			}

			values := make([]interface{}, len(args)-1)
			for i, arg := range args[1:] {
				values[i] = arg
			}

			var line string
			switch def := d.(type) {
			case *message.Definition:
				if line, err = def.Format(values...); err != nil {
					return err
				}
			case *errdef.Definition:
				raised := def.Raise(values...)
				var e *errdef.Error
				if !errors.As(raised, &e) {
					return raised
				}
				line = e.Error()
			default:
				if line, err = d.Template().Render(values...); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
}
