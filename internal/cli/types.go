package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shivanshkc/dronebl/pkg/rpc"
)

// newTypesCmd creates the `types` command, which lists the listing types the
// registry knows about.
func newTypesCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:         "types",
		Short:       "Show a list of available listing types.",
		Annotations: remote(),
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := app.newRequest()
			app.addCall(cmd, req, rpc.MethodTypeList, nil)

			res, err := app.call(cmd, req)
			if err != nil {
				return err
			}

			if !res.Has(rpc.ChannelTypeList) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error: missing typelist")
				return nil
			}

			printer := app.printer(cmd)
			printer.Types(res.Channel(rpc.ChannelTypeList))
			printer.Advisories(res)
			return nil
		},
	}
}
