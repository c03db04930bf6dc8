package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/shivanshkc/dronebl/pkg/rpc"
	"github.com/shivanshkc/dronebl/pkg/validate"
)

// newUpdateCmd creates the `update` command, which replaces the comment of
// one or more listings.
func newUpdateCmd(app *application) *cobra.Command {
	var (
		ids     []int
		comment string
	)

	cmd := &cobra.Command{
		Use:         "update <id>...",
		Short:       "Update an entry on DroneBL.",
		Annotations: remote(),
		Args:        parseArgs(&ids, "listing ID", validate.ParsePositiveInt),
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()

			req := app.newRequest()
			for _, id := range ids {
				app.addCall(cmd, req, rpc.MethodUpdate, rpc.Params{"id": strconv.Itoa(id), "comment": comment})
			}

			return app.runMutation(cmd, start, req)
		},
	}

	cmd.Flags().StringVarP(&comment, "comment", "c", "", "A comment to be applied to the specified listing(s).")
	_ = cmd.MarkFlagRequired("comment")

	return cmd
}
