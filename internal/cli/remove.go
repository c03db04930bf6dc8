package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/shivanshkc/dronebl/pkg/rpc"
	"github.com/shivanshkc/dronebl/pkg/validate"
)

// newRemoveCmd creates the `remove` command, which delists entries by ID.
func newRemoveCmd(app *application) *cobra.Command {
	var ids []int

	return &cobra.Command{
		Use:         "remove <id>...",
		Short:       "Remove an entry from DroneBL.",
		Annotations: remote(),
		Args:        parseArgs(&ids, "listing ID", validate.ParsePositiveInt),
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()

			req := app.newRequest()
			for _, id := range ids {
				app.addCall(cmd, req, rpc.MethodRemove, rpc.Params{"id": strconv.Itoa(id)})
			}

			return app.runMutation(cmd, start, req)
		},
	}
}
