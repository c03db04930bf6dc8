package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/shivanshkc/dronebl/pkg/rpc"
	"github.com/shivanshkc/dronebl/pkg/validate"
)

// newAddCmd creates the `add` command. The type, port and comment apply to
// every address given.
func newAddCmd(app *application) *cobra.Command {
	var (
		addresses   []validate.Address
		listingType = newIntValue("{1-255}", validate.ParseListingType)
		port        = newIntValue("{1-65535}", validate.ParsePort)
		comment     string
	)

	cmd := &cobra.Command{
		Use:         "add <ip|cidr>...",
		Short:       "Add an entry to DroneBL.",
		Annotations: remote(),
		Long: `Add an entry to DroneBL.
Note: type, port and comment options apply to all IP addresses supplied.`,
		Args: parseArgs(&addresses, "IP address", validate.ParseIPOrCIDR),
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()

			shared := rpc.Params{"type": strconv.Itoa(listingType.value)}
			if cmd.Flags().Changed("port") {
				shared["port"] = strconv.Itoa(port.value)
			}
			if cmd.Flags().Changed("comment") {
				shared["comment"] = comment
			}

			req := app.newRequest()
			for _, address := range addresses {
				params := shared.Clone()
				params["ip"] = address.String()
				app.addCall(cmd, req, rpc.MethodAdd, params)
			}

			return app.runMutation(cmd, start, req)
		},
	}

	cmd.Flags().VarP(listingType, "type", "t", "Listing type for the IPs being added.")
	cmd.Flags().VarP(port, "port", "p", "The port associated with the new listing, if applicable.")
	cmd.Flags().StringVarP(&comment, "comment", "c", "", "A comment to be associated with the new listing.")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
