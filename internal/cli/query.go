package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/shivanshkc/dronebl/pkg/rpc"
	"github.com/shivanshkc/dronebl/pkg/utils/miscutils"
	"github.com/shivanshkc/dronebl/pkg/validate"
)

// queryOptions holds the flags of the query command.
type queryOptions struct {
	targets []validate.Identifier

	own         bool
	listed      *intValue
	listingType *intValue
	limit       *intValue
	start, stop int64
}

// params returns the optional attributes shared by every lookup call.
func (o *queryOptions) params(cmd *cobra.Command) rpc.Params {
	params := rpc.Params{}
	flags := cmd.Flags()

	if o.own {
		params["own"] = "1"
	}
	if flags.Changed("limit") {
		params["limit"] = strconv.Itoa(o.limit.value)
	}
	if flags.Changed("listed") {
		params["listed"] = strconv.Itoa(o.listed.value)
	}
	if flags.Changed("type") {
		params["type"] = strconv.Itoa(o.listingType.value)
	}
	if flags.Changed("start") {
		params["start"] = strconv.FormatInt(o.start, 10)
	}
	if flags.Changed("stop") {
		params["stop"] = strconv.FormatInt(o.stop, 10)
	}
	return params
}

// newQueryCmd creates the `query` command, which looks up listings by ID,
// address or network.
func newQueryCmd(app *application) *cobra.Command {
	opts := &queryOptions{
		listed:      newIntValue("{0,1,2}", validate.ParseListed),
		listingType: newIntValue("{1-255}", validate.ParseListingType),
		limit:       newIntValue("{1-255}", validate.ParseQueryLimit),
	}

	cmd := &cobra.Command{
		Use:         "query <id|ip|cidr>...",
		Short:       "Query DroneBL for entries.",
		Annotations: remote(),
		Args:        parseArgs(&opts.targets, "ID or IP address", validate.ParseIdentifier),
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()

			req := app.newRequest()
			shared := opts.params(cmd)
			for _, target := range opts.targets {
				params := shared.Clone()
				if target.IsID() {
					params["id"] = target.String()
				} else {
					params["ip"] = target.String()
				}
				app.addCall(cmd, req, rpc.MethodLookup, params)
			}

			res, err := app.call(cmd, req)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			printer := app.printer(cmd)
			count := 0
			if res.Has(rpc.ChannelResult) {
				count = printer.Results(res.Channel(rpc.ChannelResult))
			}
			printer.Advisories(res)

			fmt.Fprintf(cmd.OutOrStdout(), "%d results found in %s\n", count, miscutils.FormatDuration(elapsed))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.own, "own", "o", false,
		"Only show records owned by the RPC key used.")
	cmd.Flags().VarP(opts.listed, "listed", "l",
		"Show only records with listed being 0 (not active) or 1 (active).")
	cmd.Flags().VarP(opts.listingType, "type", "t",
		"Show only results with the specified type.")
	cmd.Flags().Int64VarP(&opts.start, "start", "s", 0,
		"A unix timestamp specifying the start offset of results to show.")
	cmd.Flags().Int64VarP(&opts.stop, "stop", "e", 0,
		"A unix timestamp specifying the ending offset of results to show.")
	cmd.Flags().VarP(opts.limit, "limit", "n",
		"Limit the number of records to the specified number.")

	return cmd
}
