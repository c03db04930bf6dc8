package cli

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/shivanshkc/dronebl/pkg/config"
	"github.com/shivanshkc/dronebl/pkg/present"
	"github.com/shivanshkc/dronebl/pkg/rpc"
)

// validationError marks malformed command-line input. It is always raised
// before any network activity.
type validationError struct {
	err error
}

func (e *validationError) Error() string { return e.err.Error() }
func (e *validationError) Unwrap() error { return e.err }

// reportError prints the diagnostic for an error that ended the command.
func reportError(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	label := text.FgRed.Sprint("Error:")

	var (
		serverErr *rpc.ServerError
		invalid   *validationError
		writeErr  *config.WriteError
	)

	switch {
	case errors.As(err, &serverErr):
		present.NewPrinter(w, false).ServerError(serverErr)
	case errors.As(err, &invalid):
		fmt.Fprintln(w, label, err)
		fmt.Fprintf(w, "Run '%s --help' for usage.\n", cmd.CommandPath())
	case errors.As(err, &writeErr):
		fmt.Fprintln(w, label, writeErr)
	default:
		// Transport and protocol errors, plus anything cobra raised itself.
		fmt.Fprintln(w, label, err)
	}
}
