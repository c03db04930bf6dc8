package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shivanshkc/dronebl/pkg/config"
)

// newConfigCmd creates the `config` command. Without flags it prints the
// current settings; with any flag it updates and saves them.
func newConfigCmd(app *application) *cobra.Command {
	var (
		rpcKey  string
		staging = newChoiceValue("yes", "no")
		debug   = newChoiceValue("yes", "no")
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Display or modify local configuration.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			flags := cmd.Flags()

			if !flags.Changed("rpckey") && !flags.Changed("staging") && !flags.Changed("debug") {
				printConfig(out, app.settings)
				return nil
			}

			if value, ok := staging.yesNo(); ok {
				app.settings.Staging = value
			}
			if value, ok := debug.yesNo(); ok {
				app.settings.Debug = value
			}
			if flags.Changed("rpckey") {
				app.settings.SetKey(rpcKey)
			}

			if err := config.Save(app.configPath, app.settings); err != nil {
				return err
			}

			fmt.Fprintln(out, "Configuration updated")
			return nil
		},
	}

	cmd.Flags().StringVarP(&rpcKey, "rpckey", "r", "", "RPC key to save to the configuration.")
	cmd.Flags().VarP(staging, "staging", "s", "Enable or disable staging.")
	cmd.Flags().VarP(debug, "debug", "d", "Enable or disable debug output.")
	_ = cmd.Flags().MarkHidden("debug")

	return cmd
}

func printConfig(w io.Writer, settings config.Config) {
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w)

	if key := settings.Key(); key != "" {
		fmt.Fprintf(w, "RPC Key: %s\n", key)
	} else {
		fmt.Fprintln(w, "RPC Key: not set")
	}

	if settings.Staging {
		fmt.Fprintln(w, "Staging: Yes")
	} else {
		fmt.Fprintln(w, "Staging: No")
	}

	if settings.Debug {
		fmt.Fprintln(w, "Debug: Yes")
	}
}
