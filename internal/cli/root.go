// Package cli contains all the command-line interface logic for the application,
// powered by the cobra library. It defines the root command, subcommands,
// and their respective flags.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/shivanshkc/dronebl/pkg/config"
	"github.com/shivanshkc/dronebl/pkg/present"
	"github.com/shivanshkc/dronebl/pkg/rpc"
	"github.com/shivanshkc/dronebl/pkg/utils/miscutils"
)

// remoteAnnotation marks commands that send a request to the registry.
const remoteAnnotation = "remote"

// remote is the annotation set of commands that talk to the registry.
func remote() map[string]string {
	return map[string]string{remoteAnnotation: "true"}
}

// application carries everything a command needs for one invocation: the
// values of the global flags and the settings loaded from disk.
type application struct {
	endpoint string

	// Global flags.
	configPath string
	rpcKey     string
	staging    bool
	showXML    bool
	noColor    bool

	// settings are the loaded settings with this invocation's overrides applied.
	settings config.Config
}

func newApplication() *application {
	return &application{endpoint: rpc.DefaultEndpoint}
}

// Execute is the primary entry point for the CLI application, called by main.go.
//
// The root context is canceled on Ctrl+C or SIGTERM, which aborts an
// in-flight request.
func Execute() error {
	// Create a root context that can be canceled.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Listen for interruption signals and unregister on exit.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	// Cancel the context upon receiving a signal.
	go func() {
		<-signals
		cancel()
	}()

	// Execute the command tree with the cancellable context.
	return execute(ctx, newRootCmd(newApplication()))
}

// execute runs the command tree and reports any error it ends with.
func execute(ctx context.Context, rootCmd *cobra.Command) error {
	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err != nil {
		reportError(cmd, err)
	}
	return err
}

// newRootCmd builds the command tree around the given application.
func newRootCmd(app *application) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dronebl",
		Short: "Query and maintain DroneBL listings over RPC2.",
		Long: `Query and maintain DroneBL listings over RPC2.
Look up, add, remove and update blocklist entries, list the available listing
types and manage the local configuration.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: app.prepare,
		// A subcommand is required.
		RunE: func(_ *cobra.Command, _ []string) error {
			return &validationError{err: errMissingCommand}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&app.rpcKey, "rpckey", "r", "",
		"RPC key to use (overrides the configuration file).")
	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "",
		"Configuration file to use (default ~/"+config.DefaultFileName+").")
	rootCmd.PersistentFlags().BoolVar(&app.staging, "staging", false,
		"Do not modify DroneBL, only stage requests.")
	rootCmd.PersistentFlags().BoolVar(&app.noColor, "no-color", false,
		"Disable coloured output.")
	rootCmd.PersistentFlags().BoolVar(&app.showXML, "show-xml", false,
		"Print the raw request and response documents.")
	_ = rootCmd.PersistentFlags().MarkHidden("show-xml")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &validationError{err: err}
	})

	rootCmd.AddCommand(
		newTypesCmd(app),
		newQueryCmd(app),
		newAddCmd(app),
		newRemoveCmd(app),
		newUpdateCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}

// prepare loads the settings and applies the global flag overrides. The
// overrides live for this invocation only; only the config command persists.
func (a *application) prepare(cmd *cobra.Command, _ []string) error {
	if a.noColor || os.Getenv("NO_COLOR") != "" {
		text.DisableColors()
	}

	if a.configPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}
		a.configPath = path
	}
	a.settings = config.Load(a.configPath)

	// Commands that never reach the registry need no key.
	if _, ok := cmd.Annotations[remoteAnnotation]; !ok {
		return nil
	}

	if a.rpcKey != "" {
		a.settings.SetKey(a.rpcKey)
	}
	if a.staging {
		a.settings.Staging = true
	}

	return validateRPCKey(a.settings)
}

// newRequest starts a request carrying the active key and mode flags.
func (a *application) newRequest() *rpc.Request {
	return rpc.NewRequest(a.settings.Key(), a.settings.Staging, a.settings.Debug)
}

// addCall adds a method call to the request. A call that cannot be added is
// reported and skipped; the rest of the request still goes out.
func (a *application) addCall(cmd *cobra.Command, req *rpc.Request, method string, params rpc.Params) {
	if err := req.Add(method, params); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error adding request method:", err)
	}
}

// call performs the single round trip of the invocation.
func (a *application) call(cmd *cobra.Command, req *rpc.Request) (*rpc.Response, error) {
	client := rpc.NewClient(a.endpoint)
	if a.showXML {
		client.Dump = cmd.OutOrStdout()
	}
	return client.Call(cmd.Context(), req)
}

func (a *application) printer(cmd *cobra.Command) *present.Printer {
	return present.NewPrinter(cmd.OutOrStdout(), a.settings.Debug)
}

// runMutation sends an add, remove or update request and prints its outcome.
func (a *application) runMutation(cmd *cobra.Command, start time.Time, req *rpc.Request) error {
	res, err := a.call(cmd, req)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	printer := a.printer(cmd)
	printer.Successes(res.Channel(rpc.ChannelSuccess))
	printer.Advisories(res)

	fmt.Fprintf(cmd.OutOrStdout(), "Completed in %s\n", miscutils.FormatDuration(elapsed))
	return nil
}
