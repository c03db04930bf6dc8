package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shivanshkc/dronebl/pkg/config"
)

var errMissingCommand = errors.New("a command is required")

// errMissingRPCKey is returned when neither the flag nor the configuration file provides a key.
var errMissingRPCKey = errors.New("an RPC key is required: pass -r/--rpckey or save one with 'dronebl config --rpckey'")

// validateRPCKey checks that the settings carry a key.
func validateRPCKey(settings config.Config) error {
	if settings.Key() == "" {
		return &validationError{err: errMissingRPCKey}
	}
	return nil
}

// parseArgs returns a cobra.PositionalArgs that requires at least one
// positional argument and parses each of them into dst.
func parseArgs[T any](dst *[]T, what string, parse func(string) (T, error)) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			return &validationError{err: fmt.Errorf("at least one %s is required", what)}
		}

		values := make([]T, 0, len(args))
		for _, arg := range args {
			value, err := parse(arg)
			if err != nil {
				return &validationError{err: fmt.Errorf("invalid %s %q: %w", what, arg, err)}
			}
			values = append(values, value)
		}

		*dst = values
		return nil
	}
}
