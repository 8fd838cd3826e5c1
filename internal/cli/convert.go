package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geemus/ecto"
)

// ConvertResult is the JSON payload for cast/load/dump output.
type ConvertResult struct {
	Op    string `json:"op"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// NewCastCommand creates the cast command.
func NewCastCommand(rootOpts *RootOptions) *cobra.Command {
	return newConvertCommand(rootOpts, "cast",
		"Cast an external value to canonical form",
		`Coerce an untrusted JSON value into the canonical in-memory form
for a type, applying the engine's built-in coercion rules (text to
integer/float/boolean/decimal).`,
		modeCast, ecto.Cast)
}

// NewLoadCommand creates the load command.
func NewLoadCommand(rootOpts *RootOptions) *cobra.Command {
	return newConvertCommand(rootOpts, "load",
		"Load a storage-native value to canonical form",
		`Convert a storage-native JSON value into the canonical in-memory
form for a type. No coercion is applied: the value must already have
the native representation (calendar values as field tuples).`,
		modeNative, ecto.Load)
}

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	return newConvertCommand(rootOpts, "dump",
		"Dump a canonical value to storage-native form",
		`Convert a canonical JSON value into the storage-native form for a
type (calendar values become field tuples).`,
		modeCanonical, ecto.Dump)
}

func newConvertCommand(rootOpts *RootOptions, op, short, long string, mode valueMode, convert func(ecto.Type, any) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:           fmt.Sprintf("%s <type> <json-value>", op),
		Short:         short,
		Long:          long,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, op, mode, convert, args[0], args[1], cmd)
		},
	}
}

func runConvert(opts *RootOptions, op string, mode valueMode, convert func(ecto.Type, any) (any, error), typeArg, valueArg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	t, err := ecto.ParseType(typeArg)
	if err != nil {
		_ = formatter.Error(ErrCodeBadType, err.Error())
		return NewExitError(ExitCommandError, err.Error())
	}

	value, err := decodeValue(t, json.RawMessage(valueArg), mode)
	if err != nil {
		_ = formatter.Error(ErrCodeBadValue, err.Error())
		return NewExitError(ExitCommandError, err.Error())
	}
	formatter.VerboseLog("%s %s <- %v", op, t, value)

	result, err := convert(t, value)
	if err != nil {
		_ = formatter.Error(ErrCodeConversion, err.Error())
		return NewExitError(ExitFailure, err.Error())
	}

	rendered := renderValue(result)
	if formatter.Format == "json" {
		return formatter.Success(ConvertResult{Op: op, Type: t.String(), Value: rendered})
	}
	text, err := json.Marshal(rendered)
	if err != nil {
		return NewExitError(ExitCommandError, err.Error())
	}
	return formatter.Success(string(text))
}
