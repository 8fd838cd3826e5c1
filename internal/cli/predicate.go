package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geemus/ecto"
)

// PredicateResult is the JSON payload for match/blank output.
type PredicateResult struct {
	Op     string `json:"op"`
	Result bool   `json:"result"`
}

// NewMatchCommand creates the match command.
func NewMatchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "match <type> <primitive-type>",
		Short: "Check whether a type fits an expected primitive type",
		Long: `Check the compatibility relation between a declared type and an
expected primitive type. "any" on either side matches everything.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:    rootOpts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   rootOpts.Verbose,
			}
			t, err := ecto.ParseType(args[0])
			if err != nil {
				_ = formatter.Error(ErrCodeBadType, err.Error())
				return NewExitError(ExitCommandError, err.Error())
			}
			primitive, err := ecto.ParseType(args[1])
			if err != nil {
				_ = formatter.Error(ErrCodeBadType, err.Error())
				return NewExitError(ExitCommandError, err.Error())
			}
			return outputVerdict(formatter, "match", ecto.Match(t, primitive))
		},
	}
}

// NewBlankCommand creates the blank command.
func NewBlankCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "blank <type> <json-value>",
		Short: "Check whether a canonical value counts as empty",
		Long: `Check domain-level blankness of a canonical value: null is always
blank, text is blank when leading whitespace strips to nothing, and
an array is blank when the sequence is empty.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:    rootOpts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   rootOpts.Verbose,
			}
			t, err := ecto.ParseType(args[0])
			if err != nil {
				_ = formatter.Error(ErrCodeBadType, err.Error())
				return NewExitError(ExitCommandError, err.Error())
			}
			value, err := decodeValue(t, json.RawMessage(args[1]), modeCanonical)
			if err != nil {
				_ = formatter.Error(ErrCodeBadValue, err.Error())
				return NewExitError(ExitCommandError, err.Error())
			}
			return outputVerdict(formatter, "blank", ecto.IsBlank(t, value))
		},
	}
}

func outputVerdict(formatter *OutputFormatter, op string, verdict bool) error {
	if formatter.Format == "json" {
		return formatter.Success(PredicateResult{Op: op, Result: verdict})
	}
	return formatter.Success(fmt.Sprintf("%t", verdict))
}
