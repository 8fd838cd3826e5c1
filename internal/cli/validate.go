package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/geemus/ecto"
)

// Schema is the YAML shape for the validate command: field names
// mapped to textual type descriptors, plus an optional list of fields
// that must not be blank.
type Schema struct {
	Fields   map[string]string `yaml:"fields"`
	Required []string          `yaml:"required"`
}

// FieldError reports a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <schema.yaml> <document.json>",
		Short: "Validate a JSON document against a field schema",
		Long: `Validate a JSON document against a YAML schema mapping field names
to type descriptors. Each field is cast by its declared type; fields
listed under "required" must additionally not be blank after casting.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], args[1], cmd)
		},
	}
}

func runValidate(opts *RootOptions, schemaPath, docPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	schema, err := loadSchema(schemaPath)
	if err != nil {
		_ = formatter.Error(ErrCodeBadSchema, err.Error())
		return NewExitError(ExitCommandError, err.Error())
	}
	doc, err := loadDocument(docPath)
	if err != nil {
		_ = formatter.Error(ErrCodeBadSchema, err.Error())
		return NewExitError(ExitCommandError, err.Error())
	}
	formatter.VerboseLog("Validating %d field(s) against %s", len(doc), schemaPath)

	fieldErrors := validateDocument(schema, doc)
	if len(fieldErrors) > 0 {
		return outputValidationErrors(formatter, fieldErrors)
	}
	return outputValidateSuccess(formatter)
}

func loadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	var schema Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	if len(schema.Fields) == 0 {
		return nil, fmt.Errorf("schema %s declares no fields", path)
	}
	return &schema, nil
}

func loadDocument(path string) (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return doc, nil
}

// validateDocument casts every declared field and blank-checks the
// required ones. Errors are sorted by field name so output is stable.
func validateDocument(schema *Schema, doc map[string]json.RawMessage) []FieldError {
	required := make(map[string]bool, len(schema.Required))
	for _, field := range schema.Required {
		required[field] = true
	}

	var errs []FieldError
	for field, typeName := range schema.Fields {
		t, err := ecto.ParseType(typeName)
		if err != nil {
			errs = append(errs, FieldError{Field: field, Code: ErrCodeUnknownType, Message: err.Error()})
			continue
		}

		raw, present := doc[field]
		var canonical any
		if present {
			value, err := decodeValue(t, raw, modeCast)
			if err != nil {
				errs = append(errs, FieldError{Field: field, Code: ErrCodeCastFailed, Message: fmt.Sprintf("cannot cast to %s", t)})
				continue
			}
			canonical, err = ecto.Cast(t, value)
			if err != nil {
				errs = append(errs, FieldError{Field: field, Code: ErrCodeCastFailed, Message: fmt.Sprintf("cannot cast to %s", t)})
				continue
			}
		}

		if required[field] && ecto.IsBlank(t, canonical) {
			errs = append(errs, FieldError{Field: field, Code: ErrCodeBlankField, Message: "required field is blank"})
		}
	}

	for field := range doc {
		if _, declared := schema.Fields[field]; !declared {
			errs = append(errs, FieldError{Field: field, Code: ErrCodeUnknownKey, Message: "field not in schema"})
		}
	}

	sort.Slice(errs, func(i, j int) bool {
		if errs[i].Field != errs[j].Field {
			return errs[i].Field < errs[j].Field
		}
		return errs[i].Code < errs[j].Code
	})
	return errs
}

func outputValidateSuccess(formatter *OutputFormatter) error {
	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true})
	}
	fmt.Fprintln(formatter.Writer, "✓ document valid")
	return nil
}

func outputValidationErrors(formatter *OutputFormatter, errs []FieldError) error {
	if formatter.Format == "json" {
		response := Response{
			Status: "error",
			Data:   ValidationResult{Valid: false, Errors: errs},
			Error:  &ResponseError{Code: errs[0].Code, Message: errs[0].Message},
		}
		if err := formatter.encode(response); err != nil {
			return err
		}
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}

	fmt.Fprintln(formatter.Writer, "✗ validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, err := range errs {
		fmt.Fprintf(formatter.Writer, "  %s: %s %s\n", err.Field, err.Code, err.Message)
	}
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}
