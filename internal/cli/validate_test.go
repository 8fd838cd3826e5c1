package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func fixture(name string) string {
	return filepath.Join("testdata", name)
}

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestValidateValidDocument(t *testing.T) {
	out, err := execute(t, "validate", fixture("schema.yaml"), fixture("valid.json"))
	require.NoError(t, err)
	assert.Equal(t, "✓ document valid\n", out)
}

func TestValidateValidDocumentJSONGolden(t *testing.T) {
	out, err := execute(t, "--format", "json", "validate", fixture("schema.yaml"), fixture("valid.json"))
	require.NoError(t, err)
	newGoldie(t).Assert(t, "validate_valid_json", []byte(out))
}

func TestValidateInvalidDocumentGolden(t *testing.T) {
	out, err := execute(t, "validate", fixture("schema.yaml"), fixture("invalid.json"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	newGoldie(t).Assert(t, "validate_invalid", []byte(out))
}

func TestValidateInvalidDocumentJSONGolden(t *testing.T) {
	out, err := execute(t, "--format", "json", "validate", fixture("schema.yaml"), fixture("invalid.json"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	newGoldie(t).Assert(t, "validate_invalid_json", []byte(out))
}

func TestValidateMissingSchemaFile(t *testing.T) {
	out, err := execute(t, "validate", fixture("nope.yaml"), fixture("valid.json"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E104]")
}

func TestValidateUnknownTypeInSchema(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.yaml")
	docPath := filepath.Join(dir, "doc.json")
	writeFile(t, schemaPath, "fields:\n  x: intger\n")
	writeFile(t, docPath, `{"x": 1}`)

	out, err := execute(t, "validate", schemaPath, docPath)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "E201")
}

func TestValidateMissingRequiredField(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.yaml")
	docPath := filepath.Join(dir, "doc.json")
	writeFile(t, schemaPath, "fields:\n  name: string\nrequired:\n  - name\n")
	writeFile(t, docPath, `{}`)

	out, err := execute(t, "validate", schemaPath, docPath)
	require.Error(t, err)
	assert.Contains(t, out, "name: E203 required field is blank")
}
