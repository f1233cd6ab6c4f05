package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"sigs.k8s.io/yaml"

	oerrors "github.com/stackgen/cli/internal/errors"
)

//go:embed schema/project.cue
var projectSchemaCUE []byte

// ValidationError represents a project file validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("project validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s\n", err.Error()))
	}
	return sb.String()
}

// Unwrap classifies every collection as a validation failure.
func (e ValidationErrors) Unwrap() error {
	return oerrors.ErrValidation
}

// Validator checks project files against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new project file validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(projectSchemaCUE, cue.Filename("project.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	def := schema.LookupPath(cue.ParsePath("#Project"))
	if !def.Exists() {
		return nil, fmt.Errorf("schema has no #Project definition")
	}

	return &Validator{
		ctx:    ctx,
		schema: def,
	}, nil
}

// Vet validates YAML project file content.
func (v *Validator) Vet(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return ValidationErrors{{Message: fmt.Sprintf("invalid YAML: %v", err)}}
	}

	val := v.ctx.CompileBytes(jsonData, cue.Filename("stackgen.json"))
	if val.Err() != nil {
		return ValidationErrors{{Message: val.Err().Error()}}
	}
	if val.IncompleteKind() != cue.StructKind {
		return ValidationErrors{{Message: "project file must be a mapping"}}
	}

	err = v.schema.Unify(val).Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}
	return collect(err)
}

// VetFile validates the project file at path.
func (v *Validator) VetFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return oerrors.NewNotFoundError("project file not found", path,
				"Run 'stackgen project init' to create one.")
		}
		return oerrors.WrapPath(oerrors.ErrFilesystem, path, err)
	}
	return v.Vet(data)
}

// collect flattens CUE errors into field-level errors, dropping duplicates.
func collect(err error) ValidationErrors {
	var errs ValidationErrors
	seen := map[string]bool{}
	for _, e := range cueerrors.Errors(err) {
		path := e.Path()
		if len(path) > 0 && path[0] == "#Project" {
			path = path[1:]
		}
		format, args := e.Msg()
		ve := ValidationError{
			Field:   strings.Join(path, "."),
			Message: fmt.Sprintf(format, args...),
		}
		if key := ve.Error(); !seen[key] {
			seen[key] = true
			errs = append(errs, ve)
		}
	}
	return errs
}
