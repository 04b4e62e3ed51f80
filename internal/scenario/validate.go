package scenario

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaCUE string

// ValidationError is one schema violation in a scenario file.
type ValidationError struct {
	File    string `json:"file"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
}

func (e ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %s", e.File, e.Line, e.Path, e.Message)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.File, e.Path, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

// ValidateFile checks a scenario YAML file against the embedded CUE
// schema. It returns all violations, with file positions where CUE can
// attribute them, rather than stopping at the first.
func ValidateFile(path string) []ValidationError {
	data, err := os.ReadFile(path)
	if err != nil {
		return []ValidationError{{File: path, Message: fmt.Sprintf("failed to read file: %v", err)}}
	}
	return ValidateBytes(path, data)
}

// ValidateBytes validates scenario YAML against the schema. The path is
// used for positions in reported errors.
func ValidateBytes(path string, data []byte) []ValidationError {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		// The schema ships with the binary; failing to compile it is a
		// programming error, not a user error.
		return []ValidationError{{File: path, Message: fmt.Sprintf("internal: schema failed to compile: %v", err)}}
	}
	def := schema.LookupPath(cue.ParsePath("#Scenario"))
	if err := def.Err(); err != nil {
		return []ValidationError{{File: path, Message: fmt.Sprintf("internal: #Scenario not found in schema: %v", err)}}
	}

	file, err := cueyaml.Extract(path, data)
	if err != nil {
		return cueErrorList(path, err)
	}
	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return cueErrorList(path, err)
	}

	unified := def.Unify(doc)
	if err := unified.Validate(cue.Concrete(true), cue.Final()); err != nil {
		return cueErrorList(path, err)
	}
	return nil
}

// cueErrorList flattens a CUE error into per-position validation errors.
func cueErrorList(path string, err error) []ValidationError {
	errs := cueerrors.Errors(err)
	out := make([]ValidationError, 0, len(errs))
	for _, e := range errs {
		ve := ValidationError{
			File:    path,
			Message: e.Error(),
		}
		if p := e.Position(); p.IsValid() {
			ve.Line = p.Line()
		}
		if sel := e.Path(); len(sel) > 0 {
			ve.Path = strings.Join(sel, ".")
		}
		out = append(out, ve)
	}
	if len(out) == 0 {
		out = append(out, ValidationError{File: path, Message: err.Error()})
	}
	return out
}
