package profile

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// validateDocument checks a raw profile document against the embedded CUE
// schema. Uses the CUE SDK's Go API directly: compile the schema, encode
// the decoded YAML document, unify, and validate for concreteness.
func validateDocument(data []byte, source string) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%s: parsing profiles: %w", source, err)
	}
	if doc == nil {
		return fmt.Errorf("%s: empty profile document", source)
	}

	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling profile schema: %w", err)
	}

	value := ctx.Encode(doc)
	if err := value.Err(); err != nil {
		return fmt.Errorf("%s: encoding profile document: %w", source, err)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%s: invalid profile document: %s", source, cueErrorDetails(err))
	}
	return nil
}

// cueErrorDetails flattens a CUE error list into one readable message.
func cueErrorDetails(err error) string {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err.Error()
	}
	msg := ""
	for i, e := range errs {
		if i > 0 {
			msg += "; "
		}
		msg += e.Error()
	}
	return msg
}
