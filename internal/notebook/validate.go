package notebook

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrInvalidNotebook reports notebook JSON that does not match the nbformat schema.
var ErrInvalidNotebook = errors.New("notebook does not match nbformat schema")

const schemaURL = "https://github.com/alnah/go-nbgen/schema/nbformat.v4.schema.json"

//go:embed schema/nbformat.v4.schema.json
var schemaJSON []byte

// compiledSchema compiles the embedded schema once per process.
var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parsing nbformat schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("adding nbformat schema: %w", err)
	}
	return c.Compile(schemaURL)
})

// Validate checks encoded notebook JSON against the nbformat v4 schema.
func Validate(data []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidNotebook, err)
	}

	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidNotebook, err)
	}
	return nil
}
