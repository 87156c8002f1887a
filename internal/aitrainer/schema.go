package aitrainer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	schemavalidator "github.com/santhosh-tekuri/jsonschema/v5"
)

// reflectSchema builds the JSON schema of T. Fields without omitempty are
// required, unknown properties are allowed.
func reflectSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
		Anonymous:                 true,
	}
	var v T
	return reflector.Reflect(v)
}

type responseSchema struct {
	name     string
	compiled *schemavalidator.Schema
}

func compileSchema[T any](name string) (*responseSchema, error) {
	raw, err := json.Marshal(reflectSchema[T]())
	if err != nil {
		return nil, fmt.Errorf("marshal %s schema: %w", name, err)
	}

	compiler := schemavalidator.NewCompiler()
	url := name + ".json"
	if err := compiler.AddResource(url, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("add %s schema: %w", name, err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", name, err)
	}

	return &responseSchema{
		name:     name,
		compiled: compiled,
	}, nil
}

func mustCompileSchema[T any](name string) *responseSchema {
	s, err := compileSchema[T](name)
	if err != nil {
		panic(err)
	}
	return s
}

var (
	workoutSchema  = mustCompileSchema[GeneratedWorkout]("generated-workout")
	insightsSchema = mustCompileSchema[WorkoutInsights]("workout-insights")
)

// decode parses raw and validates it against the schema.
func (s *responseSchema) decode(raw []byte) (Document, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %s", ErrInvalidResponse, s.name, err)
	}
	if err := s.compiled.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %s does not match schema: %s", ErrInvalidResponse, s.name, err)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an object", ErrInvalidResponse, s.name)
	}
	return obj, nil
}
