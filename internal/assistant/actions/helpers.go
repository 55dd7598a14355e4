package actions

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/toon-format/toon-go"
)

// unmarshalActionInput unmarshals the action input from a JSON string into
// the target struct, ensuring that only a single JSON object is present and that there are no unknown fields.
// Empty input decodes as an empty object.
func unmarshalActionInput(arguments string, target any) error {
	if strings.TrimSpace(arguments) == "" {
		arguments = "{}"
	}

	decoder := json.NewDecoder(strings.NewReader(arguments))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return err
	}

	// Reject trailing JSON values after the first object.
	var extra any
	if err := decoder.Decode(&extra); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return fmt.Errorf("action arguments must contain a single JSON object")
}

// inputSchemaFor infers the input schema of T and applies the constraints
// the Go type cannot express. It panics on types that have no JSON schema.
func inputSchemaFor[T any](constrain func(*jsonschema.Schema)) *jsonschema.Schema {
	schema, err := jsonschema.For[T](nil)
	if err != nil {
		panic(fmt.Sprintf("invalid action input type: %v", err))
	}
	if constrain != nil {
		constrain(schema)
	}
	return schema
}

// arrayOnly drops the implicit null type inferred for Go slices.
func arrayOnly(schema *jsonschema.Schema) {
	schema.Types = nil
	schema.Type = "array"
}

// encodeContent renders the action output in TOON for the model.
func encodeContent(v any) (string, error) {
	content, err := toon.MarshalString(v, toon.WithLengthMarkers(true))
	if err != nil {
		return "", fmt.Errorf("failed to encode action output: %w", err)
	}
	return content, nil
}

// stringEnum restricts a nullable string property to the given values.
func stringEnum(schema *jsonschema.Schema, values ...string) {
	schema.Types = nil
	schema.Type = "string"
	schema.Enum = make([]any, 0, len(values))
	for _, v := range values {
		schema.Enum = append(schema.Enum, v)
	}
}
