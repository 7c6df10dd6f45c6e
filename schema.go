package stdagent

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidateInput checks data against an input JSON schema.
// An empty schema accepts everything.
func ValidateInput(schema string, data []byte) error {
	return validateSchema(schema, data, ErrInputSchemaInvalid)
}

// ValidateOutput checks data against an output JSON schema.
// An empty schema accepts everything.
func ValidateOutput(schema string, data []byte) error {
	return validateSchema(schema, data, ErrOutputSchemaInvalid)
}

func validateSchema(schema string, data []byte, invalid error) error {
	if strings.TrimSpace(schema) == "" {
		return nil
	}

	schemaLoader := gojsonschema.NewStringLoader(schema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("validate schema: %w", err)
	}

	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, err := range result.Errors() {
		errs = append(errs, err.String())
	}

	return fmt.Errorf("%w: %s", invalid, strings.Join(errs, "; "))
}
