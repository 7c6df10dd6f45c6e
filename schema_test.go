package stdagent

import (
	"errors"
	"testing"
)

func TestValidateSchemas(t *testing.T) {
	const schema = `{"type":"object","properties":{"data":{"type":"string"}},"required":["data"]}`

	tests := []struct {
		name    string
		schema  string
		doc     string
		wantErr error
		invalid bool
	}{
		{name: "empty schema accepts", schema: "  ", doc: `[1]`},
		{name: "valid", schema: schema, doc: `{"data":"x"}`},
		{name: "missing field", schema: schema, doc: `{}`, wantErr: ErrInputSchemaInvalid},
		{name: "wrong type", schema: schema, doc: `{"data":1}`, wantErr: ErrInputSchemaInvalid},
		{name: "broken schema", schema: `{"type":`, doc: `{}`, invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInput(tt.schema, []byte(tt.doc))

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			case tt.invalid:
				if err == nil {
					t.Fatal("expected error")
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
		})
	}

	if err := ValidateOutput(schema, []byte(`{}`)); !errors.Is(err, ErrOutputSchemaInvalid) {
		t.Fatalf("expected ErrOutputSchemaInvalid, got %v", err)
	}
}
