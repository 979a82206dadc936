package descriptor_test

import (
	"testing"

	paramval "github.com/paramval/paramval"
	"github.com/paramval/paramval/descriptor"
)

const userYAML = `
name: user
type: object
additionalProperties: false
properties:
  id:
    type: integer
    required: true
    min: 1
  name:
    type: string
    default: anonymous
`

func TestImportYAML_ProcessesValues(t *testing.T) {
	schema, err := descriptor.ImportYAML([]byte(userYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schema.Additional != paramval.AdditionalReject {
		t.Fatalf("unexpected additional policy: %v", schema.Additional)
	}
	id := schema.Properties["id"]
	if id == nil || !id.Required || id.Min != 1 {
		t.Fatalf("unexpected id parameter: %+v", id)
	}

	var v any = map[string]any{"id": 7}
	if res := paramval.Process(schema, &v); !res.Valid() {
		t.Fatalf("expected valid, got %v", res.Errors())
	}
	if m := v.(map[string]any); m["name"] != "anonymous" {
		t.Fatalf("expected default applied, got %#v", m["name"])
	}
}

func TestImportYAML_RejectsNonMappingRoot(t *testing.T) {
	if _, err := descriptor.ImportYAML([]byte("- 1\n- 2\n")); err == nil {
		t.Fatalf("expected error for sequence root")
	}
}

func TestImportYAML_InvalidSyntax(t *testing.T) {
	if _, err := descriptor.ImportYAML([]byte("{invalid")); err == nil {
		t.Fatalf("expected YAML parse error")
	}
}
