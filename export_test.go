package paramval_test

import (
	"reflect"
	"testing"

	paramval "github.com/paramval/paramval"
	"github.com/paramval/paramval/dsl"
	"github.com/paramval/paramval/jsonschema"
)

func TestJSONSchema_ObjectProjection(t *testing.T) {
	p := dsl.Object().
		Property("id", dsl.Integer().Required().Min(1)).
		Property("name", dsl.String().Max(10).Default("anonymous")).
		AdditionalReject().
		MustBuild()

	s, err := p.JSONSchema()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Type != "object" {
		t.Fatalf("unexpected type: %q", s.Type)
	}
	if !reflect.DeepEqual(s.Required, []string{"id"}) {
		t.Fatalf("unexpected required list: %v", s.Required)
	}
	if s.AdditionalProperties != false {
		t.Fatalf("expected additionalProperties=false, got %v", s.AdditionalProperties)
	}
	id := s.Properties["id"]
	if id == nil || id.Minimum == nil || *id.Minimum != 1 {
		t.Fatalf("unexpected id projection: %+v", id)
	}
	name := s.Properties["name"]
	if name == nil || name.MaxLength == nil || *name.MaxLength != 10 || name.Default != "anonymous" {
		t.Fatalf("unexpected name projection: %+v", name)
	}
}

func TestJSONSchema_TypeMapping(t *testing.T) {
	num, err := dsl.Numeric().MustBuild().JSONSchema()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num.Type != "number" {
		t.Fatalf("numeric should project to number, got %q", num.Type)
	}

	multi, err := dsl.Types(paramval.TypeString, paramval.TypeInteger).MustBuild().JSONSchema()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if multi.Type != "" || len(multi.OneOf) != 2 {
		t.Fatalf("multi-type should project to oneOf: %+v", multi)
	}
	if multi.OneOf[0].Type != "string" || multi.OneOf[1].Type != "integer" {
		t.Fatalf("unexpected oneOf members: %+v", multi.OneOf)
	}
}

func TestJSONSchema_ArrayProjection(t *testing.T) {
	p := dsl.Array(dsl.String().Enum("a", "b")).Min(1).Max(4).MustBuild()
	s, err := p.JSONSchema()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Type != "array" || s.Items == nil {
		t.Fatalf("unexpected array projection: %+v", s)
	}
	if s.MinItems == nil || *s.MinItems != 1 || s.MaxItems == nil || *s.MaxItems != 4 {
		t.Fatalf("unexpected item bounds: %+v", s)
	}
	if !reflect.DeepEqual(s.Items.Enum, []string{"a", "b"}) {
		t.Fatalf("unexpected items enum: %v", s.Items.Enum)
	}
}

func TestJSONSchema_AdditionalSchemaProjection(t *testing.T) {
	p := dsl.Object().Additional(dsl.String()).MustBuild()
	s, err := p.JSONSchema()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nested, ok := s.AdditionalProperties.(*jsonschema.Schema)
	if !ok || nested.Type != "string" {
		t.Fatalf("expected nested schema projection, got %#v", s.AdditionalProperties)
	}
}
