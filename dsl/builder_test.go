package dsl_test

import (
	"testing"

	paramval "github.com/paramval/paramval"
	"github.com/paramval/paramval/dsl"
)

func TestBuilder_ObjectTree(t *testing.T) {
	p, err := dsl.Object().Name("user").
		Property("id", dsl.Integer().Required().Min(1).Describe("the identifier")).
		Property("tags", dsl.Array(dsl.String()).Max(8)).
		AdditionalReject().
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "user" || !p.HasType(paramval.TypeObject) {
		t.Fatalf("unexpected root: %+v", p)
	}
	id := p.Properties["id"]
	if id == nil || id.Name != "id" || !id.Required || id.Min != 1 || id.Description != "the identifier" {
		t.Fatalf("unexpected id parameter: %+v", id)
	}
	tags := p.Properties["tags"]
	if tags == nil || tags.Items == nil || !tags.Items.HasType(paramval.TypeString) || tags.Max != 8 {
		t.Fatalf("unexpected tags parameter: %+v", tags)
	}
	if p.Additional != paramval.AdditionalReject {
		t.Fatalf("unexpected additional policy: %v", p.Additional)
	}
}

func TestBuilder_StaticSetsDefault(t *testing.T) {
	p := dsl.String().Static("fixed").MustBuild()
	if !p.Static || p.Default != "fixed" {
		t.Fatalf("static builder misconfigured: %+v", p)
	}
}

func TestBuilder_PatternCompileErrorSurfacesAtBuild(t *testing.T) {
	if _, err := dsl.String().Pattern("([").Build(); err == nil {
		t.Fatalf("expected pattern compile error")
	}
}

func TestBuilder_NestedErrorsPropagate(t *testing.T) {
	_, err := dsl.Object().
		Property("bad", dsl.String().Pattern("([")).
		Build()
	if err == nil {
		t.Fatalf("expected nested property error")
	}
}

func TestBuilder_AdditionalSchema(t *testing.T) {
	p := dsl.Object().Additional(dsl.Integer()).MustBuild()
	if p.Additional != paramval.AdditionalSchema || p.AdditionalSchema == nil {
		t.Fatalf("unexpected additional config: %+v", p)
	}
	if !p.AdditionalSchema.HasType(paramval.TypeInteger) {
		t.Fatalf("unexpected additional schema: %+v", p.AdditionalSchema)
	}
}

func TestBuilder_MustBuildPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	dsl.String().Pattern("([").MustBuild()
}

func TestBuilder_TypeOrderPreserved(t *testing.T) {
	p := dsl.Types(paramval.TypeInteger, paramval.TypeString).MustBuild()
	if len(p.Type) != 2 || p.Type[0] != paramval.TypeInteger || p.Type[1] != paramval.TypeString {
		t.Fatalf("type declaration order must be preserved: %v", p.Type)
	}
}
