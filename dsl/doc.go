// Package dsl provides a fluent builder for paramval Parameter trees.
//
// Overview
//   - Leaf builders: String()/Integer()/Numeric()/Bool()/Null()/Any() and
//     Types(...) for multi-type parameters.
//   - Composite builders: Object() with Property(), Array() with Items().
//   - Constraints chain: Required()/Default()/Enum()/Pattern()/Min()/Max().
//   - Build() surfaces accumulated construction errors; MustBuild() panics.
//
// Example:
//
//	schema := dsl.Object().Name("user").
//	    Property("id", dsl.Integer().Required()).
//	    Property("tags", dsl.Array(dsl.String()).Max(8)).
//	    AdditionalReject().
//	    MustBuild()
package dsl
