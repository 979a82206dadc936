// Package paramval validates and coerces loosely-typed value trees against
// recursive parameter schemas:
//
//   - A Parameter describes one node of the expected shape (type, required,
//     default/static value, nested properties, array items, enum, pattern,
//     numeric bounds, additional-properties policy).
//   - A Processor walks a Parameter tree in lock-step with a value tree,
//     applying defaults and the single permitted coercion (integer input where
//     a string is declared), and collects every violation instead of failing
//     fast.
//
// Design policy:
//   - Keep only public APIs in the root package; construction helpers live
//     under dsl/ and document import under descriptor/.
//   - Validation failures are values (Issues), never panics.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	schema := dsl.Object().
//	    Property("id", dsl.Integer().Required()).
//	    Property("name", dsl.String().Default("anonymous")).
//	    MustBuild()
//
//	var v any = map[string]any{"id": 7}
//	res := paramval.Process(schema, &v)
//	if !res.Valid() {
//	    for _, msg := range res.Errors() { ... }
//	}
package paramval
