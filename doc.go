// Package skema declares validation schemas and evaluates them against
// JSON-like values.
//
// A schema is built once with chainable constructors and then evaluated any
// number of times:
//
//	user := skema.Object().
//		Field("name", skema.String().MinLength(1)).
//		Field("email", skema.String().Email()).
//		OptionalField("age", skema.Number().Integer().Min(0)).
//		Strict()
//
//	out, err := skema.Evaluate(user, value)
//
// Evaluation walks the value depth-first and stops at the first violation,
// returning an *ErrorContext with a machine-readable code, the path to the
// offending sub-value and a parameterized message. On success the returned
// value is sanitized: object outputs contain exactly the declared fields and
// registered transforms have been applied.
//
// Values are decoded from JSON or YAML by the source/json and source/yaml
// subpackages, or built directly with Null, Bool, Num, Str, Arr and Obj.
// Schemas project onto OpenAPI 3 via OpenAPISchema.
package skema
