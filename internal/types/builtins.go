package types

// BuiltinTypes maps the atomic type names of the surface syntax to their
// signatures. Compound types (buff, optional, response, list, tuple) are
// written as lists and parsed by the type checker's annotation parser.
var BuiltinTypes = map[string]TypeSignature{
	"int":       Int(),
	"uint":      UInt(),
	"bool":      Bool(),
	"principal": Principal(),
}
