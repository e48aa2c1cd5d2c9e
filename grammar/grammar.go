package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Contract is a parsed source file: a sequence of top-level s-expressions.
type Contract struct {
	Pos lexer.Position

	Expressions []*SExpr `parser:"@@*"`
}

// SExpr is one s-expression: exactly one of the variant fields is set.
// List stays nil-able but a parsed "()" yields an SExpr with IsList true,
// so empty lists are distinguishable from atoms.
type SExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Principal *string  `parser:"@Principal"`
	Field     *string  `parser:"| @Field"`
	TraitRef  *string  `parser:"| @TraitRef"`
	Hex       *string  `parser:"| @Hex"`
	UInt      *string  `parser:"| @UInt"`
	Int       *string  `parser:"| @Int"`
	Str       *string  `parser:"| @String"`
	Atom      *string  `parser:"| @Atom"`
	IsList    bool     `parser:"| @LParen"`
	List      []*SExpr `parser:"  @@* RParen"`
}
