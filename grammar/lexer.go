package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var ClarionLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{Name: "Comment", Pattern: `;;[^\n]*`, Action: nil},

		// Principal literals: 'ISSUER or 'ISSUER.contract-name
		{Name: "Principal", Pattern: `'[0-9A-Z]+(\.[a-zA-Z][a-zA-Z0-9\-]*)*`, Action: nil},

		// Sugared field references: .contract-name.trait-name
		{Name: "Field", Pattern: `\.[a-zA-Z][a-zA-Z0-9\-]*\.[a-zA-Z][a-zA-Z0-9\-]*`, Action: nil},

		// Trait references: <trait-1>
		{Name: "TraitRef", Pattern: `<[a-zA-Z][a-zA-Z0-9\-]*>`, Action: nil},

		// Buffer literals (must come before Int so 0x is not split)
		{Name: "Hex", Pattern: `0x[0-9a-fA-F]*`, Action: nil},

		// Integer literals
		{Name: "UInt", Pattern: `u[0-9]+`, Action: nil},
		{Name: "Int", Pattern: `-?[0-9]+`, Action: nil},

		// String literals
		{Name: "String", Pattern: `"[^"]*"`, Action: nil},

		// Atoms: names first, then bare operator symbols
		{Name: "Atom", Pattern: `[a-zA-Z][a-zA-Z0-9!?+\-*/<>=]*|[+\-*/<>=!]+`, Action: nil},

		// Parens
		{Name: "LParen", Pattern: `\(`, Action: nil},
		{Name: "RParen", Pattern: `\)`, Action: nil},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
	},
})
