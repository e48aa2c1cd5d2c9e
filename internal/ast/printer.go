package ast

import "strings"

// Print renders an expression back to surface syntax. Used by diagnostics
// when an error wants to show the offending form rather than a position.
func Print(e *SymbolicExpression) string {
	var b strings.Builder
	printInto(&b, e)
	return b.String()
}

func printInto(b *strings.Builder, e *SymbolicExpression) {
	switch e.Kind {
	case AtomExpr:
		b.WriteString(e.Atom)
	case LiteralExpr:
		b.WriteString(e.Value.String())
	case TraitRefExpr:
		b.WriteString("<" + e.Trait + ">")
	case FieldExpr:
		if e.Field.Issuer != "" {
			b.WriteString("'" + e.Field.Issuer)
		}
		b.WriteString("." + e.Field.Contract + "." + e.Field.Trait)
	case ListExpr:
		b.WriteString("(")
		for i, item := range e.List {
			if i > 0 {
				b.WriteString(" ")
			}
			printInto(b, item)
		}
		b.WriteString(")")
	}
}
