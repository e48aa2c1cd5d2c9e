package grammar

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"clarion/internal/ast"
)

// Convert lowers parsed s-expressions into the analysis AST. Literal text
// becomes typed values here; the analyzer never re-parses source strings.
func Convert(parsed []*SExpr) ([]*ast.SymbolicExpression, error) {
	expressions := make([]*ast.SymbolicExpression, 0, len(parsed))
	for _, sexpr := range parsed {
		converted, err := convertExpr(sexpr)
		if err != nil {
			return nil, err
		}
		expressions = append(expressions, converted)
	}
	return expressions, nil
}

func convertExpr(sexpr *SExpr) (*ast.SymbolicExpression, error) {
	var converted *ast.SymbolicExpression

	switch {
	case sexpr.Atom != nil:
		switch *sexpr.Atom {
		case "true":
			converted = ast.Literal(ast.BoolLiteral(true))
		case "false":
			converted = ast.Literal(ast.BoolLiteral(false))
		default:
			converted = ast.Atom(*sexpr.Atom)
		}

	case sexpr.UInt != nil:
		value, err := strconv.ParseUint(strings.TrimPrefix(*sexpr.UInt, "u"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid uint literal %s: %w", *sexpr.UInt, err)
		}
		converted = ast.Literal(ast.UIntLiteral(value))

	case sexpr.Int != nil:
		value, err := strconv.ParseInt(*sexpr.Int, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid int literal %s: %w", *sexpr.Int, err)
		}
		converted = ast.Literal(ast.IntLiteral(value))

	case sexpr.Hex != nil:
		bytes, err := hex.DecodeString(strings.TrimPrefix(*sexpr.Hex, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid buffer literal %s: %w", *sexpr.Hex, err)
		}
		converted = ast.Literal(ast.BufferLiteral(bytes))

	case sexpr.Str != nil:
		converted = ast.Literal(ast.StringLiteral(strings.Trim(*sexpr.Str, `"`)))

	case sexpr.Principal != nil:
		parts := strings.SplitN(strings.TrimPrefix(*sexpr.Principal, "'"), ".", 3)
		switch len(parts) {
		case 1:
			converted = ast.Literal(ast.PrincipalLiteral(parts[0], ""))
		case 2:
			converted = ast.Literal(ast.PrincipalLiteral(parts[0], parts[1]))
		case 3:
			// 'ISSUER.contract.trait is a fully qualified field reference.
			converted = ast.Field(ast.TraitField{Issuer: parts[0], Contract: parts[1], Trait: parts[2]})
		}

	case sexpr.TraitRef != nil:
		alias := strings.TrimSuffix(strings.TrimPrefix(*sexpr.TraitRef, "<"), ">")
		converted = ast.TraitRef(alias)

	case sexpr.Field != nil:
		parts := strings.SplitN(strings.TrimPrefix(*sexpr.Field, "."), ".", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid field reference %s", *sexpr.Field)
		}
		converted = ast.Field(ast.TraitField{Contract: parts[0], Trait: parts[1]})

	case sexpr.IsList:
		items, err := Convert(sexpr.List)
		if err != nil {
			return nil, err
		}
		converted = ast.ExprList(items...)

	default:
		return nil, fmt.Errorf("empty expression at %s", sexpr.Pos)
	}

	converted.Pos = convertPos(sexpr.Pos)
	converted.EndPos = convertPos(sexpr.EndPos)
	return converted, nil
}

func convertPos(pos lexer.Position) ast.Position {
	return ast.Position{Line: pos.Line, Column: pos.Column, Offset: pos.Offset}
}
