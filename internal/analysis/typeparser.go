package analysis

import (
	"math"

	"clarion/internal/ast"
	"clarion/internal/types"
)

// parseTypeAnnotation turns a type annotation expression into a
// TypeSignature. Trait reference annotations are kept as their alias;
// callers decide whether and how the alias must resolve.
func parseTypeAnnotation(expr *ast.SymbolicExpression) (types.TypeSignature, *CheckError) {
	switch expr.Kind {
	case ast.AtomExpr:
		if signature, ok := types.BuiltinTypes[expr.Atom]; ok {
			return signature, nil
		}
		if expr.Atom == "none" {
			return types.None(), nil
		}
		return types.TypeSignature{}, ErrUnknownTypeName(expr.Atom).WithExpression(expr)

	case ast.TraitRefExpr:
		return types.TraitReference(expr.Trait), nil

	case ast.ListExpr:
		return parseCompoundType(expr)

	default:
		return types.TypeSignature{}, ErrBadSyntax("expecting a type annotation").WithExpression(expr)
	}
}

func parseCompoundType(expr *ast.SymbolicExpression) (types.TypeSignature, *CheckError) {
	items := expr.List
	if len(items) == 0 {
		return types.TypeSignature{}, ErrBadSyntax("expecting a type annotation").WithExpression(expr)
	}
	head, ok := items[0].MatchAtom()
	if !ok {
		return types.TypeSignature{}, ErrBadSyntax("expecting a type constructor name").WithExpression(items[0])
	}

	switch head {
	case "buff":
		if len(items) != 2 {
			return types.TypeSignature{}, ErrIncorrectArgumentCount(1, len(items)-1).WithExpression(expr)
		}
		length, err := parseLengthLiteral(items[1])
		if err != nil {
			return types.TypeSignature{}, err
		}
		return types.Buffer(length), nil

	case "optional":
		if len(items) != 2 {
			return types.TypeSignature{}, ErrIncorrectArgumentCount(1, len(items)-1).WithExpression(expr)
		}
		inner, err := parseTypeAnnotation(items[1])
		if err != nil {
			return types.TypeSignature{}, err
		}
		return types.Optional(inner), nil

	case "response":
		if len(items) != 3 {
			return types.TypeSignature{}, ErrIncorrectArgumentCount(2, len(items)-1).WithExpression(expr)
		}
		okType, err := parseTypeAnnotation(items[1])
		if err != nil {
			return types.TypeSignature{}, err
		}
		errType, err := parseTypeAnnotation(items[2])
		if err != nil {
			return types.TypeSignature{}, err
		}
		return types.Response(okType, errType), nil

	case "list":
		if len(items) != 3 {
			return types.TypeSignature{}, ErrIncorrectArgumentCount(2, len(items)-1).WithExpression(expr)
		}
		length, err := parseLengthLiteral(items[1])
		if err != nil {
			return types.TypeSignature{}, err
		}
		inner, err := parseTypeAnnotation(items[2])
		if err != nil {
			return types.TypeSignature{}, err
		}
		return types.List(length, inner), nil

	case "tuple":
		fields, err := parseTupleFields(items[1:])
		if err != nil {
			return types.TypeSignature{}, err.WithExpression(expr)
		}
		return types.Tuple(fields), nil

	default:
		return types.TypeSignature{}, ErrUnknownTypeName(head).WithExpression(items[0])
	}
}

// parseTupleFields parses ((name type) ...) pairs, as used by tuple
// annotations and by define-map key/value schemas.
func parseTupleFields(pairs []*ast.SymbolicExpression) ([]types.TupleField, *CheckError) {
	fields := make([]types.TupleField, 0, len(pairs))
	names := make(map[string]struct{}, len(pairs))
	for _, pair := range pairs {
		items, ok := pair.MatchList()
		if !ok || len(items) != 2 {
			return nil, ErrBadSyntax("expecting (name type) pairs").WithExpression(pair)
		}
		name, ok := items[0].MatchAtom()
		if !ok {
			return nil, ErrBadSyntax("expecting a field name").WithExpression(items[0])
		}
		if _, dup := names[name]; dup {
			return nil, ErrNameAlreadyUsed(name).WithExpression(items[0])
		}
		names[name] = struct{}{}
		fieldType, err := parseTypeAnnotation(items[1])
		if err != nil {
			return nil, err
		}
		fields = append(fields, types.TupleField{Name: name, Type: fieldType})
	}
	return fields, nil
}

func parseLengthLiteral(expr *ast.SymbolicExpression) (uint32, *CheckError) {
	value, ok := expr.MatchLiteral()
	if !ok {
		return 0, ErrBadSyntax("expecting a length literal").WithExpression(expr)
	}
	switch value.Kind {
	case ast.IntValue:
		if value.Int < 0 {
			return 0, ErrBadSyntax("length literal must not be negative").WithExpression(expr)
		}
		if value.Int > math.MaxUint32 {
			return 0, ErrValueTooLarge().WithExpression(expr)
		}
		return uint32(value.Int), nil
	case ast.UIntValue:
		if value.UInt > math.MaxUint32 {
			return 0, ErrValueTooLarge().WithExpression(expr)
		}
		return uint32(value.UInt), nil
	default:
		return 0, ErrBadSyntax("expecting a length literal").WithExpression(expr)
	}
}
