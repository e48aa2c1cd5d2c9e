package ast

// Position is a 1-based source location.
type Position struct {
	Line   int
	Column int
	Offset int
}

// ExpressionKind discriminates the SymbolicExpression variants.
type ExpressionKind int

const (
	// AtomExpr is a bare symbol: a function name, variable, or keyword.
	AtomExpr ExpressionKind = iota
	// LiteralExpr is a literal value: integer, bool, string, buffer, principal.
	LiteralExpr
	// ListExpr is a parenthesized sequence of expressions.
	ListExpr
	// TraitRefExpr is a trait reference annotation such as <trait-1>,
	// carrying the local alias to be resolved nominally.
	TraitRefExpr
	// FieldExpr is a contract field reference such as .contract.trait-1
	// or 'ISSUER.contract.trait-1, naming a trait in another contract.
	FieldExpr
)

// TraitField is the unresolved spelling of a FieldExpr. A sugared
// reference leaves Issuer empty; analysis qualifies it with the issuer
// of the contract under analysis.
type TraitField struct {
	Issuer   string
	Contract string
	Trait    string
}

// SymbolicExpression is one node of a parsed contract. Every node carries
// a unique ID assigned by AssignExpressionIDs; the type checker's type map
// is keyed by it.
type SymbolicExpression struct {
	ID     uint64
	Kind   ExpressionKind
	Pos    Position
	EndPos Position

	Atom  string                // AtomExpr
	Value *Value                // LiteralExpr
	List  []*SymbolicExpression // ListExpr
	Trait string                // TraitRefExpr alias
	Field *TraitField           // FieldExpr
}

func Atom(name string) *SymbolicExpression {
	return &SymbolicExpression{Kind: AtomExpr, Atom: name}
}

func Literal(value *Value) *SymbolicExpression {
	return &SymbolicExpression{Kind: LiteralExpr, Value: value}
}

func ExprList(items ...*SymbolicExpression) *SymbolicExpression {
	return &SymbolicExpression{Kind: ListExpr, List: items}
}

func TraitRef(alias string) *SymbolicExpression {
	return &SymbolicExpression{Kind: TraitRefExpr, Trait: alias}
}

func Field(field TraitField) *SymbolicExpression {
	return &SymbolicExpression{Kind: FieldExpr, Field: &field}
}

// MatchAtom returns the atom name if the expression is a bare symbol.
func (e *SymbolicExpression) MatchAtom() (string, bool) {
	if e.Kind == AtomExpr {
		return e.Atom, true
	}
	return "", false
}

// MatchList returns the item slice if the expression is a list.
func (e *SymbolicExpression) MatchList() ([]*SymbolicExpression, bool) {
	if e.Kind == ListExpr {
		return e.List, true
	}
	return nil, false
}

// MatchLiteral returns the literal value if the expression is one.
func (e *SymbolicExpression) MatchLiteral() (*Value, bool) {
	if e.Kind == LiteralExpr {
		return e.Value, true
	}
	return nil, false
}

// MatchTraitRef returns the alias if the expression is a trait reference.
func (e *SymbolicExpression) MatchTraitRef() (string, bool) {
	if e.Kind == TraitRefExpr {
		return e.Trait, true
	}
	return "", false
}

// MatchField returns the field if the expression is a contract field
// reference.
func (e *SymbolicExpression) MatchField() (*TraitField, bool) {
	if e.Kind == FieldExpr {
		return e.Field, true
	}
	return nil, false
}
