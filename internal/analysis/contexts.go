package analysis

import (
	"clarion/internal/ast"
	"clarion/internal/types"
)

// TypeMap records the inferred type of every expression, keyed by the
// expression IDs assigned after parsing. Each expression is typed exactly
// once; a second annotation for the same ID indicates a checker bug and
// is rejected rather than silently overwritten.
type TypeMap struct {
	typeByID map[uint64]types.TypeSignature
}

func NewTypeMap() *TypeMap {
	return &TypeMap{typeByID: make(map[uint64]types.TypeSignature)}
}

func (m *TypeMap) SetType(expr *ast.SymbolicExpression, signature types.TypeSignature) *CheckError {
	if _, present := m.typeByID[expr.ID]; present {
		return ErrBadSyntax("expression id %d was typed twice", expr.ID)
	}
	m.typeByID[expr.ID] = signature
	return nil
}

func (m *TypeMap) GetType(expr *ast.SymbolicExpression) (types.TypeSignature, bool) {
	signature, ok := m.typeByID[expr.ID]
	return signature, ok
}

// TypingContext is the lexical variable environment of one body being
// checked. Contexts nest per binding form; lookups walk outward.
type TypingContext struct {
	parent    *TypingContext
	variables map[string]types.TypeSignature
}

func NewTypingContext() *TypingContext {
	return &TypingContext{
		variables: make(map[string]types.TypeSignature),
	}
}

// Extend opens a nested scope.
func (c *TypingContext) Extend() *TypingContext {
	child := NewTypingContext()
	child.parent = c
	return child
}

func (c *TypingContext) BindVariable(name string, signature types.TypeSignature) {
	c.variables[name] = signature
}

// BindTraitReference binds a parameter declared with a trait reference
// annotation; it types as the alias, resolved nominally at use sites.
func (c *TypingContext) BindTraitReference(name string, alias string) {
	c.variables[name] = types.TraitReference(alias)
}

func (c *TypingContext) LookupVariable(name string) (types.TypeSignature, bool) {
	for scope := c; scope != nil; scope = scope.parent {
		if signature, ok := scope.variables[name]; ok {
			return signature, true
		}
	}
	return types.TypeSignature{}, false
}
