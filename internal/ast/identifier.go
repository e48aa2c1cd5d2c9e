package ast

import (
	"errors"
	"math"
)

// ErrTooManyExpressions is returned when the pre-order ID counter would
// overflow. Contract source is untrusted, so even the ID space is bounded.
var ErrTooManyExpressions = errors.New("too many expressions in contract")

// AssignExpressionIDs relabels every expression in pre-order, starting at 1.
// IDs are unique across the whole contract; the type checker's per-expression
// type map depends on that. Must run once, before any analysis pass.
func AssignExpressionIDs(expressions []*SymbolicExpression) error {
	_, err := relabel(expressions, 0)
	return err
}

func relabel(expressions []*SymbolicExpression, index uint64) (uint64, error) {
	if index == math.MaxUint64 {
		return 0, ErrTooManyExpressions
	}
	current := index + 1
	for _, expression := range expressions {
		expression.ID = current
		switch expression.Kind {
		case ListExpr:
			next, err := relabel(expression.List, current)
			if err != nil {
				return 0, err
			}
			current = next
		default:
			if current == math.MaxUint64 {
				return 0, ErrTooManyExpressions
			}
			current++
		}
	}
	return current, nil
}
