package analysis

import (
	"fmt"

	"clarion/internal/ast"
	"clarion/internal/errors"
	"clarion/internal/types"
)

// CheckError is the failure type of every analysis pass. Each check
// returns the first failure it encounters; there are no partial results.
type CheckError struct {
	Code       string
	Message    string
	Expression *ast.SymbolicExpression
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithExpression pins the error to the offending expression if it is not
// already positioned. Outer checks use it to attach context that inner
// checks (which may only see a name) do not have.
func (e *CheckError) WithExpression(expr *ast.SymbolicExpression) *CheckError {
	if e.Expression == nil {
		e.Expression = expr
	}
	return e
}

// Diagnostic converts the error for the reporter and the language server.
func (e *CheckError) Diagnostic() errors.Diagnostic {
	d := errors.Diagnostic{
		Level:   errors.Error,
		Code:    e.Code,
		Message: e.Message,
	}
	if e.Expression != nil {
		d.Position = e.Expression.Pos
		d.Length = e.Expression.EndPos.Offset - e.Expression.Pos.Offset
	}
	return d
}

func newCheckError(code, format string, args ...interface{}) *CheckError {
	return &CheckError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func ErrTraitReferenceUnknown(name string) *CheckError {
	return newCheckError(errors.ErrorTraitReferenceUnknown, "use of undeclared trait <%s>", name)
}

func ErrBadTraitImplementation(traitName, methodName string) *CheckError {
	return newCheckError(errors.ErrorBadTraitImplementation,
		"invalid signature for method '%s' regarding trait's specification <%s>", methodName, traitName)
}

func ErrCircularReference(names string) *CheckError {
	return newCheckError(errors.ErrorCircularReference,
		"detected circular reference between definitions (%s)", names)
}

func ErrNoSuchContract(id types.ContractIdentifier) *CheckError {
	return newCheckError(errors.ErrorNoSuchContract, "use of unresolved contract '%s'", id)
}

func ErrNameAlreadyUsed(name string) *CheckError {
	return newCheckError(errors.ErrorNameAlreadyUsed, "name '%s' is already used in this context", name)
}

func ErrNoSuchFT(name string) *CheckError {
	return newCheckError(errors.ErrorNoSuchFT, "tried to use token function with a undefined token ('%s')", name)
}

func ErrNoSuchNFT(name string) *CheckError {
	return newCheckError(errors.ErrorNoSuchNFT, "tried to use asset function with a undefined asset ('%s')", name)
}

func ErrBadTokenName() *CheckError {
	return newCheckError(errors.ErrorBadTokenName, "expecting an token name as an argument")
}

func ErrTypeMismatch(expected, actual types.TypeSignature) *CheckError {
	return newCheckError(errors.ErrorTypeMismatch, "expecting expression of type '%s', found '%s'", expected, actual)
}

func ErrIncorrectArgumentCount(expected, actual int) *CheckError {
	return newCheckError(errors.ErrorIncorrectArgumentCount,
		"expecting %d arguments, got %d", expected, actual)
}

func ErrUnknownTypeName(name string) *CheckError {
	return newCheckError(errors.ErrorUnknownTypeName, "unknown type name '%s'", name)
}

func ErrTraitReferenceNotAllowed() *CheckError {
	return newCheckError(errors.ErrorTraitReferenceNotAllowed,
		"trait references can not be stored")
}

func ErrPublicFunctionMustReturnResponse(actual types.TypeSignature) *CheckError {
	return newCheckError(errors.ErrorPublicFunctionMustReturnResponse,
		"public functions must return an expression of type 'response', found '%s'", actual)
}

func ErrUndefinedVariable(name string) *CheckError {
	return newCheckError(errors.ErrorUndefinedVariable, "use of unresolved variable '%s'", name)
}

func ErrUndefinedFunction(name string) *CheckError {
	return newCheckError(errors.ErrorUndefinedFunction, "use of unresolved function '%s'", name)
}

func ErrValueTooLarge() *CheckError {
	return newCheckError(errors.ErrorValueTooLarge, "created a type which was greater than maximum allowed value size")
}

func ErrCostBudgetExceeded(consumed, budget uint64) *CheckError {
	return newCheckError(errors.ErrorCostBudgetExceeded,
		"analysis cost budget exceeded: consumed %d of %d units", consumed, budget)
}

func ErrBadSyntax(format string, args ...interface{}) *CheckError {
	return newCheckError(errors.ErrorSyntax, format, args...)
}
