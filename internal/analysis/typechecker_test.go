package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clarion/internal/errors"
	"clarion/internal/types"
)

func TestPublicFunctionMustReturnResponse(t *testing.T) {
	db := NewMemoryDatabase()

	checkErr := analyzeErr(t, db, "counters", `
(define-public (get-count) u1)`)

	assert.Equal(t, errors.ErrorPublicFunctionMustReturnResponse, checkErr.Code)
}

func TestReadOnlyFunctionMayReturnAnything(t *testing.T) {
	db := NewMemoryDatabase()

	result := analyzeOK(t, db, "counters", `
(define-read-only (get-count) u1)`)

	getCount := result.GetReadOnlyFunctionType("get-count")
	require.NotNil(t, getCount)
	assert.Equal(t, types.UInt(), getCount.Returns)
}

func TestUndefinedVariable(t *testing.T) {
	db := NewMemoryDatabase()

	checkErr := analyzeErr(t, db, "counters", `
(define-public (get-count) (ok missing))`)

	assert.Equal(t, errors.ErrorUndefinedVariable, checkErr.Code)
}

func TestUndefinedFunction(t *testing.T) {
	db := NewMemoryDatabase()

	checkErr := analyzeErr(t, db, "counters", `
(define-public (get-count) (ok (missing u1)))`)

	assert.Equal(t, errors.ErrorUndefinedFunction, checkErr.Code)
}

func TestFunctionNameCollision(t *testing.T) {
	db := NewMemoryDatabase()

	checkErr := analyzeErr(t, db, "counters", `
(define-read-only (get-count) u1)
(define-private (get-count) u2)`)

	assert.Equal(t, errors.ErrorNameAlreadyUsed, checkErr.Code)
}

func TestTraitAliasCollision(t *testing.T) {
	db := NewMemoryDatabase()

	analyzeOK(t, db, "contract-a", `
(define-trait trait-1 ((get-1 (uint) (response uint uint))))`)

	checkErr := analyzeErr(t, db, "contract-b", `
(define-trait shared ((get-1 (uint) (response uint uint))))
(use-trait shared .contract-a.trait-1)`)

	assert.Equal(t, errors.ErrorNameAlreadyUsed, checkErr.Code)
}

func TestArithmeticRequiresMatchingIntegerTypes(t *testing.T) {
	db := NewMemoryDatabase()

	checkErr := analyzeErr(t, db, "counters", `
(define-public (mix) (ok (+ u1 1)))`)

	assert.Equal(t, errors.ErrorTypeMismatch, checkErr.Code)
}

func TestMapSchemaRejectsTraitReference(t *testing.T) {
	db := NewMemoryDatabase()

	checkErr := analyzeErr(t, db, "kv", `
(define-trait trait-1 ((get-1 (uint) (response uint uint))))
(define-map kv-store ((key uint)) ((value <trait-1>)))`)

	assert.Equal(t, errors.ErrorTraitReferenceNotAllowed, checkErr.Code)
}

func TestDataVarRoundTrip(t *testing.T) {
	db := NewMemoryDatabase()

	result := analyzeOK(t, db, "counters", `
(define-data-var count uint u0)
(define-public (bump)
  (begin
    (var-set count (+ (var-get count) u1))
    (ok (var-get count))))`)

	bump := result.GetPublicFunctionType("bump")
	require.NotNil(t, bump)
	assert.Equal(t, types.Response(types.UInt(), types.None()), bump.Returns)

	countType, ok := result.GetPersistedVariableType("count")
	assert.True(t, ok)
	assert.Equal(t, types.UInt(), countType)
}

func TestDataVarInitialValueTypeChecked(t *testing.T) {
	db := NewMemoryDatabase()

	checkErr := analyzeErr(t, db, "counters", `
(define-data-var count uint true)`)

	assert.Equal(t, errors.ErrorTypeMismatch, checkErr.Code)
}

func TestConstantsVisibleInFunctionBodies(t *testing.T) {
	db := NewMemoryDatabase()

	result := analyzeOK(t, db, "limits", `
(define-constant max-supply u1000)
(define-read-only (limit) max-supply)`)

	limit := result.GetReadOnlyFunctionType("limit")
	require.NotNil(t, limit)
	assert.Equal(t, types.UInt(), limit.Returns)
}

func TestLetBindingsShadowAndNest(t *testing.T) {
	db := NewMemoryDatabase()

	result := analyzeOK(t, db, "scopes", `
(define-read-only (compute (x uint))
  (let ((y (+ x u1)) (z (+ x y)))
    (+ y z)))`)

	compute := result.GetReadOnlyFunctionType("compute")
	require.NotNil(t, compute)
	assert.Equal(t, types.UInt(), compute.Returns)
}

func TestIfBranchesMustAgree(t *testing.T) {
	db := NewMemoryDatabase()

	checkErr := analyzeErr(t, db, "branches", `
(define-read-only (pick (flag bool)) (if flag u1 true))`)

	assert.Equal(t, errors.ErrorTypeMismatch, checkErr.Code)
}

func TestUnknownTypeAnnotation(t *testing.T) {
	db := NewMemoryDatabase()

	checkErr := analyzeErr(t, db, "counters", `
(define-read-only (get (x unknown-type)) u1)`)

	assert.Equal(t, errors.ErrorUnknownTypeName, checkErr.Code)
}

func TestDefinitionsCheckedInDependencyOrder(t *testing.T) {
	db := NewMemoryDatabase()

	// The caller is declared before its helper; the definition sorter
	// must schedule the helper first.
	result := analyzeOK(t, db, "ordering", `
(define-public (use-it) (ok (helper)))
(define-private (helper) u5)`)

	assert.NotNil(t, result.GetPublicFunctionType("use-it"))
	assert.NotNil(t, result.GetPrivateFunction("helper"))
	assert.Equal(t, []int{1, 0}, result.TopLevelOrdering)
}

func TestEveryExpressionReceivesType(t *testing.T) {
	db := NewMemoryDatabase()

	result := analyzeOK(t, db, "typed", `
(define-read-only (double (x uint)) (+ x x))`)

	require.NotNil(t, result.TypeMap)
	body := result.Expressions[0].List[2]
	inferred, ok := result.TypeMap.GetType(body)
	assert.True(t, ok, "body expression should be typed")
	assert.Equal(t, types.UInt(), inferred)
}
