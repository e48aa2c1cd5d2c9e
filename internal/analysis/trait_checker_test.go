package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clarion/internal/errors"
	"clarion/internal/types"
)

func TestTraitComplianceRoundTrip(t *testing.T) {
	db := NewMemoryDatabase()

	analyzeOK(t, db, "contract-a", `
(define-trait trait-1 ((get-1 (uint) (response uint uint))))`)

	result := analyzeOK(t, db, "contract-b", `
(impl-trait .contract-a.trait-1)
(define-public (get-1 (x uint)) (ok x))`)

	traitID := types.TraitIdentifier{Contract: types.LocalContract("contract-a"), Name: "trait-1"}
	assert.Contains(t, result.ImplementedTraits, traitID)
}

func TestTraitComplianceExtraArgument(t *testing.T) {
	db := NewMemoryDatabase()

	analyzeOK(t, db, "contract-a", `
(define-trait trait-1 ((get-1 (uint) (response uint uint))))`)

	checkErr := analyzeErr(t, db, "contract-b", `
(impl-trait .contract-a.trait-1)
(define-public (get-1 (x uint) (y uint)) (ok x))`)

	assert.Equal(t, errors.ErrorBadTraitImplementation, checkErr.Code)
}

func TestTraitComplianceMissingMethod(t *testing.T) {
	db := NewMemoryDatabase()

	analyzeOK(t, db, "contract-a", `
(define-trait trait-1 ((get-1 (uint) (response uint uint))))`)

	checkErr := analyzeErr(t, db, "contract-b", `
(impl-trait .contract-a.trait-1)
(define-public (unrelated (x uint)) (ok x))`)

	assert.Equal(t, errors.ErrorBadTraitImplementation, checkErr.Code)
}

func TestTraitComplianceWrongArgumentType(t *testing.T) {
	db := NewMemoryDatabase()

	analyzeOK(t, db, "contract-a", `
(define-trait trait-1 ((get-1 (uint) (response uint uint))))`)

	checkErr := analyzeErr(t, db, "contract-b", `
(impl-trait .contract-a.trait-1)
(define-public (get-1 (x principal)) (ok u1))`)

	assert.Equal(t, errors.ErrorBadTraitImplementation, checkErr.Code)
}

func TestImplTraitUnknownContract(t *testing.T) {
	db := NewMemoryDatabase()

	checkErr := analyzeErr(t, db, "contract-b", `
(impl-trait .never-analyzed.trait-1)
(define-public (get-1 (x uint)) (ok x))`)

	assert.Equal(t, errors.ErrorNoSuchContract, checkErr.Code)
}

// Two structurally identical traits defined by different contracts are
// distinct nominal identities. Implementing against the wrong one must
// fail even though every signature matches shape for shape.
func TestTraitIdentityIsNominal(t *testing.T) {
	db := NewMemoryDatabase()

	analyzeOK(t, db, "contract-a", `
(define-trait shared-shape ((call-it (uint) (response uint uint))))`)
	analyzeOK(t, db, "contract-b", `
(define-trait shared-shape ((call-it (uint) (response uint uint))))`)

	analyzeOK(t, db, "contract-c", `
(use-trait t-a .contract-a.shared-shape)
(define-trait wrapper ((wrap (<t-a>) (response uint uint))))`)

	checkErr := analyzeErr(t, db, "contract-d", `
(use-trait t-b .contract-b.shared-shape)
(impl-trait .contract-c.wrapper)
(define-public (wrap (target <t-b>)) (ok u1))`)
	assert.Equal(t, errors.ErrorBadTraitImplementation, checkErr.Code)

	analyzeOK(t, db, "contract-e", `
(use-trait t-a .contract-a.shared-shape)
(impl-trait .contract-c.wrapper)
(define-public (wrap (target <t-a>)) (ok u1))`)
}

func TestTraitParameterRejectsPrincipal(t *testing.T) {
	db := NewMemoryDatabase()

	analyzeOK(t, db, "contract-a", `
(define-trait trait-1 ((get-1 (uint) (response uint uint))))`)

	checkErr := analyzeErr(t, db, "contract-c", `
(use-trait impl .contract-a.trait-1)
(define-public (wrapped (target <impl>)) (contract-call? target get-1 u0))
(define-public (misuse (p principal)) (wrapped p))`)

	assert.Equal(t, errors.ErrorTypeMismatch, checkErr.Code)
}

func TestContractCallThroughTrait(t *testing.T) {
	db := NewMemoryDatabase()

	analyzeOK(t, db, "trait-definer", `
(define-trait math-trait ((add-one (uint) (response uint uint))))`)

	analyzeOK(t, db, "implementor", `
(impl-trait .trait-definer.math-trait)
(define-public (add-one (n uint)) (ok (+ n u1)))`)

	result := analyzeOK(t, db, "dispatcher", `
(use-trait math .trait-definer.math-trait)
(define-public (dispatch (target <math>)) (contract-call? target add-one u5))`)

	dispatch := result.GetPublicFunctionType("dispatch")
	assert.NotNil(t, dispatch)
	assert.Equal(t, types.ResponseType, dispatch.Returns.Kind)
}

func TestContractCallUnknownMethod(t *testing.T) {
	db := NewMemoryDatabase()

	analyzeOK(t, db, "trait-definer", `
(define-trait math-trait ((add-one (uint) (response uint uint))))`)

	checkErr := analyzeErr(t, db, "dispatcher", `
(use-trait math .trait-definer.math-trait)
(define-public (dispatch (target <math>)) (contract-call? target missing u5))`)

	assert.Equal(t, errors.ErrorUndefinedFunction, checkErr.Code)
}

func TestSelfReferentialTraitRejected(t *testing.T) {
	db := NewMemoryDatabase()

	checkErr := analyzeErr(t, db, "recursive", `
(define-trait trait-1 ((spin (<trait-1>) (response uint uint))))`)

	assert.Equal(t, errors.ErrorCircularReference, checkErr.Code)
}

func TestTraitCycleWithinContract(t *testing.T) {
	db := NewMemoryDatabase()

	checkErr := analyzeErr(t, db, "cyclic", `
(define-trait trait-1 ((get-1 (<trait-2>) (response uint uint))))
(define-trait trait-2 ((get-2 (<trait-1>) (response uint uint))))`)

	assert.Equal(t, errors.ErrorCircularReference, checkErr.Code)
}

// A would-be cycle spanning two contracts cannot close: the first
// contract to be analyzed references a contract that is not in the
// database yet, and analysis reports that instead of looping.
func TestTraitCycleAcrossContracts(t *testing.T) {
	db := NewMemoryDatabase()

	checkErr := analyzeErr(t, db, "contract-a", `
(use-trait foreign .contract-b.trait-1)
(define-trait trait-1 ((get-a (<foreign>) (response uint uint))))`)

	assert.Equal(t, errors.ErrorNoSuchContract, checkErr.Code)
}

func TestUseTraitOfLocallyDefinedTrait(t *testing.T) {
	db := NewMemoryDatabase()

	result := analyzeOK(t, db, "self-use", `
(define-trait trait-1 ((get-1 (uint) (response uint uint))))
(define-public (wrapped (target <trait-1>)) (contract-call? target get-1 u0))`)

	identifier, ok := result.GetReferencedTrait("trait-1")
	assert.True(t, ok)
	assert.Equal(t, types.LocalContract("self-use"), identifier.Contract)
}
