package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clarion/grammar"
	"clarion/internal/errors"
	"clarion/internal/types"
)

func TestChargeAccumulatesMonotonically(t *testing.T) {
	tracker := NewCostTracker(0)

	require.Nil(t, tracker.Charge(AnalysisVisit, 1))
	first := tracker.Consumed()
	require.Nil(t, tracker.Charge(AnalysisVisit, 1))
	second := tracker.Consumed()

	assert.Greater(t, first, uint64(0))
	assert.Equal(t, 2*first, second)
}

func TestChargeLandsBeforeBudgetCheck(t *testing.T) {
	tracker := NewCostTracker(5)

	checkErr := tracker.Charge(AnalysisTypeCheck, 10)
	require.NotNil(t, checkErr)
	assert.Equal(t, errors.ErrorCostBudgetExceeded, checkErr.Code)
	// The overspending charge itself is still recorded.
	assert.Equal(t, uint64(11), tracker.Consumed())
}

func TestZeroBudgetIsUnlimited(t *testing.T) {
	tracker := NewCostTracker(0)

	assert.Nil(t, tracker.Charge(AnalysisTypeCheck, 1_000_000))
	assert.Nil(t, tracker.Charge(AnalysisBindName, 1_000_000))
}

func consumedFor(t *testing.T, source string) uint64 {
	t.Helper()
	expressions, err := grammar.ParseContract("cost.clar", source)
	require.NoError(t, err)
	result := NewContractAnalysis(types.LocalContract("cost"), expressions)
	require.Nil(t, RunDefinitionSorter(result))
	tracker := NewCostTracker(0)
	require.Nil(t, RunTypeChecker(result, NewMemoryDatabase(), tracker))
	return tracker.Consumed()
}

func TestAnalysisCostIsDeterministic(t *testing.T) {
	source := `
(define-public (add (x uint)) (ok (+ x u1)))`

	first := consumedFor(t, source)
	second := consumedFor(t, source)

	assert.Greater(t, first, uint64(0))
	assert.Equal(t, first, second)
}

func TestAnalysisCostScalesWithInput(t *testing.T) {
	single := consumedFor(t, `
(define-public (add-1 (x uint)) (ok (+ x u1)))`)
	double := consumedFor(t, `
(define-public (add-1 (x uint)) (ok (+ x u1)))
(define-public (add-2 (x uint)) (ok (+ x u1)))`)

	assert.Equal(t, 2*single, double)
}

func TestRunAbortsWhenBudgetExceeded(t *testing.T) {
	expressions, err := grammar.ParseContract("over.clar", `
(define-public (add (x uint)) (ok (+ x u1)))`)
	require.NoError(t, err)

	_, checkErr := Run(types.LocalContract("over"), expressions, NewMemoryDatabase(), 1)
	require.NotNil(t, checkErr)
	assert.Equal(t, errors.ErrorCostBudgetExceeded, checkErr.Code)
}

func TestDefaultBudgetCoversRealContracts(t *testing.T) {
	db := NewMemoryDatabase()
	expressions, err := grammar.ParseContract("counters.clar", `
(define-data-var count uint u0)
(define-public (bump)
  (begin
    (var-set count (+ (var-get count) u1))
    (ok (var-get count))))`)
	require.NoError(t, err)

	_, checkErr := Run(types.LocalContract("counters"), expressions, db, DefaultCostBudget)
	assert.Nil(t, checkErr)
}
