package analysis

// CostFunction identifies a metered static-analysis operation. Costs are
// linear in their input size; the constants are calibrated per operation.
type CostFunction int

const (
	AnalysisTypeAnnotate CostFunction = iota
	AnalysisTypeCheck
	AnalysisTypeLookup
	AnalysisVisit
	AnalysisBindName
)

type costRate struct {
	slope     uint64
	intercept uint64
}

var costRates = map[CostFunction]costRate{
	AnalysisTypeAnnotate: {slope: 1, intercept: 1},
	AnalysisTypeCheck:    {slope: 1, intercept: 1},
	AnalysisTypeLookup:   {slope: 1, intercept: 1},
	AnalysisVisit:        {slope: 0, intercept: 1},
	AnalysisBindName:     {slope: 2, intercept: 1},
}

// CostTracker meters the cost of analysis itself. Analysis runs on
// adversarial input, so its own work is accounted and bounded
// independently of any cost the contract would incur at execution time.
// Consumption is cumulative and monotonic across one analysis run.
type CostTracker struct {
	consumed uint64
	budget   uint64
}

// NewCostTracker creates a tracker with the given budget. A zero budget
// means unlimited, which only tests and the language server use.
func NewCostTracker(budget uint64) *CostTracker {
	return &CostTracker{budget: budget}
}

// Charge consumes the cost of one metered operation. The charge lands
// before the budget check: an operation's cost is only known once the
// relevant type size has been computed, so the overage is detected after
// the fact, never skipped.
func (t *CostTracker) Charge(function CostFunction, input uint64) *CheckError {
	rate := costRates[function]
	t.consumed += rate.slope*input + rate.intercept
	if t.budget != 0 && t.consumed > t.budget {
		return ErrCostBudgetExceeded(t.consumed, t.budget)
	}
	return nil
}

// Consumed returns the total cost consumed so far.
func (t *CostTracker) Consumed() uint64 {
	return t.consumed
}
