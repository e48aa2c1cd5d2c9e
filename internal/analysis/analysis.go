// Package analysis is the static analysis core: it builds one
// ContractAnalysis record per contract, type-checks every top-level form
// including the asset/token primitives, and verifies trait compliance in
// two phases. Contract source is untrusted, so every pass terminates and
// the analysis itself is cost-metered.
package analysis

import (
	"clarion/internal/ast"
	"clarion/internal/types"
)

// DefaultCostBudget bounds one analysis run. Generous for real contracts,
// small enough that analysis cannot be used as a denial-of-service vector.
const DefaultCostBudget uint64 = 1_000_000

// Run executes the full pass pipeline over a parsed contract:
// definition sorter, general type check, then both trait compliance
// phases. On success the completed record is inserted into the database
// for future cross-contract lookups and returned; on failure the record
// is discarded and the first error is returned. A zero budget disables
// cost limiting.
func Run(contractID types.ContractIdentifier, expressions []*ast.SymbolicExpression, db Database, budget uint64) (*ContractAnalysis, *CheckError) {
	analysis := NewContractAnalysis(contractID, expressions)
	cost := NewCostTracker(budget)

	if err := RunDefinitionSorter(analysis); err != nil {
		return nil, err
	}
	if err := RunTypeChecker(analysis, db, cost); err != nil {
		return nil, err
	}
	if err := RunTraitChecker(analysis, db); err != nil {
		return nil, err
	}
	if err := RunPostTypeCheckTraitChecker(analysis, db); err != nil {
		return nil, err
	}

	db.InsertContract(analysis)
	return analysis, nil
}
