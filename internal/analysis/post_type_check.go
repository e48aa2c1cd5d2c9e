package analysis

import (
	"clarion/internal/types"
)

// PostTypeCheckTraitChecker is phase 2 of trait compliance: the
// authoritative signature comparison, valid only once every function in
// the contract has a fully inferred type. For each implemented trait,
// every required method must be realized as a public, fixed-arity
// function whose arguments and return type satisfy the trait's
// signature. Trait-typed parameters escape structural admission: each
// side resolves through its own contract's trait namespace and the
// resolved identities must be equal. Structural equivalence of two
// distinct traits is never sufficient.
type PostTypeCheckTraitChecker struct {
	db Database
}

// RunPostTypeCheckTraitChecker runs phase 2. The first failing method
// aborts the whole pass; there is no partial compliance.
func RunPostTypeCheckTraitChecker(analysis *ContractAnalysis, db Database) *CheckError {
	checker := &PostTypeCheckTraitChecker{db: db}
	return checker.run(analysis)
}

func (c *PostTypeCheckTraitChecker) run(analysis *ContractAnalysis) *CheckError {
	for _, identifier := range analysis.ImplementedTraitsSorted() {
		traitName := identifier.Name

		definingContract := c.db.LoadContract(identifier.Contract)
		if definingContract == nil {
			return ErrTraitReferenceUnknown(traitName)
		}
		definition := definingContract.GetDefinedTrait(traitName)
		if definition == nil {
			return ErrTraitReferenceUnknown(traitName)
		}

		for _, method := range definition.Methods {
			if err := c.checkMethod(analysis, definingContract, traitName, method); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *PostTypeCheckTraitChecker) checkMethod(analysis, definingContract *ContractAnalysis, traitName string, method TraitMethod) *CheckError {
	realized := analysis.GetPublicFunctionType(method.Name)
	if realized == nil || realized.Kind != types.FixedFunction {
		// Absent, variadic, union, or arithmetic shapes can never satisfy
		// a trait method.
		return ErrBadTraitImplementation(traitName, method.Name)
	}

	expected := method.Signature
	if len(realized.Args) != len(expected.Args) {
		return ErrBadTraitImplementation(traitName, method.Name)
	}

	for i, expectedArg := range expected.Args {
		realizedArg := realized.Args[i].Signature

		if expectedArg.Kind == types.TraitReferenceType && realizedArg.Kind == types.TraitReferenceType {
			// Nominal identity: the required alias resolves in the
			// trait's defining contract, the realized alias in the
			// implementing contract. The identities must match exactly.
			expectedID, ok := definingContract.GetReferencedTrait(expectedArg.TraitAlias)
			if !ok {
				return ErrBadTraitImplementation(traitName, method.Name)
			}
			realizedID, ok := analysis.GetReferencedTrait(realizedArg.TraitAlias)
			if !ok {
				return ErrBadTraitImplementation(traitName, method.Name)
			}
			if realizedID != expectedID {
				return ErrBadTraitImplementation(traitName, method.Name)
			}
			continue
		}

		if !expectedArg.Admits(realizedArg) {
			return ErrBadTraitImplementation(traitName, method.Name)
		}
	}

	if !expected.Returns.Admits(realized.Returns) {
		return ErrBadTraitImplementation(traitName, method.Name)
	}
	return nil
}
