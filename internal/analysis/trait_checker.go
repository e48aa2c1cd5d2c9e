package analysis

// TraitChecker is phase 1 of trait compliance: a structural pass that
// confirms every trait the contract claims to implement actually exists
// in its declaring contract. It runs right after the general type check;
// the signature-level comparison is deferred to PostTypeCheckTraitChecker.
type TraitChecker struct {
	db Database
}

// RunTraitChecker resolves each implemented trait through the analysis
// database and delegates to the record's structural compliance check.
// Traits are processed in canonical order so the first error reported is
// deterministic.
func RunTraitChecker(analysis *ContractAnalysis, db Database) *CheckError {
	checker := &TraitChecker{db: db}
	return checker.run(analysis)
}

func (c *TraitChecker) run(analysis *ContractAnalysis) *CheckError {
	for _, identifier := range analysis.ImplementedTraitsSorted() {
		definingContract := c.db.LoadContract(identifier.Contract)
		if definingContract == nil {
			return ErrNoSuchContract(identifier.Contract)
		}

		definition := definingContract.GetDefinedTrait(identifier.Name)
		if definition == nil {
			return ErrTraitReferenceUnknown(identifier.Name)
		}

		if err := analysis.CheckTraitCompliance(identifier, definition); err != nil {
			return err
		}
	}
	return nil
}
