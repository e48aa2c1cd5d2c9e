package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"clarion/grammar"
	"clarion/internal/types"
)

// analyze parses a contract fixture and runs the full pass pipeline
// against the given database, with no cost limit.
func analyze(t *testing.T, db Database, name, source string) (*ContractAnalysis, *CheckError) {
	t.Helper()
	expressions, err := grammar.ParseContract(name+".clar", source)
	require.NoError(t, err, "fixture should parse")
	return Run(types.LocalContract(name), expressions, db, 0)
}

func analyzeOK(t *testing.T, db Database, name, source string) *ContractAnalysis {
	t.Helper()
	result, checkErr := analyze(t, db, name, source)
	require.Nil(t, checkErr, "analysis should succeed")
	require.NotNil(t, result)
	return result
}

func analyzeErr(t *testing.T, db Database, name, source string) *CheckError {
	t.Helper()
	_, checkErr := analyze(t, db, name, source)
	require.NotNil(t, checkErr, "analysis should fail")
	return checkErr
}
