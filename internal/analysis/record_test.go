package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clarion/internal/errors"
	"clarion/internal/types"
)

func uintMethod(name string) TraitMethod {
	return TraitMethod{
		Name: name,
		Signature: types.FunctionSignature{
			Args:    []types.TypeSignature{types.UInt()},
			Returns: types.Response(types.UInt(), types.UInt()),
		},
	}
}

func TestDefinedTraitNameMustBeFresh(t *testing.T) {
	record := NewContractAnalysis(types.LocalContract("contract-a"), nil)

	require.Nil(t, record.AddDefinedTrait("trait-1", &TraitDefinition{}))

	checkErr := record.AddDefinedTrait("trait-1", &TraitDefinition{})
	require.NotNil(t, checkErr)
	assert.Equal(t, errors.ErrorNameAlreadyUsed, checkErr.Code)
}

func TestTraitNamespacesAreShared(t *testing.T) {
	record := NewContractAnalysis(types.LocalContract("contract-a"), nil)
	foreign := types.TraitIdentifier{Contract: types.LocalContract("contract-b"), Name: "trait-1"}

	require.Nil(t, record.AddReferencedTrait("shared", foreign))

	checkErr := record.AddDefinedTrait("shared", &TraitDefinition{})
	require.NotNil(t, checkErr)
	assert.Equal(t, errors.ErrorNameAlreadyUsed, checkErr.Code)

	require.Nil(t, record.AddDefinedTrait("other", &TraitDefinition{}))
	checkErr = record.AddReferencedTrait("other", foreign)
	require.NotNil(t, checkErr)
	assert.Equal(t, errors.ErrorNameAlreadyUsed, checkErr.Code)
}

func TestLocallyDefinedTraitResolvesToSelf(t *testing.T) {
	record := NewContractAnalysis(types.LocalContract("contract-a"), nil)
	require.Nil(t, record.AddDefinedTrait("trait-1", &TraitDefinition{}))

	identifier, ok := record.GetReferencedTrait("trait-1")
	require.True(t, ok)
	assert.Equal(t, types.LocalContract("contract-a"), identifier.Contract)
	assert.Equal(t, "trait-1", identifier.Name)

	_, ok = record.GetReferencedTrait("unheard-of")
	assert.False(t, ok)
}

func TestImplementedTraitsIterateInCanonicalOrder(t *testing.T) {
	record := NewContractAnalysis(types.LocalContract("contract-a"), nil)
	record.AddImplementedTrait(types.TraitIdentifier{Contract: types.LocalContract("zebra"), Name: "t"})
	record.AddImplementedTrait(types.TraitIdentifier{Contract: types.LocalContract("alpha"), Name: "t"})
	record.AddImplementedTrait(types.TraitIdentifier{Contract: types.LocalContract("alpha"), Name: "a"})

	sorted := record.ImplementedTraitsSorted()
	require.Len(t, sorted, 3)
	assert.Equal(t, "a", sorted[0].Name)
	assert.Equal(t, "alpha", sorted[0].Contract.Name)
	assert.Equal(t, "t", sorted[1].Name)
	assert.Equal(t, "alpha", sorted[1].Contract.Name)
	assert.Equal(t, "zebra", sorted[2].Contract.Name)
}

func TestStructuralComplianceRequiresPublicFunctions(t *testing.T) {
	record := NewContractAnalysis(types.LocalContract("contract-b"), nil)
	traitID := types.TraitIdentifier{Contract: types.LocalContract("contract-a"), Name: "trait-1"}
	definition := &TraitDefinition{Methods: []TraitMethod{uintMethod("get-1"), uintMethod("get-2")}}

	checkErr := record.CheckTraitCompliance(traitID, definition)
	require.NotNil(t, checkErr)
	assert.Equal(t, errors.ErrorBadTraitImplementation, checkErr.Code)

	record.AddPublicFunction("get-1", types.Fixed(nil, types.Response(types.UInt(), types.UInt())))
	record.AddPublicFunction("get-2", types.Fixed(nil, types.Response(types.UInt(), types.UInt())))
	assert.Nil(t, record.CheckTraitCompliance(traitID, definition))
}

func TestTraitMethodLookupPreservesOrder(t *testing.T) {
	definition := &TraitDefinition{Methods: []TraitMethod{uintMethod("b"), uintMethod("a")}}

	signature, ok := definition.GetMethod("a")
	assert.True(t, ok)
	assert.Len(t, signature.Args, 1)

	_, ok = definition.GetMethod("missing")
	assert.False(t, ok)

	assert.Equal(t, "b", definition.Methods[0].Name)
	assert.Equal(t, "a", definition.Methods[1].Name)
}

func TestMemoryDatabaseRoundTrip(t *testing.T) {
	db := NewMemoryDatabase()
	contractID := types.LocalContract("contract-a")

	assert.Nil(t, db.LoadContract(contractID))

	record := NewContractAnalysis(contractID, nil)
	db.InsertContract(record)
	assert.Same(t, record, db.LoadContract(contractID))
	assert.Nil(t, db.LoadContract(types.LocalContract("contract-b")))
}
