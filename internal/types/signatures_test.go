package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmitsBufferWidening(t *testing.T) {
	assert.True(t, Buffer(10).Admits(Buffer(10)))
	assert.True(t, Buffer(10).Admits(Buffer(2)))
	assert.False(t, Buffer(2).Admits(Buffer(10)))
}

func TestAdmitsListWidening(t *testing.T) {
	assert.True(t, List(5, UInt()).Admits(List(3, UInt())))
	assert.False(t, List(3, UInt()).Admits(List(5, UInt())))
	assert.False(t, List(5, UInt()).Admits(List(3, Int())))
}

func TestAdmitsNoTypeAnywhere(t *testing.T) {
	// The error branch of (ok ...) never materializes; it fits any slot.
	okOnly := Response(UInt(), None())
	assert.True(t, Response(UInt(), UInt()).Admits(okOnly))
	assert.True(t, UInt().Admits(None()))
	assert.False(t, Response(UInt(), UInt()).Admits(Response(Bool(), UInt())))
}

func TestAdmitsDistinguishesKinds(t *testing.T) {
	assert.False(t, UInt().Admits(Int()))
	assert.False(t, Int().Admits(UInt()))
	assert.False(t, Principal().Admits(Bool()))
	assert.True(t, Optional(Principal()).Admits(Optional(Principal())))
	assert.False(t, Optional(Principal()).Admits(Principal()))
}

func TestAdmitsTupleByName(t *testing.T) {
	left := Tuple([]TupleField{{Name: "a", Type: UInt()}, {Name: "b", Type: Bool()}})
	// Declaration order is irrelevant; field names and types decide.
	right := Tuple([]TupleField{{Name: "b", Type: Bool()}, {Name: "a", Type: UInt()}})
	renamed := Tuple([]TupleField{{Name: "a", Type: UInt()}, {Name: "c", Type: Bool()}})

	assert.True(t, left.Admits(right))
	assert.True(t, right.Admits(left))
	assert.False(t, left.Admits(renamed))
}

func TestAdmitsTraitReferenceByAliasOnly(t *testing.T) {
	assert.True(t, TraitReference("trait-1").Admits(TraitReference("trait-1")))
	assert.False(t, TraitReference("trait-1").Admits(TraitReference("trait-2")))
	assert.False(t, TraitReference("trait-1").Admits(Principal()))
}

func TestEqualRejectsOneWayWidening(t *testing.T) {
	assert.True(t, Buffer(10).Equal(Buffer(10)))
	assert.False(t, Buffer(10).Equal(Buffer(2)))
}

func TestSizeOfScalars(t *testing.T) {
	cases := []struct {
		signature TypeSignature
		expected  uint64
	}{
		{Bool(), 1},
		{Int(), 16},
		{UInt(), 16},
		{Principal(), 149},
		{Buffer(10), 14},
		{Optional(Principal()), 150},
		{Response(UInt(), UInt()), 33},
		{List(5, UInt()), 84},
		{TraitReference("trait-1"), 276},
	}
	for _, c := range cases {
		size, err := c.signature.Size()
		require.NoError(t, err, c.signature.String())
		assert.Equal(t, c.expected, size, c.signature.String())
	}
}

func TestSizeOfTupleIncludesFieldNames(t *testing.T) {
	tuple := Tuple([]TupleField{{Name: "id", Type: UInt()}})
	size, err := tuple.Size()
	require.NoError(t, err)
	// prefix + len("id") + uint
	assert.Equal(t, uint64(4+2+16), size)
}

func TestSizeRejectsOversizedTypes(t *testing.T) {
	_, err := List(1024*1024, UInt()).Size()
	assert.Error(t, err)
}

func TestContainsTraitReferenceNested(t *testing.T) {
	assert.True(t, Optional(TraitReference("t")).ContainsTraitReference())
	assert.True(t, Response(UInt(), TraitReference("t")).ContainsTraitReference())
	assert.True(t, Tuple([]TupleField{{Name: "a", Type: List(3, TraitReference("t"))}}).ContainsTraitReference())
	assert.False(t, Tuple([]TupleField{{Name: "a", Type: UInt()}}).ContainsTraitReference())
}

func TestSignatureStrings(t *testing.T) {
	assert.Equal(t, "uint", UInt().String())
	assert.Equal(t, "(buff 10)", Buffer(10).String())
	assert.Equal(t, "(optional principal)", Optional(Principal()).String())
	assert.Equal(t, "(response uint uint)", Response(UInt(), UInt()).String())
	assert.Equal(t, "(list 5 uint)", List(5, UInt()).String())
	assert.Equal(t, "<trait-1>", TraitReference("trait-1").String())
}

func TestContractIdentifiers(t *testing.T) {
	local := LocalContract("counters")
	assert.Equal(t, TransientIssuer, local.Issuer)
	assert.Equal(t, TransientIssuer+".counters", local.String())

	parsed, err := ParseContractIdentifier("SP123.counters")
	require.NoError(t, err)
	assert.Equal(t, ContractIdentifier{Issuer: "SP123", Name: "counters"}, parsed)

	_, err = ParseContractIdentifier("no-dot")
	assert.Error(t, err)
}

func TestTraitIdentifierEquality(t *testing.T) {
	a := TraitIdentifier{Contract: LocalContract("contract-a"), Name: "trait-1"}
	same := TraitIdentifier{Contract: LocalContract("contract-a"), Name: "trait-1"}
	other := TraitIdentifier{Contract: LocalContract("contract-b"), Name: "trait-1"}

	assert.Equal(t, a, same)
	assert.NotEqual(t, a, other)
	assert.Equal(t, TransientIssuer+".contract-a.trait-1", a.String())
}
