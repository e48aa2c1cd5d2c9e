package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clarion/internal/errors"
	"clarion/internal/types"
)

func TestNFTOwnerLookup(t *testing.T) {
	db := NewMemoryDatabase()

	result := analyzeOK(t, db, "names", `
(define-non-fungible-token names (buff 10))
(define-read-only (who-owns (id (buff 10))) (nft-get-owner? names id))`)

	whoOwns := result.GetReadOnlyFunctionType("who-owns")
	require.NotNil(t, whoOwns)
	assert.Equal(t, types.Optional(types.Principal()), whoOwns.Returns)
}

func TestFTBalanceLookup(t *testing.T) {
	db := NewMemoryDatabase()

	result := analyzeOK(t, db, "token", `
(define-fungible-token stackaroo)
(define-read-only (balance-of (who principal)) (ft-get-balance stackaroo who))`)

	balanceOf := result.GetReadOnlyFunctionType("balance-of")
	require.NotNil(t, balanceOf)
	assert.Equal(t, types.UInt(), balanceOf.Returns)
}

func TestMintAndTransferResultTypes(t *testing.T) {
	db := NewMemoryDatabase()

	result := analyzeOK(t, db, "assets", `
(define-fungible-token stackaroo)
(define-non-fungible-token stacka-nft (buff 10))
(define-public (mint-token (to principal))
  (ft-mint? stackaroo u100 to))
(define-public (mint-asset (id (buff 10)) (to principal))
  (nft-mint? stacka-nft id to))
(define-public (move-token (from principal) (to principal))
  (ft-transfer? stackaroo u1 from to))
(define-public (move-asset (id (buff 10)) (from principal) (to principal))
  (nft-transfer? stacka-nft id from to))`)

	expected := types.Response(types.Bool(), types.UInt())
	for _, name := range []string{"mint-token", "mint-asset", "move-token", "move-asset"} {
		functionType := result.GetPublicFunctionType(name)
		require.NotNil(t, functionType, name)
		assert.Equal(t, expected, functionType.Returns, name)
	}
}

func TestUnknownFungibleToken(t *testing.T) {
	db := NewMemoryDatabase()

	checkErr := analyzeErr(t, db, "token", `
(define-read-only (balance-of (who principal)) (ft-get-balance stackaroo who))`)

	assert.Equal(t, errors.ErrorNoSuchFT, checkErr.Code)
}

func TestUnknownNonFungibleToken(t *testing.T) {
	db := NewMemoryDatabase()

	checkErr := analyzeErr(t, db, "names", `
(define-read-only (who-owns (id uint)) (nft-get-owner? names id))`)

	assert.Equal(t, errors.ErrorNoSuchNFT, checkErr.Code)
}

func TestTokenNameMustBeLiteral(t *testing.T) {
	db := NewMemoryDatabase()

	checkErr := analyzeErr(t, db, "token", `
(define-fungible-token stackaroo)
(define-read-only (balance-of (who principal)) (ft-get-balance u100 who))`)

	assert.Equal(t, errors.ErrorBadTokenName, checkErr.Code)
}

func TestAssetIdentifierTypeMismatch(t *testing.T) {
	db := NewMemoryDatabase()

	checkErr := analyzeErr(t, db, "names", `
(define-non-fungible-token names (buff 10))
(define-public (mint (to principal)) (nft-mint? names u100 to))`)

	assert.Equal(t, errors.ErrorTypeMismatch, checkErr.Code)
}

// The name lookup comes before any argument check: an undeclared token
// rejects even when the remaining arguments are also wrong.
func TestUnknownTokenRejectsBeforeArguments(t *testing.T) {
	db := NewMemoryDatabase()

	checkErr := analyzeErr(t, db, "token", `
(define-public (mint (to principal)) (ft-mint? never-declared to to))`)
	assert.Equal(t, errors.ErrorNoSuchFT, checkErr.Code)

	checkErr = analyzeErr(t, db, "names", `
(define-public (mint (to principal)) (nft-mint? never-declared to to))`)
	assert.Equal(t, errors.ErrorNoSuchNFT, checkErr.Code)
}

func TestAssetArityChecked(t *testing.T) {
	db := NewMemoryDatabase()

	checkErr := analyzeErr(t, db, "names", `
(define-non-fungible-token names (buff 10))
(define-read-only (who-owns (id (buff 10))) (nft-get-owner? names))`)

	assert.Equal(t, errors.ErrorIncorrectArgumentCount, checkErr.Code)
}

func TestNFTAssetTypeWidening(t *testing.T) {
	db := NewMemoryDatabase()

	// A shorter buffer literal fits a wider declared asset type.
	analyzeOK(t, db, "names", `
(define-non-fungible-token names (buff 10))
(define-public (mint (to principal)) (nft-mint? names 0x1234 to))`)
}

// A length literal past the uint32 range must reject rather than wrap
// into a small buffer type.
func TestAssetTypeLengthOutOfRange(t *testing.T) {
	db := NewMemoryDatabase()

	checkErr := analyzeErr(t, db, "names", `
(define-non-fungible-token names (buff 4294967306))`)
	assert.Equal(t, errors.ErrorValueTooLarge, checkErr.Code)

	checkErr = analyzeErr(t, db, "names", `
(define-non-fungible-token names (buff u4294967296))`)
	assert.Equal(t, errors.ErrorValueTooLarge, checkErr.Code)
}

func TestTokenSchemaRejectsTraitReference(t *testing.T) {
	db := NewMemoryDatabase()

	checkErr := analyzeErr(t, db, "names", `
(define-trait trait-1 ((get-1 (uint) (response uint uint))))
(define-non-fungible-token names <trait-1>)`)

	assert.Equal(t, errors.ErrorTraitReferenceNotAllowed, checkErr.Code)
}
