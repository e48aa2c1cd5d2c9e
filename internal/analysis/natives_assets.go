package analysis

import (
	"clarion/internal/ast"
	"clarion/internal/types"
)

// The six asset/token primitives. Each handler validates its literal
// asset name against the schemas the contract declared before looking
// at any further argument, meters its own analysis cost, then checks
// the remaining arguments in order. The name must be a literal atom: a
// computed name can never be resolved to a schema, which is a different
// failure from a literal-but-undeclared name.
//
// NFT checks are metered by the declared asset identifier type's size;
// FT checks carry no variable-size schema and meter a constant unit.

func checkSpecialGetOwner(tc *TypeChecker, expression *ast.SymbolicExpression, args []*ast.SymbolicExpression, context *TypingContext) (types.TypeSignature, *CheckError) {
	if err := checkArgumentCount(2, args); err != nil {
		return types.TypeSignature{}, err
	}

	assetName, ok := args[0].MatchAtom()
	if !ok {
		return types.TypeSignature{}, ErrBadTokenName().WithExpression(args[0])
	}

	expectedAssetType, ok := tc.analysis.GetNFTType(assetName)
	if !ok {
		return types.TypeSignature{}, ErrNoSuchNFT(assetName).WithExpression(args[0])
	}

	size, sizeErr := expectedAssetType.Size()
	if sizeErr != nil {
		return types.TypeSignature{}, ErrValueTooLarge().WithExpression(args[0])
	}
	if err := tc.cost.Charge(AnalysisTypeLookup, size); err != nil {
		return types.TypeSignature{}, err
	}

	if err := tc.typeCheckExpects(args[1], context, expectedAssetType); err != nil {
		return types.TypeSignature{}, err
	}

	return types.Optional(types.Principal()), nil
}

func checkSpecialGetBalance(tc *TypeChecker, expression *ast.SymbolicExpression, args []*ast.SymbolicExpression, context *TypingContext) (types.TypeSignature, *CheckError) {
	if err := checkArgumentCount(2, args); err != nil {
		return types.TypeSignature{}, err
	}

	assetName, ok := args[0].MatchAtom()
	if !ok {
		return types.TypeSignature{}, ErrBadTokenName().WithExpression(args[0])
	}

	if !tc.analysis.FTExists(assetName) {
		return types.TypeSignature{}, ErrNoSuchFT(assetName).WithExpression(args[0])
	}

	if err := tc.cost.Charge(AnalysisTypeLookup, 1); err != nil {
		return types.TypeSignature{}, err
	}

	if err := tc.typeCheckExpects(args[1], context, types.Principal()); err != nil {
		return types.TypeSignature{}, err
	}

	return types.UInt(), nil
}

func checkSpecialMintAsset(tc *TypeChecker, expression *ast.SymbolicExpression, args []*ast.SymbolicExpression, context *TypingContext) (types.TypeSignature, *CheckError) {
	if err := checkArgumentCount(3, args); err != nil {
		return types.TypeSignature{}, err
	}

	assetName, ok := args[0].MatchAtom()
	if !ok {
		return types.TypeSignature{}, ErrBadTokenName().WithExpression(args[0])
	}

	expectedAssetType, ok := tc.analysis.GetNFTType(assetName)
	if !ok {
		return types.TypeSignature{}, ErrNoSuchNFT(assetName).WithExpression(args[0])
	}

	size, sizeErr := expectedAssetType.Size()
	if sizeErr != nil {
		return types.TypeSignature{}, ErrValueTooLarge().WithExpression(args[0])
	}
	if err := tc.cost.Charge(AnalysisTypeLookup, size); err != nil {
		return types.TypeSignature{}, err
	}

	if err := tc.typeCheckExpects(args[1], context, expectedAssetType); err != nil {
		return types.TypeSignature{}, err
	}
	if err := tc.typeCheckExpects(args[2], context, types.Principal()); err != nil {
		return types.TypeSignature{}, err
	}

	return types.Response(types.Bool(), types.UInt()), nil
}

func checkSpecialMintToken(tc *TypeChecker, expression *ast.SymbolicExpression, args []*ast.SymbolicExpression, context *TypingContext) (types.TypeSignature, *CheckError) {
	if err := checkArgumentCount(3, args); err != nil {
		return types.TypeSignature{}, err
	}

	assetName, ok := args[0].MatchAtom()
	if !ok {
		return types.TypeSignature{}, ErrBadTokenName().WithExpression(args[0])
	}

	if !tc.analysis.FTExists(assetName) {
		return types.TypeSignature{}, ErrNoSuchFT(assetName).WithExpression(args[0])
	}

	if err := tc.cost.Charge(AnalysisTypeLookup, 1); err != nil {
		return types.TypeSignature{}, err
	}

	if err := tc.typeCheckExpects(args[1], context, types.UInt()); err != nil {
		return types.TypeSignature{}, err
	}
	if err := tc.typeCheckExpects(args[2], context, types.Principal()); err != nil {
		return types.TypeSignature{}, err
	}

	return types.Response(types.Bool(), types.UInt()), nil
}

func checkSpecialTransferAsset(tc *TypeChecker, expression *ast.SymbolicExpression, args []*ast.SymbolicExpression, context *TypingContext) (types.TypeSignature, *CheckError) {
	if err := checkArgumentCount(4, args); err != nil {
		return types.TypeSignature{}, err
	}

	assetName, ok := args[0].MatchAtom()
	if !ok {
		return types.TypeSignature{}, ErrBadTokenName().WithExpression(args[0])
	}

	expectedAssetType, ok := tc.analysis.GetNFTType(assetName)
	if !ok {
		return types.TypeSignature{}, ErrNoSuchNFT(assetName).WithExpression(args[0])
	}

	size, sizeErr := expectedAssetType.Size()
	if sizeErr != nil {
		return types.TypeSignature{}, ErrValueTooLarge().WithExpression(args[0])
	}
	if err := tc.cost.Charge(AnalysisTypeLookup, size); err != nil {
		return types.TypeSignature{}, err
	}

	if err := tc.typeCheckExpects(args[1], context, expectedAssetType); err != nil {
		return types.TypeSignature{}, err
	}
	if err := tc.typeCheckExpects(args[2], context, types.Principal()); err != nil { // owner
		return types.TypeSignature{}, err
	}
	if err := tc.typeCheckExpects(args[3], context, types.Principal()); err != nil { // recipient
		return types.TypeSignature{}, err
	}

	return types.Response(types.Bool(), types.UInt()), nil
}

func checkSpecialTransferToken(tc *TypeChecker, expression *ast.SymbolicExpression, args []*ast.SymbolicExpression, context *TypingContext) (types.TypeSignature, *CheckError) {
	if err := checkArgumentCount(4, args); err != nil {
		return types.TypeSignature{}, err
	}

	tokenName, ok := args[0].MatchAtom()
	if !ok {
		return types.TypeSignature{}, ErrBadTokenName().WithExpression(args[0])
	}

	if !tc.analysis.FTExists(tokenName) {
		return types.TypeSignature{}, ErrNoSuchFT(tokenName).WithExpression(args[0])
	}

	if err := tc.cost.Charge(AnalysisTypeLookup, 1); err != nil {
		return types.TypeSignature{}, err
	}

	if err := tc.typeCheckExpects(args[1], context, types.UInt()); err != nil {
		return types.TypeSignature{}, err
	}
	if err := tc.typeCheckExpects(args[2], context, types.Principal()); err != nil { // owner
		return types.TypeSignature{}, err
	}
	if err := tc.typeCheckExpects(args[3], context, types.Principal()); err != nil { // recipient
		return types.TypeSignature{}, err
	}

	return types.Response(types.Bool(), types.UInt()), nil
}
